package world

// BiomeID numbers match the ordering the game itself assigns, including
// the +128 offset mutated/"M" variants use relative to their base biome.
type BiomeID int32

const (
	None BiomeID = -1

	Ocean BiomeID = iota - 1
	Plains
	Desert
	Mountains
	Forest
	Taiga
	Swamp
	River
	NetherWastes
	TheEnd
	FrozenOcean
	FrozenRiver
	SnowyTundra
	SnowyMountains
	MushroomFields
	MushroomFieldShore
	Beach
	DesertHills
	WoodedHills
	TaigaHills
	MountainEdge
	Jungle
	JungleHills
	JungleEdge
	DeepOcean
	StoneShore
	SnowyBeach
	BirchForest
	BirchForestHills
	DarkForest
	SnowyTaiga
	SnowyTaigaHills
	GiantTreeTaiga
	GiantTreeTaigaHills
	WoodedMountains
	Savanna
	SavannaPlateau
	Badlands
	WoodedBadlandsPlateau
	BadlandsPlateau
	SmallEndIslands
	EndMidlands
	EndHighlands
	EndBarrens
	WarmOcean
	LukewarmOcean
	ColdOcean
	DeepWarmOcean
	DeepLukewarmOcean
	DeepColdOcean
	DeepFrozenOcean
)

const (
	BambooJungle       BiomeID = 168
	BambooJungleHills  BiomeID = 169
	SoulSandValley     BiomeID = 170
	CrimsonForest      BiomeID = 171
	WarpedForest       BiomeID = 172
	BasaltDeltas       BiomeID = 173
	DripstoneCaves     BiomeID = 174
	LushCaves          BiomeID = 175
	Meadow             BiomeID = 177
	Grove              BiomeID = 178
	SnowySlopes        BiomeID = 179
	JaggedPeaks        BiomeID = 180
	FrozenPeaks        BiomeID = 181
	StonyPeaks         BiomeID = 182
	DeepDark           BiomeID = 183
	MangroveSwamp      BiomeID = 184
	CherryGrove        BiomeID = 185
	TheVoid            BiomeID = 127
	MutatedBaseOffset  BiomeID = 128
)

// Mutated returns the "M"/bonus-chest variant of a legacy biome ID.
func Mutated(id BiomeID) BiomeID { return id + MutatedBaseOffset }

// BaseOf strips the mutated offset, returning the parent biome of a
// mutated variant. ids below the offset are returned unchanged.
func BaseOf(id BiomeID) BiomeID {
	if id >= MutatedBaseOffset {
		return id - MutatedBaseOffset
	}
	return id
}

// Category groups biomes coarsely, mirroring getBiomeType.
type Category int

const (
	CatNone Category = iota
	CatOcean
	CatPlains
	CatDesert
	CatExtremeHills
	CatForest
	CatTaiga
	CatSwamp
	CatRiver
	CatFrozenOcean
	CatFrozenRiver
	CatIcePlains
	CatMushroomIsland
	CatBeach
	CatJungle
	CatStoneBeach
	CatColdBeach
	CatBirchForest
	CatRoofedForest
	CatColdTaiga
	CatMegaTaiga
	CatExtremeHillsPlus
	CatSavanna
	CatMesa
	CatWarmOcean
	CatLukewarmOcean
	CatColdOcean
	CatSky
	CatTheEnd
	CatNetherWastes
)

// Biome is the static metadata table entry for one biome ID: its category,
// temperature band, a representative height/scale pair used by the
// surface-noise approximation, and the map color triple tooling shows
// alongside a seed's biome layout.
type Biome struct {
	ID          BiomeID
	Name        string
	Category    Category
	Temperature float64
	Height      float64
	Scale       float64
	Color       [3]byte
}

var biomeTable = map[BiomeID]*Biome{
	Ocean:               {Ocean, "ocean", CatOcean, 0.5, -1.0, 0.1, [3]byte{0, 0, 112}},
	Plains:              {Plains, "plains", CatPlains, 0.8, 0.125, 0.05, [3]byte{141, 179, 96}},
	Desert:              {Desert, "desert", CatDesert, 2.0, 0.125, 0.05, [3]byte{250, 148, 24}},
	Mountains:           {Mountains, "mountains", CatExtremeHills, 0.2, 1.0, 0.5, [3]byte{96, 96, 96}},
	Forest:              {Forest, "forest", CatForest, 0.7, 0.1, 0.2, [3]byte{5, 102, 33}},
	Taiga:               {Taiga, "taiga", CatTaiga, 0.25, 0.2, 0.2, [3]byte{11, 102, 89}},
	Swamp:               {Swamp, "swamp", CatSwamp, 0.8, -0.2, 0.1, [3]byte{7, 249, 178}},
	River:               {River, "river", CatRiver, 0.5, -0.5, 0, [3]byte{0, 0, 255}},
	NetherWastes:        {NetherWastes, "nether_wastes", CatNetherWastes, 2.0, 0.1, 0.2, [3]byte{191, 59, 59}},
	TheEnd:              {TheEnd, "the_end", CatTheEnd, 0.5, 0.1, 0.2, [3]byte{128, 128, 255}},
	FrozenOcean:         {FrozenOcean, "frozen_ocean", CatFrozenOcean, 0, -1.0, 0.1, [3]byte{112, 112, 214}},
	FrozenRiver:         {FrozenRiver, "frozen_river", CatFrozenRiver, 0, -0.5, 0, [3]byte{160, 160, 255}},
	SnowyTundra:         {SnowyTundra, "snowy_tundra", CatIcePlains, 0, 0.125, 0.05, [3]byte{255, 255, 255}},
	SnowyMountains:      {SnowyMountains, "snowy_mountains", CatIcePlains, 0, 0.45, 0.3, [3]byte{160, 160, 160}},
	MushroomFields:      {MushroomFields, "mushroom_fields", CatMushroomIsland, 0.9, 0.2, 0.3, [3]byte{255, 0, 255}},
	MushroomFieldShore:  {MushroomFieldShore, "mushroom_field_shore", CatMushroomIsland, 0.9, 0, 0.025, [3]byte{160, 0, 255}},
	Beach:               {Beach, "beach", CatBeach, 0.8, 0, 0.025, [3]byte{250, 222, 85}},
	DesertHills:         {DesertHills, "desert_hills", CatDesert, 2.0, 0.45, 0.3, [3]byte{210, 95, 18}},
	WoodedHills:         {WoodedHills, "wooded_hills", CatForest, 0.7, 0.45, 0.3, [3]byte{34, 85, 28}},
	TaigaHills:          {TaigaHills, "taiga_hills", CatTaiga, 0.25, 0.45, 0.3, [3]byte{22, 57, 51}},
	MountainEdge:        {MountainEdge, "mountain_edge", CatExtremeHills, 0.2, 0.8, 0.3, [3]byte{114, 120, 154}},
	Jungle:              {Jungle, "jungle", CatJungle, 0.95, 0.1, 0.2, [3]byte{83, 123, 9}},
	JungleHills:         {JungleHills, "jungle_hills", CatJungle, 0.95, 0.45, 0.3, [3]byte{44, 66, 5}},
	JungleEdge:          {JungleEdge, "jungle_edge", CatJungle, 0.95, 0.1, 0.2, [3]byte{98, 139, 23}},
	DeepOcean:           {DeepOcean, "deep_ocean", CatOcean, 0.5, -1.8, 0.1, [3]byte{0, 0, 48}},
	StoneShore:          {StoneShore, "stone_shore", CatStoneBeach, 0.2, 0.1, 0.8, [3]byte{162, 162, 132}},
	SnowyBeach:          {SnowyBeach, "snowy_beach", CatColdBeach, 0.05, 0, 0.025, [3]byte{250, 240, 192}},
	BirchForest:         {BirchForest, "birch_forest", CatBirchForest, 0.6, 0.1, 0.2, [3]byte{48, 116, 68}},
	BirchForestHills:    {BirchForestHills, "birch_forest_hills", CatBirchForest, 0.6, 0.45, 0.3, [3]byte{31, 95, 50}},
	DarkForest:          {DarkForest, "dark_forest", CatRoofedForest, 0.7, 0.1, 0.2, [3]byte{64, 81, 26}},
	SnowyTaiga:          {SnowyTaiga, "snowy_taiga", CatColdTaiga, -0.5, 0.2, 0.2, [3]byte{49, 85, 74}},
	SnowyTaigaHills:     {SnowyTaigaHills, "snowy_taiga_hills", CatColdTaiga, -0.5, 0.45, 0.3, [3]byte{36, 63, 54}},
	GiantTreeTaiga:      {GiantTreeTaiga, "giant_tree_taiga", CatMegaTaiga, 0.3, 0.2, 0.2, [3]byte{89, 102, 81}},
	GiantTreeTaigaHills:  {GiantTreeTaigaHills, "giant_tree_taiga_hills", CatMegaTaiga, 0.3, 0.45, 0.3, [3]byte{69, 79, 62}},
	WoodedMountains:     {WoodedMountains, "wooded_mountains", CatExtremeHillsPlus, 0.2, 1.0, 0.5, [3]byte{80, 112, 80}},
	Savanna:             {Savanna, "savanna", CatSavanna, 1.2, 0.125, 0.05, [3]byte{189, 178, 95}},
	SavannaPlateau:      {SavannaPlateau, "savanna_plateau", CatSavanna, 1.0, 1.5, 0.025, [3]byte{167, 157, 100}},
	Badlands:            {Badlands, "badlands", CatMesa, 2.0, 0.1, 0.2, [3]byte{217, 69, 21}},
	WoodedBadlandsPlateau: {WoodedBadlandsPlateau, "wooded_badlands_plateau", CatMesa, 2.0, 1.5, 0.025, [3]byte{176, 151, 101}},
	BadlandsPlateau:     {BadlandsPlateau, "badlands_plateau", CatMesa, 2.0, 1.5, 0.025, [3]byte{202, 140, 101}},
	WarmOcean:           {WarmOcean, "warm_ocean", CatWarmOcean, 0.5, -1.0, 0.1, [3]byte{0, 0, 172}},
	LukewarmOcean:       {LukewarmOcean, "lukewarm_ocean", CatLukewarmOcean, 0.5, -1.0, 0.1, [3]byte{0, 0, 144}},
	ColdOcean:           {ColdOcean, "cold_ocean", CatColdOcean, 0.5, -1.0, 0.1, [3]byte{32, 32, 112}},
	DeepWarmOcean:       {DeepWarmOcean, "deep_warm_ocean", CatWarmOcean, 0.5, -1.8, 0.1, [3]byte{0, 0, 80}},
	DeepLukewarmOcean:   {DeepLukewarmOcean, "deep_lukewarm_ocean", CatLukewarmOcean, 0.5, -1.8, 0.1, [3]byte{0, 0, 64}},
	DeepColdOcean:       {DeepColdOcean, "deep_cold_ocean", CatColdOcean, 0.5, -1.8, 0.1, [3]byte{32, 32, 56}},
	DeepFrozenOcean:     {DeepFrozenOcean, "deep_frozen_ocean", CatFrozenOcean, 0.5, -1.8, 0.1, [3]byte{64, 64, 144}},
}

// mutableBases lists the legacy biomes that have a +128 mutated variant.
var mutableBases = []BiomeID{
	Plains, Desert, Mountains, Forest, Taiga, Swamp, SnowyTundra,
	Jungle, JungleEdge, BirchForest, BirchForestHills, DarkForest,
	SnowyTaiga, GiantTreeTaiga, GiantTreeTaigaHills, WoodedMountains,
	Savanna, SavannaPlateau, Badlands, WoodedBadlandsPlateau, BadlandsPlateau,
}

func init() {
	for _, base := range mutableBases {
		b, ok := biomeTable[base]
		if !ok {
			continue
		}
		m := *b
		m.ID = Mutated(base)
		m.Name = "mutated_" + b.Name
		biomeTable[m.ID] = &m
	}
}

// Lookup returns the static metadata for a biome ID, or nil if the ID is
// not in the table this implementation ships.
func Lookup(id BiomeID) *Biome { return biomeTable[id] }

func isOceanic(id BiomeID) bool {
	switch id {
	case Ocean, DeepOcean, FrozenOcean, DeepFrozenOcean,
		WarmOcean, LukewarmOcean, ColdOcean,
		DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean:
		return true
	}
	return false
}

func isBiomeSnowy(id BiomeID) bool {
	b := Lookup(BaseOf(id))
	return b != nil && b.Temperature < 0.1
}

// equalOrPlateau reports whether two biomes count as the same for
// biome-edge smoothing: they are equal, or both are one of the two badlands
// plateaus (WoodedBadlandsPlateau, BadlandsPlateau). No other variant pair
// is treated as interchangeable.
func equalOrPlateau(a, b BiomeID) bool {
	if a == b {
		return true
	}
	if a == WoodedBadlandsPlateau || a == BadlandsPlateau {
		return b == WoodedBadlandsPlateau || b == BadlandsPlateau
	}
	return false
}
