package world

// The legacy biome cascade is a directed chain of small stencil
// operators, each reading a parent layer's output over a halo slightly
// larger than its own output rectangle and reducing it to the requested
// area. Every operator here is grounded on the matching mapXxx function
// in the reference layer source; see DESIGN.md.

func selectRandom2(l *Layer, a1, a2 BiomeID) BiomeID {
	if l.mcNextInt(2) == 0 {
		return a1
	}
	return a2
}

func selectRandom4(l *Layer, a1, a2, a3, a4 BiomeID) BiomeID {
	switch l.mcNextInt(4) {
	case 0:
		return a1
	case 1:
		return a2
	case 2:
		return a3
	default:
		return a4
	}
}

func selectModeOrRandom(l *Layer, a1, a2, a3, a4 BiomeID) BiomeID {
	rnd := selectRandom4(l, a1, a2, a3, a4)
	switch {
	case a2 == a3 && a3 == a4:
		return a2
	case a1 == a2 && a1 == a3:
		return a1
	case a1 == a2 && a1 == a4:
		return a1
	case a1 == a3 && a1 == a4:
		return a1
	case a1 == a2 && a3 != a4:
		return a1
	case a1 == a3 && a2 != a4:
		return a1
	case a1 == a4 && a2 != a3:
		return a1
	case a2 == a3 && a1 != a4:
		return a2
	case a2 == a4 && a1 != a3:
		return a2
	case a3 == a4 && a1 != a2:
		return a3
	}
	return rnd
}

// island is the root of the cascade: each cell is land with 1/10
// probability, except the origin cell which is forced to land so that
// spawn always lands on solid ground.
func island(l *Layer, x, z, w, h int32, out []BiomeID) {
	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			l.setChunkSeed(int64(x+xx), int64(z+zz))
			v := BiomeID(0)
			if l.mcNextInt(10) == 0 {
				v = 1
			}
			out[xx+zz*w] = v
		}
	}
	if x > -w && x <= 0 && z > -h && z <= 0 {
		out[-x+-z*w] = 1
	}
}

// zoom doubles the resolution of its parent, fuzzing new cells between
// known ones via selectRandom2/selectRandom4 (for the island layer) or
// selectModeOrRandom (everywhere else).
func zoom(l *Layer, x, z, w, h int32, out []BiomeID) {
	px := x >> 1
	pz := z >> 1
	pw := (w >> 1) + 2
	ph := (h >> 1) + 2

	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)

	useIslandRule := isIslandLayer(l.Parent)

	nw := (pw - 1) << 1
	nh := (ph - 1) << 1
	buf := make([]BiomeID, (nw+1)*(nh+1))

	for zz := int32(0); zz < ph-1; zz++ {
		idx := (zz << 1) * nw
		a := src[zz*pw]
		b := src[(zz+1)*pw]
		for xx := int32(0); xx < pw-1; xx++ {
			l.setChunkSeed(int64((xx+px)<<1), int64((zz+pz)<<1))
			a1 := src[xx+1+(zz+0)*pw]
			b1 := src[xx+1+(zz+1)*pw]

			buf[idx] = a
			buf[idx+nw] = selectRandom2(l, a, b)
			idx++

			if useIslandRule {
				buf[idx] = selectRandom2(l, a, a1)
				buf[idx+nw] = selectRandom4(l, a, a1, b, b1)
			} else {
				buf[idx] = selectRandom2(l, a, a1)
				buf[idx+nw] = selectModeOrRandom(l, a, a1, b, b1)
			}
			idx++
			a = a1
			b = b1
		}
	}

	for zz := int32(0); zz < h; zz++ {
		srcRow := (zz + (z & 1)) * nw
		copy(out[zz*w:zz*w+w], buf[srcRow+(x&1):srcRow+(x&1)+w])
	}
}

// isIslandLayer reports whether l is the root island layer, used by zoom
// to pick its fuzz rule the way the reference compares function pointers.
func isIslandLayer(l *Layer) bool {
	return l.Parent == nil && l.baseSeed == islandSalt
}

const (
	islandSalt            = 1
	zoomSalt              = 2000
	addIslandSalt         = 3
	removeTooMuchOceanSalt = 2
	addSnowSalt           = 2
	coolWarmSalt          = 4
	heatIceSalt           = 5
	specialSalt           = 3
	addMushroomIslandSalt = 5
	deepOceanSalt         = 4
	biomeSalt             = 200
	riverInitSalt         = 100
	biomeEdgeSalt         = 1000
	riverSalt             = 1
	smoothSalt            = 1000
	shoreSalt             = 1000
	riverMixSalt          = 100
	voronoiZoomSalt       = 10
	hillsSalt             = 1000
	noiseInitSalt         = 101
)

// addIsland grows land outward from existing shores and occasionally
// seeds fresh single-cell islands, matching mapAddIsland.
func addIsland(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)

	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v00 := at(xx+0, zz+0)
			v20 := at(xx+2, zz+0)
			v02 := at(xx+0, zz+2)
			v22 := at(xx+2, zz+2)
			v11 := at(xx+1, zz+1)

			switch {
			case v11 == 0 && (v00 != 0 || v20 != 0 || v02 != 0 || v22 != 0):
				l.setChunkSeed(int64(xx+x), int64(zz+z))
				v := BiomeID(1)
				inc := int32(1)
				if v00 != 0 && l.mcNextInt(inc) == 0 {
					v = v00
				}
				inc++
				if v20 != 0 && l.mcNextInt(inc) == 0 {
					v = v20
				}
				inc++
				if v02 != 0 && l.mcNextInt(inc) == 0 {
					v = v02
				}
				inc++
				if v22 != 0 && l.mcNextInt(inc) == 0 {
					v = v22
				}
				if l.mcNextInt(3) == 0 {
					out[xx+zz*w] = v
				} else if v == 4 {
					out[xx+zz*w] = 4
				} else {
					out[xx+zz*w] = 0
				}
			case v11 > 0 && (v00 == 0 || v20 == 0 || v02 == 0 || v22 == 0):
				l.setChunkSeed(int64(xx+x), int64(zz+z))
				if l.mcNextInt(5) == 0 {
					if v11 == 4 {
						out[xx+zz*w] = 4
					} else {
						out[xx+zz*w] = 0
					}
				} else {
					out[xx+zz*w] = v11
				}
			default:
				out[xx+zz*w] = v11
			}
		}
	}
}

// removeTooMuchOcean thins runs of all-ocean neighbourhoods back into
// land 1/3 of the time, matching mapRemoveTooMuchOcean.
func removeTooMuchOcean(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v11 := at(xx+1, zz+1)
			out[xx+zz*w] = v11
			if at(xx+1, zz+0) != 0 {
				continue
			}
			if at(xx+2, zz+1) != 0 {
				continue
			}
			if at(xx+0, zz+1) != 0 {
				continue
			}
			if at(xx+1, zz+2) != 0 {
				continue
			}
			l.setChunkSeed(int64(xx+x), int64(zz+z))
			if v11 == 0 && l.mcNextInt(3) == 0 {
				out[xx+zz*w] = 1
			}
		}
	}
}

// addSnow assigns each land cell a freeze band (free/cold/frozen)
// matching mapAddSnow's mcNextInt(6) threshold split.
func addSnow(l *Layer, x, z, w, h int32, out []BiomeID) {
	src := make([]BiomeID, w*h)
	l.Parent.Get(x, z, w, h, src)
	for i, v := range src {
		xx := int32(i) % w
		zz := int32(i) / w
		if v == 0 {
			out[i] = v
			continue
		}
		l.setChunkSeed(int64(x+xx), int64(z+zz))
		switch l.mcNextInt(6) {
		case 0:
			out[i] = 4
		case 1, 2, 3:
			out[i] = 3
		default:
			out[i] = 1
		}
	}
}

// coolWarm and heatIce smooth temperature-band discontinuities: coolWarm
// turns a band-1 ("warm") cell with a band-3 or band-4 ("cold"/"frozen")
// direct neighbour into band-2 ("lush"), and heatIce turns a band-4 cell
// with a band-1 or band-2 direct neighbour into band-3, matching
// mapCoolWarm/mapHeatIce.
func coolWarm(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			if v == 1 {
				n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
				if n == 3 || n == 4 || s == 3 || s == 4 || e == 3 || e == 4 || w2 == 3 || w2 == 4 {
					v = 2
				}
			}
			out[xx+zz*w] = v
		}
	}
}

func heatIce(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			if v == 4 {
				n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
				if n == 1 || n == 2 || s == 1 || s == 2 || e == 1 || e == 2 || w2 == 1 || w2 == 2 {
					v = 3
				}
			}
			out[xx+zz*w] = v
		}
	}
}

// special marks a rare 1/13 cell with a biome-variant marker encoded in
// the ID's high nibble, matching mapSpecial.
func special(l *Layer, x, z, w, h int32, out []BiomeID) {
	src := make([]BiomeID, w*h)
	l.Parent.Get(x, z, w, h, src)
	for i, v := range src {
		out[i] = v
		if v == 0 {
			continue
		}
		xx := int32(i) % w
		zz := int32(i) / w
		l.setChunkSeed(int64(x+xx), int64(z+zz))
		if l.mcNextInt(13) == 0 {
			v2 := v | BiomeID((1+l.mcNextInt(15))<<8)
			out[i] = v2
		}
	}
}

// addMushroomIsland seeds a 1/100 mushroom-field cell on an ocean cell whose
// four diagonal neighbours are also ocean (the four direct neighbours are not
// checked), matching mapAddMushroomIsland.
func addMushroomIsland(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			if v == 0 && at(xx+0, zz+0) == 0 && at(xx+2, zz+0) == 0 &&
				at(xx+0, zz+2) == 0 && at(xx+2, zz+2) == 0 {
				l.setChunkSeed(int64(xx+x), int64(zz+z))
				if l.mcNextInt(100) == 0 {
					v = MushroomFields
				}
			}
			out[xx+zz*w] = v
		}
	}
}

// deepOcean reclassifies an ocean cell as deep ocean once all four of its
// direct neighbours are also ocean, matching mapDeepOcean.
func deepOcean(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			if isOceanic(v) {
				n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
				if isOceanic(n) && isOceanic(s) && isOceanic(e) && isOceanic(w2) {
					v = DeepOcean
				}
			}
			out[xx+zz*w] = v
		}
	}
}

var warmBiomes = []BiomeID{Desert, Desert, Desert, Savanna, Savanna, Plains}
var lushBiomes = []BiomeID{Forest, DarkForest, Mountains, Plains, BirchForest, Swamp}
var coldBiomes = []BiomeID{Forest, Mountains, Taiga, Plains}
var snowBiomes = []BiomeID{SnowyTundra, SnowyTundra, SnowyTundra, SnowyTaiga}

// biome assigns the concrete biome for each temperature band: band 4
// (frozen) always maps to snowy tundra; bands 1-3 draw from warm/lush/cold
// tables; cells carrying a mapSpecial high-nibble marker route into a
// mesa/jungle/mega-taiga variant instead, matching mapBiome.
func biome(l *Layer, x, z, w, h int32, out []BiomeID) {
	src := make([]BiomeID, w*h)
	l.Parent.Get(x, z, w, h, src)
	for i, v := range src {
		if v == 0 {
			out[i] = v
			continue
		}
		xx := int32(i) % w
		zz := int32(i) / w
		l.setChunkSeed(int64(x+xx), int64(z+zz))

		hasHighBits := v&0xf00 != 0
		band := v & 0xff

		var result BiomeID
		switch band {
		case 4:
			result = SnowyTundra
		case 3:
			if hasHighBits {
				switch l.mcNextInt(3) {
				case 0:
					result = Badlands
				case 1:
					result = BadlandsPlateau
				default:
					result = WoodedBadlandsPlateau
				}
			} else {
				result = coldBiomes[l.mcNextInt(int32(len(coldBiomes)))]
			}
		case 2:
			if hasHighBits {
				switch l.mcNextInt(2) {
				case 0:
					result = Jungle
				default:
					result = JungleEdge
				}
			} else {
				result = lushBiomes[l.mcNextInt(int32(len(lushBiomes)))]
			}
		default:
			if hasHighBits {
				result = GiantTreeTaiga
			} else {
				result = warmBiomes[l.mcNextInt(int32(len(warmBiomes)))]
			}
		}
		out[i] = result
	}
}

// hillsBiomeMap gives the dedicated hill variant for base biomes that
// have one, matching mapHills' per-biome switch.
var hillsBiomeMap = map[BiomeID]BiomeID{
	Desert:         DesertHills,
	Forest:         WoodedHills,
	Taiga:          TaigaHills,
	Savanna:        SavannaPlateau,
	SnowyTundra:    SnowyMountains,
	Jungle:         JungleHills,
	BirchForest:    BirchForestHills,
	SnowyTaiga:     SnowyTaigaHills,
	GiantTreeTaiga: GiantTreeTaigaHills,
}

// hills consumes two parents: the biome cascade (Parent) and an
// independently-salted noise-init cascade (Parent2) whose cell values
// are otherwise-unused river-init residues. A residue of 0 mod 29
// mutates the base biome (+128, when that variant exists); a residue
// of 1 mod 29, or a plain 1/3 chance otherwise, swaps in the dedicated
// hill biome from hillsBiomeMap. Matches mapHills.
func hills(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	biomes := make([]BiomeID, pw*ph)
	noise := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, biomes)
	l.Parent2.Get(px, pz, pw, ph, noise)

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			idx := (xx + 1) + (zz+1)*pw
			a := biomes[idx]
			b := noise[idx]
			l.setChunkSeed(int64(x+xx), int64(z+zz))

			bn := (int32(b) - 2) % 29
			if bn < 0 {
				bn += 29
			}

			switch {
			case !isOceanic(a) && bn == 0:
				if m := Mutated(a); Lookup(m) != nil {
					out[xx+zz*w] = m
				} else {
					out[xx+zz*w] = a
				}
			case !isOceanic(a) && (bn == 1 || l.mcNextInt(3) == 0):
				if hill, ok := hillsBiomeMap[a]; ok {
					out[xx+zz*w] = hill
				} else {
					out[xx+zz*w] = a
				}
			default:
				out[xx+zz*w] = a
			}
		}
	}
}

// riverInit gives every land cell a random marker in [1, 299999] and leaves
// ocean cells at 0, matching mapRiverInit.
func riverInit(l *Layer, x, z, w, h int32, out []BiomeID) {
	src := make([]BiomeID, w*h)
	l.Parent.Get(x, z, w, h, src)
	for i, v := range src {
		if v == 0 {
			out[i] = 0
			continue
		}
		xx := int32(i) % w
		zz := int32(i) / w
		l.setChunkSeed(int64(x+xx), int64(z+zz))
		out[i] = BiomeID(1 + l.mcNextInt(299999))
	}
}

func reduceID(id BiomeID) int32 {
	if id >= 1 {
		return int32(2 + (int64(id) & 1))
	}
	return int32(id)
}

// river reclassifies any cell whose reduceID differs from one of its
// neighbours as a river, matching mapRiver.
func river(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) int32 { return reduceID(src[xx+zz*pw]) }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v11 := at(xx+1, zz+1)
			n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
			if v11 == n && v11 == s && v11 == e && v11 == w2 {
				out[xx+zz*w] = -1
			} else {
				out[xx+zz*w] = River
			}
		}
	}
}

// biomeEdge smooths transitions at the border of extreme-hills, mesa,
// taiga, desert, and swamp biomes with their usual neighbours, matching
// mapBiomeEdge.
func biomeEdge(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	replace := func(xx, zz int32, v, from, to BiomeID) (BiomeID, bool) {
		if v != from {
			return v, false
		}
		n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
		if !equalOrPlateau(n, from) || !equalOrPlateau(s, from) || !equalOrPlateau(e, from) || !equalOrPlateau(w2, from) {
			return to, true
		}
		return v, false
	}

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			if r, ok := replace(xx, zz, v, Mountains, MountainEdge); ok {
				v = r
			} else if r, ok := replace(xx, zz, v, WoodedBadlandsPlateau, Badlands); ok {
				v = r
			} else if r, ok := replace(xx, zz, v, BadlandsPlateau, Badlands); ok {
				v = r
			} else if r, ok := replace(xx, zz, v, GiantTreeTaiga, Taiga); ok {
				v = r
			} else if v == Desert {
				n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
				if n == SnowyTundra || s == SnowyTundra || e == SnowyTundra || w2 == SnowyTundra {
					v = Plains
				}
			} else if v == Swamp {
				n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
				if n == Desert || s == Desert || e == Desert || w2 == Desert ||
					n == SnowyTaiga || s == SnowyTaiga || e == SnowyTaiga || w2 == SnowyTaiga ||
					n == SnowyTundra || s == SnowyTundra || e == SnowyTundra || w2 == SnowyTundra {
					v = Plains
				}
			}
			out[xx+zz*w] = v
		}
	}
}

// smooth applies a small axis-aligned median filter that removes
// diagonal single-cell noise, matching mapSmooth.
func smooth(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v11 := at(xx+1, zz+1)
			n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)
			if e == w2 && n == s {
				l.setChunkSeed(int64(xx+x), int64(zz+z))
				if l.mcNextInt(2) == 0 {
					v11 = e
				} else {
					v11 = n
				}
			} else {
				if e == w2 {
					v11 = e
				}
				if n == s {
					v11 = n
				}
			}
			out[xx+zz*w] = v11
		}
	}
}

// shore places beaches, stone shores, and mushroom-island shores at the
// boundary between land and ocean, matching mapShore's per-category rules.
func shore(l *Layer, x, z, w, h int32, out []BiomeID) {
	px, pz := x-1, z-1
	pw, ph := w+2, h+2
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)
	at := func(xx, zz int32) BiomeID { return src[xx+zz*pw] }

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			v := at(xx+1, zz+1)
			n, s, e, w2 := at(xx+1, zz+0), at(xx+1, zz+2), at(xx+2, zz+1), at(xx+0, zz+1)

			switch {
			case v == MushroomFields:
				if n != Ocean && s != Ocean && e != Ocean && w2 != Ocean {
					out[xx+zz*w] = v
				} else {
					out[xx+zz*w] = MushroomFieldShore
				}
			case isExtremeHillsLike(v):
				if !isOceanic(n) && !isOceanic(s) && !isOceanic(e) && !isOceanic(w2) {
					out[xx+zz*w] = v
				} else {
					out[xx+zz*w] = StoneShore
				}
			case v != Ocean && v != River && v != Swamp && !isOceanic(v):
				if isBiomeSnowy(v) {
					if isOceanic(n) || isOceanic(s) || isOceanic(e) || isOceanic(w2) {
						out[xx+zz*w] = SnowyBeach
					} else {
						out[xx+zz*w] = v
					}
				} else if v != Mountains && (isOceanic(n) || isOceanic(s) || isOceanic(e) || isOceanic(w2)) {
					out[xx+zz*w] = Beach
				} else {
					out[xx+zz*w] = v
				}
			default:
				out[xx+zz*w] = v
			}
		}
	}
}

func isExtremeHillsLike(v BiomeID) bool {
	b := Lookup(v)
	return b != nil && b.Category == CatExtremeHills
}

// riverMix overlays the river layer onto the biome layer, turning land
// rivers into the River biome (or FrozenRiver on a SnowyTundra cell) and
// reclassifying mushroom-island shores, matching mapRiverMix.
func riverMix(l *Layer, x, z, w, h int32, out []BiomeID) {
	biomeOut := make([]BiomeID, w*h)
	riverOut := make([]BiomeID, w*h)
	l.Parent.Get(x, z, w, h, biomeOut)
	l.Parent2.Get(x, z, w, h, riverOut)

	for i := range biomeOut {
		v := biomeOut[i]
		if isOceanic(v) {
			out[i] = v
			continue
		}
		if riverOut[i] == River {
			if v == SnowyTundra {
				out[i] = FrozenRiver
			} else if v == MushroomFields || v == MushroomFieldShore {
				out[i] = MushroomFieldShore
			} else {
				out[i] = River
			}
		} else {
			out[i] = v
		}
	}
}

// voronoiZoom is the final 4x zoom applied to the biome layer: each
// output cell snaps to whichever of the four surrounding coarse cells a
// jittered distance metric places it closest to, matching mapVoronoiZoom.
func voronoiZoom(l *Layer, x, z, w, h int32, out []BiomeID) {
	px := (x - 2) >> 2
	pz := (z - 2) >> 2
	pw := (w >> 2) + 3
	ph := (h >> 2) + 3
	src := make([]BiomeID, pw*ph)
	l.Parent.Get(px, pz, pw, ph, src)

	for zz := int32(0); zz < h; zz++ {
		for xx := int32(0); xx < w; xx++ {
			absX := x + xx
			absZ := z + zz
			cellX := (absX - 2) >> 2
			cellZ := (absZ - 2) >> 2
			offX := absX - (cellX << 2)
			offZ := absZ - (cellZ << 2)

			l.setChunkSeed(int64((cellX)<<2), int64((cellZ)<<2))
			da := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6
			db := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6

			l.setChunkSeed(int64((cellX+1)<<2), int64((cellZ)<<2))
			dc := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6
			dd := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6

			l.setChunkSeed(int64((cellX)<<2), int64((cellZ+1)<<2))
			de := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6
			df := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6

			l.setChunkSeed(int64((cellX+1)<<2), int64((cellZ+1)<<2))
			dg := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6
			dh := (float64(l.mcNextInt(1024))/1024.0 - 0.5) * 3.6

			fx, fz := float64(offX), float64(offZ)
			sq := func(dx, dz float64) float64 { return dx*dx + dz*dz }
			d00 := sq(fx+da, fz+db)
			d10 := sq(fx-4+dc, fz+dd)
			d01 := sq(fx+de, fz-4+df)
			d11 := sq(fx-4+dg, fz-4+dh)

			lx, lz := cellX, cellZ
			best := d00
			if d10 < best {
				best = d10
				lx, lz = cellX+1, cellZ
			}
			if d01 < best {
				best = d01
				lx, lz = cellX, cellZ+1
			}
			if d11 < best {
				lx, lz = cellX+1, cellZ+1
			}

			out[xx+zz*w] = src[(lx-px)+(lz-pz)*pw]
		}
	}
}
