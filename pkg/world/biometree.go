package world

// BiomeTree is the pre-compiled decision structure the modern overworld
// generator queries instead of evaluating ad-hoc biome thresholds: a flat
// list of leaves, each an axis-aligned box in climate space plus the biome
// id it covers, searched by nearest-box squared distance with ties broken
// by insertion order. Grounded on original_source/biomenoise.h's BiomeTree
// (steps/param/nodes/order/len); this implementation keeps the same
// "nearest box, tie-break by order" search contract but stores it as plain
// Go slices rather than the reference's packed uint64 node array, since the
// real btreeNN.h tables are binary data that didn't make it into the
// retrieval pack (DESIGN.md Open Question (b)).
type BiomeTree struct {
	leaves []treeLeaf
}

// treeLeaf pairs a climate-space bounding box with the biome it resolves to
// and its insertion order, used to break nearest-box ties deterministically
// the way the reference tree's `order` field does.
type treeLeaf struct {
	box   treeAxisBox
	biome BiomeID
	order int
}

// treeAxisBox bounds a region of six-axis climate space; Lo[i] > Hi[i] on an
// axis means that axis is unconstrained (always in range).
type treeAxisBox struct {
	Lo, Hi [NPMax]int64
}

func fullRange() [NPMax]int64 {
	var a [NPMax]int64
	for i := range a {
		a[i] = 1 // Lo > Hi marks "unconstrained" when Hi defaults to 0
	}
	return a
}

func unconstrainedBox() treeAxisBox {
	return treeAxisBox{Lo: fullRange(), Hi: [NPMax]int64{}}
}

func (b treeAxisBox) with(axis int, lo, hi int64) treeAxisBox {
	b.Lo[axis], b.Hi[axis] = lo, hi
	return b
}

// sqDist is the squared distance from p to the box, 0 when p falls inside
// every constrained axis, matching the reference tree's pruning metric.
func (b treeAxisBox) sqDist(p [NPMax]int64) int64 {
	var sum int64
	for axis := 0; axis < NPMax; axis++ {
		if b.Lo[axis] > b.Hi[axis] {
			continue // unconstrained axis
		}
		v := p[axis]
		var d int64
		if v < b.Lo[axis] {
			d = b.Lo[axis] - v
		} else if v > b.Hi[axis] {
			d = v - b.Hi[axis]
		}
		sum += d * d
	}
	return sum
}

// Query finds the nearest leaf box to p and returns its biome, resolving
// ties by the lowest insertion order the way the reference decision tree
// does when multiple leaves are equidistant.
func (t *BiomeTree) Query(p [NPMax]int64) BiomeID {
	if len(t.leaves) == 0 {
		return Ocean
	}
	best := 0
	bestDist := t.leaves[0].box.sqDist(p)
	for i := 1; i < len(t.leaves); i++ {
		d := t.leaves[i].box.sqDist(p)
		if d < bestDist || (d == bestDist && t.leaves[i].order < t.leaves[best].order) {
			best = i
			bestDist = d
		}
	}
	return t.leaves[best].biome
}

// biomeTreeBuilder accumulates leaves in insertion order before freezing
// them into a BiomeTree.
type biomeTreeBuilder struct {
	leaves []treeLeaf
}

func (b *biomeTreeBuilder) add(biome BiomeID, box treeAxisBox) {
	box2 := box
	b.leaves = append(b.leaves, treeLeaf{box: box2, biome: biome, order: len(b.leaves)})
}

func (b *biomeTreeBuilder) build() *BiomeTree {
	return &BiomeTree{leaves: b.leaves}
}

// fp quantizes a climate-space literal (already in the [-2,2]-ish float
// range the axes live in) into the fixed-point units ClimateSample stores,
// matching climateFixedPoint's scale.
func fp(v float64) int64 { return climateFixedPoint(v) }

// defaultBiomeTree builds a representative overworld decision tree across
// the continentalness/erosion/temperature/humidity/weirdness/depth axes:
// deep ocean and ocean bands at very negative continentalness, a
// beach/stone-shore coast band, and an inland lattice of biomes keyed on
// temperature x humidity with erosion perturbing the inland/mountain split
// and weirdness splitting desert/badlands and jungle/swamp; it has no
// mushroom or bamboo leaves. This is the same structural shape
// (not the tuned breakpoints) as the reference game's btreeNN tables per
// DESIGN.md Open Question (b).
func defaultBiomeTree() *BiomeTree {
	var b biomeTreeBuilder

	ocean := unconstrainedBox().with(NPContinentalness, fp(-2), fp(-1.05))
	b.add(DeepOcean, ocean.with(NPDepth, fp(-2), fp(-0.3)))
	b.add(Ocean, ocean.with(NPDepth, fp(-0.3), fp(2)))

	coast := unconstrainedBox().with(NPContinentalness, fp(-1.05), fp(-0.15))
	b.add(Beach, coast.with(NPErosion, fp(-2), fp(0)))
	b.add(StoneShore, coast.with(NPErosion, fp(0), fp(2)))

	inlandCold := unconstrainedBox().
		with(NPContinentalness, fp(-0.15), fp(2)).
		with(NPTemperature, fp(-2), fp(-0.3))
	b.add(SnowyTundra, inlandCold.with(NPHumidity, fp(-2), fp(0)))
	b.add(Taiga, inlandCold.with(NPHumidity, fp(0), fp(2)))

	inlandTemperate := unconstrainedBox().
		with(NPContinentalness, fp(-0.15), fp(2)).
		with(NPTemperature, fp(-0.3), fp(0.3))
	b.add(Plains, inlandTemperate.with(NPHumidity, fp(-2), fp(-0.2)))
	b.add(Forest, inlandTemperate.with(NPHumidity, fp(-0.2), fp(0.4)))
	b.add(DarkForest, inlandTemperate.with(NPHumidity, fp(0.4), fp(2)))

	inlandWarmDry := unconstrainedBox().
		with(NPContinentalness, fp(-0.15), fp(2)).
		with(NPTemperature, fp(0.3), fp(2)).
		with(NPHumidity, fp(-2), fp(-0.1))
	b.add(Desert, inlandWarmDry.with(NPWeirdness, fp(-2), fp(0)))
	b.add(Badlands, inlandWarmDry.with(NPWeirdness, fp(0), fp(2)))

	inlandWarmWet := unconstrainedBox().
		with(NPContinentalness, fp(-0.15), fp(2)).
		with(NPTemperature, fp(0.3), fp(2)).
		with(NPHumidity, fp(-0.1), fp(2))
	b.add(Jungle, inlandWarmWet.with(NPWeirdness, fp(-2), fp(0)))
	b.add(Swamp, inlandWarmWet.with(NPWeirdness, fp(0), fp(2)))

	mountain := unconstrainedBox().
		with(NPContinentalness, fp(0.4), fp(2)).
		with(NPErosion, fp(-2), fp(-0.5))
	b.add(Mountains, mountain.with(NPTemperature, fp(-2), fp(0)))
	b.add(WoodedMountains, mountain.with(NPTemperature, fp(0), fp(2)))

	return b.build()
}
