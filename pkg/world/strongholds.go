package world

import "math"

// strongholdRingCount and strongholdsPerRing match the reference
// generator's first three stronghold rings (spec.md §8 scenario 3 only
// exercises ring #1, but the iterator produces all three so later rings
// are available too).
const strongholdRingCount = 3

var strongholdsPerRing = [strongholdRingCount]int{3, 6, 10}
var strongholdRingRadius = [strongholdRingCount]float64{1.25, 2.5, 3.75}

// Pos is a 2D world-block position, the unit strongholdIter/nextStronghold
// return positions in.
type Pos struct {
	X, Z int32
}

// StrongholdIter walks the three stronghold rings in angular order,
// matching spec.md §4.7/§6's strongholdIter/nextStronghold: ring 0 has 3
// strongholds at distance (1.25+rnd)*32 chunks from the origin, spaced
// evenly by 2π divided by the ring's stronghold count from a random
// per-ring starting angle; rings 1-2
// widen the radius band and stronghold count. Grounded on
// original_source/cubiomes/finders.c's findStrongholds.
type StrongholdIter struct {
	gen     *Generator
	rng     *Lcg48
	ring    int
	idx     int
	angle   float64
}

// NewStrongholdIter seeds the ring walk from the world seed, the same
// Lcg48 stream the reference generator's stronghold placement draws from.
func NewStrongholdIter(version Version, seed int64) *StrongholdIter {
	gen := SetupGenerator(version, 0)
	_ = gen.ApplySeed(Overworld, seed)
	rng := NewLcg48(seed)
	angle := rng.NextDouble() * 2 * math.Pi
	return &StrongholdIter{gen: gen, rng: rng, angle: angle}
}

// Next returns the next stronghold position in ring-then-angular order, or
// ok=false once every ring has been exhausted. It filters for positions
// whose 1:4 biome has height > 0, matching spec.md §8 scenario 3's
// validity requirement and the reference's validStrongholdBiomes check.
func (it *StrongholdIter) Next() (Pos, bool) {
	for it.ring < strongholdRingCount {
		if it.idx >= strongholdsPerRing[it.ring] {
			it.ring++
			it.idx = 0
			it.angle = it.rng.NextDouble() * 2 * math.Pi
			continue
		}

		step := 2 * math.Pi / float64(strongholdsPerRing[it.ring])
		angle := it.angle + step*float64(it.idx)
		distance := (strongholdRingRadius[it.ring] + it.rng.NextDouble()) * 32.0 * 16.0

		x := int32(math.Round(math.Cos(angle) * distance))
		z := int32(math.Round(math.Sin(angle) * distance))
		it.idx++

		if !it.validStrongholdPosition(x, z) {
			continue
		}
		return Pos{X: x, Z: z}, true
	}
	return Pos{}, false
}

// validStrongholdPosition reports whether the 1:4 biome at (x,z) has
// Height > 0 in the static metadata table, matching findStrongholds'
// validStrongholdBiomes precomputation (biomeExists && height>0).
func (it *StrongholdIter) validStrongholdPosition(x, z int32) bool {
	id, err := it.gen.GetBiomeAt(Overworld, 4, x, 0, z)
	if err != nil {
		return false
	}
	b := Lookup(id)
	return b != nil && b.Height > 0
}
