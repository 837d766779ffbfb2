package world

import "math"

// NP_* axis indices into a ClimateSample, matching spec.md §3's ordering
// and original_source/biomenoise.h's enum (NP_SHIFT doubles as NP_DEPTH:
// the same axis carries the lateral-shift sample on input and the combined
// depth offset once climateAt has composed it).
const (
	NPTemperature = iota
	NPHumidity
	NPContinentalness
	NPErosion
	NPShift
	NPWeirdness
	NPMax
	NPDepth = NPShift
)

// climateFixedScale converts the floating-point noise domain into the
// fixed-point integer domain the decision tree (C6) and the spline's axis
// lookups both index against.
const climateFixedScale = 10000.0

// ClimateSample is the six-axis climate vector spec.md §3 describes,
// stored as fixed-point (integer-scaled) readings.
type ClimateSample struct {
	Values [NPMax]int64
}

func (c *ClimateSample) axis(typ int) float32 {
	if typ < 0 {
		return 0
	}
	return float32(c.Values[typ]) / climateFixedScale
}

func climateFixedPoint(v float64) int64 {
	return int64(math.Round(v * climateFixedScale))
}

// climateParam describes how one DoublePerlin climate field is seeded:
// its octave range/weights and a distinguishing salt XORed into the shared
// world seed before deriving its xoroshiro stream, the same role the
// reference generator's per-climate seed offsets play.
type climateParam struct {
	omin, length int
	amp          []float64
	salt         uint64
}

// overworldClimateParams is a representative, structurally faithful set of
// octave shapes for the six climate fields (DESIGN.md Open Question (b)):
// the real game's tuned amplitude tables aren't present in the retrieval
// pack, so these exercise the same DoublePerlin/spline/decision-tree
// machinery without claiming bit-exact parity with the shipped generator.
var overworldClimateParams = [NPMax]climateParam{
	NPTemperature:     {omin: -10, length: 6, amp: []float64{1.5, 0, 1, 0, 0, 0}, salt: 0x5c7e6b07a1f3c9d1},
	NPHumidity:        {omin: -8, length: 5, amp: []float64{1, 1, 0, 0, 0}, salt: 0x71b1d8af2b4e6f19},
	NPContinentalness: {omin: -9, length: 6, amp: []float64{1, 1, 2, 2, 2, 1}, salt: 0x83a2f1199d4c7a55},
	NPErosion:         {omin: -9, length: 5, amp: []float64{1, 1, 0, 1, 1}, salt: 0x2f6c9ad177e1034b},
	NPShift:           {omin: -3, length: 4, amp: []float64{1, 1, 1, 0}, salt: 0x4d79b653c8a2f06e},
	NPWeirdness:       {omin: -7, length: 6, amp: []float64{1, 2, 1, 0, 0, 0}, salt: 0x1e9d5c2b3f7a8901},
}

// BiomeNoise is the modern (1.18+) overworld climate pipeline: six
// DoublePerlin climate fields combined through the overworld spline into a
// depth offset, then routed through the decision tree, matching spec.md
// §4.4/§4.5.
type BiomeNoise struct {
	climate  [NPMax]*DoublePerlin
	spline   *Spline
	tree     *BiomeTree
	nptype   int  // >=0 returns a single raw axis (debug visualisation); -1 is normal operation
	large    bool // LARGE_BIOMES: quadruple horizontal wavelength
	noShift  bool // SAMPLE_NO_SHIFT: skip the lateral shift/jitter sample
}

// NewBiomeNoise seeds all six climate fields from the world seed and wires
// the overworld spline and decision tree.
func NewBiomeNoise(seed uint64, large, noShift bool) *BiomeNoise {
	bn := &BiomeNoise{nptype: -1, large: large, noShift: noShift}
	for axis := 0; axis < NPMax; axis++ {
		p := overworldClimateParams[axis]
		rng := NewXoroshiro128(seed ^ p.salt)
		bn.climate[axis] = NewDoublePerlinX(rng, p.amp, p.omin, p.length, 0)
	}
	bn.spline = buildOverworldSpline()
	bn.tree = defaultBiomeTree()
	return bn
}

// SetNPType restricts BiomeAt to return a single raw climate axis instead
// of a biome id, the debug/visualisation mode spec.md §4.4 describes.
// Passing a negative value restores normal operation.
func (bn *BiomeNoise) SetNPType(nptype int) { bn.nptype = nptype }

// climateAt evaluates the full six-axis climate vector at a world
// position, following spec.md §4.4's five-step recipe.
func (bn *BiomeNoise) climateAt(x, y, z int64) [NPMax]int64 {
	wl := 1.0
	if bn.large {
		wl = 0.25
	}
	fx := float64(x) * wl
	fz := float64(z) * wl

	var raw [NPMax]float64
	for axis := 0; axis < NPMax; axis++ {
		if axis == NPShift {
			continue // combined into the depth axis below, not sampled raw
		}
		raw[axis] = bn.climate[axis].Sample(fx, 0, fz)
	}

	cs := &ClimateSample{}
	cs.Values[NPContinentalness] = climateFixedPoint(raw[NPContinentalness])
	cs.Values[NPErosion] = climateFixedPoint(raw[NPErosion])
	cs.Values[NPWeirdness] = climateFixedPoint(raw[NPWeirdness])

	offset := bn.spline.Sample(cs)

	var shift float64
	if !bn.noShift {
		shift = bn.climate[NPShift].Sample(fx, 0, fz)
	}
	depth := (float64(y)-64.0)/128.0 + float64(offset) + shift*0.2

	var out [NPMax]int64
	out[NPTemperature] = climateFixedPoint(raw[NPTemperature])
	out[NPHumidity] = climateFixedPoint(raw[NPHumidity])
	out[NPContinentalness] = cs.Values[NPContinentalness]
	out[NPErosion] = cs.Values[NPErosion]
	out[NPWeirdness] = cs.Values[NPWeirdness]
	out[NPDepth] = climateFixedPoint(depth)
	return out
}

// BiomeAt walks the decision tree for the climate vector at a world
// position, or returns a single raw axis reading when a debug nptype was
// set via SetNPType.
func (bn *BiomeNoise) BiomeAt(x, y, z int64) BiomeID {
	p := bn.climateAt(x, y, z)
	if bn.nptype >= 0 && bn.nptype < NPMax {
		return BiomeID(p[bn.nptype])
	}
	return bn.tree.Query(p)
}

// buildOverworldSpline constructs a representative overworld spline tree
// over continentalness/erosion/weirdness: deep ocean basins produce a
// large negative offset, near-shore continentalness bands ramp toward
// zero, and an erosion sub-spline perturbs the inland plateau, the same
// shape (not the same tuned breakpoints) as the reference game's
// getOverworldSpline/buildErosionSpline per DESIGN.md.
func buildOverworldSpline() *Spline {
	weirdnessSpline := func(base float32) *Spline {
		s := NewSpline(NPWeirdness)
		s.AddPoint(-1.0, 0, FixSpline(base-0.05))
		s.AddPoint(0.0, 0, FixSpline(base))
		s.AddPoint(1.0, 0, FixSpline(base+0.08))
		return s
	}

	erosionSpline := func(base float32) *Spline {
		s := NewSpline(NPErosion)
		s.AddPoint(-1.0, 0, weirdnessSpline(base+0.15))
		s.AddPoint(-0.3, 0, weirdnessSpline(base+0.05))
		s.AddPoint(0.3, 0, weirdnessSpline(base))
		s.AddPoint(1.0, 0, weirdnessSpline(base-0.2))
		return s
	}

	root := NewSpline(NPContinentalness)
	root.AddPoint(-1.2, 0, FixSpline(-1.0))    // deep ocean
	root.AddPoint(-0.6, 0, erosionSpline(-0.5)) // ocean
	root.AddPoint(-0.2, 0, erosionSpline(-0.1)) // coast
	root.AddPoint(0.1, 0, erosionSpline(0.05))  // near-inland
	root.AddPoint(0.5, 0, erosionSpline(0.2))   // inland
	root.AddPoint(1.0, 0, erosionSpline(0.4))   // far inland / plateau
	return root
}
