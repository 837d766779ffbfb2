package world

import "math"

// NetherNoise is the nether's small climate pipeline: two independent 2D
// Perlin fields (temperature, humidity) classified against the nearest of
// five fixed climate points, matching spec.md §4.6's "two 2D climate
// Perlins + nearest-of-five classifier" and grounded on
// original_source/biomenoise.h's NetherNoise struct.
type NetherNoise struct {
	temperature *DoublePerlin
	humidity    *DoublePerlin
}

// netherPoint is one of the five fixed climate anchors the nether
// classifier snaps to; biome is the id assigned to its Voronoi cell.
type netherPoint struct {
	t, h  float64
	biome BiomeID
}

var netherPoints = []netherPoint{
	{0, 0, NetherWastes},
	{0.4, 0, SoulSandValley},
	{-0.5, -0.8, CrimsonForest},
	{0.3, 0.6, WarpedForest},
	{0.1, -0.3, BasaltDeltas},
}

// NewNetherNoise seeds both climate fields from the world seed, distinct
// salts keeping them decorrelated the way the reference generator derives
// per-field xoroshiro streams.
func NewNetherNoise(seed uint64) *NetherNoise {
	tRng := NewXoroshiro128(seed ^ 0x5c7e6b07a1f3c9d1)
	hRng := NewXoroshiro128(seed ^ 0x71b1d8af2b4e6f19)
	amp := []float64{1, 1, 0, 0}
	return &NetherNoise{
		temperature: NewDoublePerlinX(tRng, amp, -7, 4, 0),
		humidity:    NewDoublePerlinX(hRng, amp, -7, 4, 0),
	}
}

// BiomeAt classifies a nether position by nearest netherPoint in
// (temperature, humidity) space.
func (n *NetherNoise) BiomeAt(x, y, z int64) BiomeID {
	t := n.temperature.Sample(float64(x), 0, float64(z))
	h := n.humidity.Sample(float64(x), 0, float64(z))

	best := 0
	bestDist := math.MaxFloat64
	for i, p := range netherPoints {
		dt := t - p.t
		dh := h - p.h
		d := dt*dt + dh*dh
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return netherPoints[best].biome
}

func (g *Generator) genNether(cache []BiomeID, r Range) error {
	if g.nether == nil {
		return errWrapUnsupportedVersion("nether seed not applied")
	}
	for iz := int32(0); iz < r.SZ; iz++ {
		for ix := int32(0); ix < r.SX; ix++ {
			wx := int64(r.X+ix) * int64(r.Scale)
			wz := int64(r.Z+iz) * int64(r.Scale)
			v := g.nether.BiomeAt(wx, int64(r.Y), wz)
			for iy := int32(0); iy < r.layers(); iy++ {
				cache[r.index(ix, iz, iy)] = v
			}
		}
	}
	return nil
}

// EndNoise is the end's climate pipeline: a single Perlin field combined
// with a radial falloff from the origin, matching spec.md §4.6's "single
// Perlin combined with a radial falloff" and grounded on
// original_source/biomenoise.h's EndNoise struct.
type EndNoise struct {
	perlin *Perlin
	seed   int64
}

// NewEndNoise seeds the single end Perlin lattice from an Lcg48 stream
// skipped forward 17292 steps, the reference generator's offset for
// decorrelating the end lattice from the structure RNG sharing the same
// seed.
func NewEndNoise(seed int64) *EndNoise {
	rng := NewLcg48(seed)
	rng.SkipN(17292)
	return &EndNoise{perlin: NewPerlin(rng), seed: seed}
}

// endFalloff is the radial term that turns the open ocean of the end
// dimension into small islands near the origin and highlands/barrens
// further out, shaped after the reference end biome classifier's simple
// distance-based regions.
func endFalloff(x, z int64) float64 {
	d := math.Sqrt(float64(x*x + z*z))
	return d/1024.0 - 1.0
}

// BiomeAt classifies an end position by combining the erosion-like Perlin
// reading with the radial falloff.
func (e *EndNoise) BiomeAt(x, y, z int64) BiomeID {
	fx := maintainPrecision(float64(x) / 8.0)
	fz := maintainPrecision(float64(z) / 8.0)
	height := e.perlin.Sample(fx, 0, fz, 0, 0)*8.0 + endFalloff(x, z)*32.0

	switch {
	case height < -20.0:
		return SmallEndIslands
	case height < 0.0:
		return EndBarrens
	case height < 40.0:
		return EndMidlands
	default:
		return EndHighlands
	}
}

// approxSurfaceBeta approximates a Beta-era surface height from the end
// Perlin field and the radial falloff, clamped at 0. It is not bit-exact
// with the game's height model (spec.md §9 Open Question (c)), and this
// package has no gateway-linkage search that calls it; only the tests do.
// Grounded on original_source/gatewayChecker.c's simplified height model.
func approxSurfaceBeta(e *EndNoise, x, z int64) int64 {
	fx := maintainPrecision(float64(x) / 16.0)
	fz := maintainPrecision(float64(z) / 16.0)
	n := e.perlin.Sample(fx, 0, fz, 0, 0)
	h := 64.0 + n*24.0 + endFalloff(x, z)*16.0
	if h < 0 {
		h = 0
	}
	return int64(h)
}

func (g *Generator) genEnd(cache []BiomeID, r Range) error {
	if g.end == nil {
		return errWrapUnsupportedVersion("end seed not applied")
	}
	for iz := int32(0); iz < r.SZ; iz++ {
		for ix := int32(0); ix < r.SX; ix++ {
			wx := int64(r.X+ix) * int64(r.Scale)
			wz := int64(r.Z+iz) * int64(r.Scale)
			v := g.end.BiomeAt(wx, int64(r.Y), wz)
			for iy := int32(0); iy < r.layers(); iy++ {
				cache[r.index(ix, iz, iy)] = v
			}
		}
	}
	return nil
}

func errWrapUnsupportedVersion(msg string) error {
	return wrapErr(ErrUnsupportedVersion, msg)
}
