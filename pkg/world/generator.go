package world

import "fmt"

// Version is an ordinal over the supported release range; ordering is
// meaningful because several behaviors are gated by range comparisons.
type Version int32

const (
	V1_7 Version = iota
	V1_9
	V1_12
	V1_13
	V1_15
	V1_16
)

// isLegacy reports whether v uses the layer-graph cascade (C3) rather than
// the noise/spline/decision-tree pipeline (C5+C6).
func (v Version) isLegacy() bool { return v <= V1_12 }

// Dimension selects which of the three small worldgen pipelines a query
// targets.
type Dimension int32

const (
	Overworld Dimension = iota
	Nether
	End
)

// Flags toggles documented pipeline variants, matching spec.md §6.
type Flags uint32

const (
	// LargeBiomes multiplies the modern climate fields' horizontal
	// wavelength by 4.
	LargeBiomes Flags = 1 << iota
	// ForceOceanVariants is accepted and stored, but no pipeline in this
	// package reads it: there is no ocean-mix chain for it to replace.
	ForceOceanVariants
	// NoBetaOcean is accepted and stored, but no pipeline in this package
	// reads it: there is no Beta-era ocean classifier for it to disable.
	NoBetaOcean
	// SampleNoShift skips the lateral shift/jitter sample in the modern
	// climate pipeline.
	SampleNoShift
)

// Generator is the version-dispatched entry point: it owns the seeded
// state for whichever pipeline(s) its version/dimension selects and
// exposes the rectangular-region query surface. A Generator is not safe
// for concurrent mutation (ApplySeed rewrites per-layer startSalt); each
// worker must own its own instance, matching spec.md §5.
type Generator struct {
	version Version
	flags   Flags
	seed    int64

	legacy *legacyStack
	modern *BiomeNoise
	nether *NetherNoise
	end    *EndNoise
}

// SetupGenerator builds the structural (seed-independent) pipeline for a
// version/flags pair: the layer-graph wiring for legacy versions. Modern
// climate fields are constructed lazily in ApplySeed since every
// DoublePerlin is seed-derived from the start.
func SetupGenerator(version Version, flags Flags) *Generator {
	g := &Generator{version: version, flags: flags}
	if version.isLegacy() {
		g.legacy = newLayerStack1_7()
	}
	return g
}

// ApplySeed seeds the generator for a dimension, matching spec.md §4.6's
// applySeed: it descends the layer DAG via startSalt for legacy versions,
// or reinitializes every climate DoublePerlin for modern ones.
func (g *Generator) ApplySeed(dim Dimension, seed int64) error {
	g.seed = seed
	switch dim {
	case Overworld:
		if g.legacy != nil {
			g.legacy.applySeed(seed)
			return nil
		}
		g.modern = NewBiomeNoise(uint64(seed), g.flags&LargeBiomes != 0, g.flags&SampleNoShift != 0)
		return nil
	case Nether:
		g.nether = NewNetherNoise(uint64(seed))
		return nil
	case End:
		g.end = NewEndNoise(seed)
		return nil
	default:
		return fmt.Errorf("world: %w: dimension %d", ErrUnsupportedVersion, dim)
	}
}

// GetLayerForScale returns the cached legacy entry layer for scale,
// honoring the rule that a scale-k query must use a layer whose
// native scale == k. Only legacy (layer-graph) versions expose layers.
func (g *Generator) GetLayerForScale(scale int32) (*Layer, error) {
	if g.legacy == nil {
		return nil, fmt.Errorf("world: %w: no layer graph for this version", ErrUnsupportedScale)
	}
	l, ok := g.legacy.entries[scale]
	if !ok {
		return nil, fmt.Errorf("world: %w: scale=%d", ErrUnsupportedScale, scale)
	}
	return l, nil
}

// GenBiomes fills cache (sized per getMinCacheSize(r)) with the biome ids
// covering r, dispatching on dimension and version.
func (g *Generator) GenBiomes(dim Dimension, cache []BiomeID, r Range) error {
	n, err := getMinCacheSize(r)
	if err != nil {
		return err
	}
	if len(cache) < n {
		return fmt.Errorf("world: %w: cache holds %d cells, need %d", ErrInvalidRange, len(cache), n)
	}

	switch dim {
	case Overworld:
		return g.genOverworld(cache, r)
	case Nether:
		return g.genNether(cache, r)
	case End:
		return g.genEnd(cache, r)
	default:
		return fmt.Errorf("world: %w: dimension %d", ErrUnsupportedVersion, dim)
	}
}

func (g *Generator) genOverworld(cache []BiomeID, r Range) error {
	if g.legacy != nil {
		l, err := g.GetLayerForScale(r.Scale)
		if err != nil {
			return err
		}
		row := make([]BiomeID, r.SX*r.SZ)
		l.Get(r.X, r.Z, r.SX, r.SZ, row)
		for iz := int32(0); iz < r.SZ; iz++ {
			for ix := int32(0); ix < r.SX; ix++ {
				v := row[ix+iz*r.SX]
				for iy := int32(0); iy < r.layers(); iy++ {
					cache[r.index(ix, iz, iy)] = v
				}
			}
		}
		return nil
	}
	if g.modern == nil {
		return fmt.Errorf("world: %w: overworld seed not applied", ErrUnsupportedVersion)
	}
	yscale := int64(1)
	if r.Scale != 1 {
		yscale = 4
	}
	for iz := int32(0); iz < r.SZ; iz++ {
		for ix := int32(0); ix < r.SX; ix++ {
			wx := int64(r.X+ix) * int64(r.Scale)
			wz := int64(r.Z+iz) * int64(r.Scale)
			for iy := int32(0); iy < r.layers(); iy++ {
				wy := int64(r.Y+iy) * yscale
				cache[r.index(ix, iz, iy)] = g.modern.BiomeAt(wx, wy, wz)
			}
		}
	}
	return nil
}

// GetBiomeAt is a convenience 1x1x1 query; it allocates a minimal cache
// and frees it, matching spec.md §4.6.
func (g *Generator) GetBiomeAt(dim Dimension, scale int32, x, y, z int32) (BiomeID, error) {
	if scale == 0 {
		return None, fmt.Errorf("world: %w: scale=0", ErrUnsupportedScale)
	}
	r := Range{Scale: scale, X: x / scale, Z: z / scale, SX: 1, SZ: 1, Y: y, SY: 1}
	var result BiomeID
	err := WithCache(r, func(cache []BiomeID) error {
		if err := g.GenBiomes(dim, cache, r); err != nil {
			return err
		}
		result = cache[0]
		return nil
	})
	if err != nil {
		return None, err
	}
	return result, nil
}

// legacyStack is the arena of layer nodes for the 1.7-1.12 release range
// (spec.md §4.3's "one representative wiring" scope decision; see
// DESIGN.md Open Question (b)). Layers are cached at every scale Range
// can request.
type legacyStack struct {
	entries map[int32]*Layer
	root    *Layer
}

func (s *legacyStack) applySeed(seed int64) {
	s.root.setBaseSeed(seed)
}

// newLayerStack1_7 wires the legacy cascade: continent seed, island
// growth/erosion, temperature banding, biome assignment, a hills pass
// fed by its own noise-init branch, edge smoothing, a separately-zoomed
// river branch merged back in via riverMix, and a final jittered
// voronoi zoom to block resolution. Grounded on
// original_source/cubiomes/layers.c's GenLayers wiring; salts reused
// from layers_ops.go.
func newLayerStack1_7() *legacyStack {
	root := NewLayer(islandSalt, island, nil)

	z1 := NewLayer(zoomSalt, zoom, root)
	ai1 := NewLayer(addIslandSalt, addIsland, z1)
	z2 := NewLayer(zoomSalt+1, zoom, ai1)
	ai2 := NewLayer(addIslandSalt+1, addIsland, z2)
	ai3 := NewLayer(addIslandSalt+2, addIsland, ai2)
	rto := NewLayer(removeTooMuchOceanSalt, removeTooMuchOcean, ai3)
	as := NewLayer(addSnowSalt, addSnow, rto)

	entry64 := as

	z3 := NewLayer(zoomSalt+2, zoom, as)
	ai4 := NewLayer(addIslandSalt+3, addIsland, z3)
	cw := NewLayer(coolWarmSalt, coolWarm, ai4)
	hi := NewLayer(heatIceSalt, heatIce, cw)
	sp := NewLayer(specialSalt, special, hi)

	entry16 := sp

	z4 := NewLayer(zoomSalt+3, zoom, sp)
	z5 := NewLayer(zoomSalt+4, zoom, z4)
	am := NewLayer(addMushroomIslandSalt, addMushroomIsland, z5)
	do := NewLayer(deepOceanSalt, deepOcean, am)
	bi := NewLayer(biomeSalt, biome, do)

	ni := NewLayer(noiseInitSalt, riverInit, ai4)
	niz1 := NewLayer(zoomSalt+9, zoom, ni)
	niz2 := NewLayer(zoomSalt+10, zoom, niz1)
	hl := &Layer{baseSeed: uint64(hillsSalt), Parent: bi, Parent2: niz2, run: hills}

	be := NewLayer(biomeEdgeSalt, biomeEdge, hl)
	sh := NewLayer(shoreSalt, shore, be)

	entry4 := sh

	rv0 := NewLayer(riverInitSalt, riverInit, ai2)
	rvz1 := NewLayer(zoomSalt+5, zoom, rv0)
	rvz2 := NewLayer(zoomSalt+6, zoom, rvz1)
	rvz3 := NewLayer(zoomSalt+7, zoom, rvz2)
	rvz4 := NewLayer(zoomSalt+8, zoom, rvz3)
	rv := NewLayer(riverSalt, river, rvz4)
	rsm := NewLayer(smoothSalt, smooth, rv)

	rmix := &Layer{baseSeed: uint64(riverMixSalt), Parent: sh, Parent2: rsm, run: riverMix}

	vzoom := NewLayer(voronoiZoomSalt, voronoiZoom, rmix)

	entry1 := vzoom

	return &legacyStack{
		root: entry1,
		entries: map[int32]*Layer{
			256: root,
			64:  entry64,
			16:  entry16,
			4:   entry4,
			1:   entry1,
		},
	}
}
