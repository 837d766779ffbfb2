package world

// layerFunc is the pure transform every legacy biome layer implements:
// given the parent layer's output over a (w+dw)x(h+dh) source rectangle
// it reads from, produce the wxh output rectangle at (x,z).
type layerFunc func(l *Layer, x, z, w, h int32, out []BiomeID)

// Layer is one stage of the legacy biome cascade. Layers form a DAG via
// Parent/Parent2 (most layers have one parent; mergers like mapRiverMix
// and mapHills read two). Each layer owns its own chunk-seed derivation
// so that re-querying the same output coordinate is reproducible
// regardless of evaluation order.
type Layer struct {
	baseSeed  uint64
	worldSeed uint64
	chunkSeed uint64

	Parent  *Layer
	Parent2 *Layer

	run layerFunc
}

// NewLayer constructs a layer with the given per-layer salt and transform.
// The salt distinguishes otherwise-identical layers in the stack the same
// way the reference generator threads a constant per mapXxx call site.
func NewLayer(salt int64, run layerFunc, parent *Layer) *Layer {
	return &Layer{baseSeed: uint64(salt), Parent: parent, run: run}
}

// setBaseSeed seeds a layer (and transitively its parents) from the
// world seed, matching setBaseSeed/setWorldSeed in the reference layer
// graph: base seed mixes in the per-layer salt, then the same formula
// folds in the world seed to produce the layer's persistent seed.
func (l *Layer) setBaseSeed(worldSeed int64) {
	seen := map[*Layer]bool{}
	var walk func(*Layer)
	walk = func(n *Layer) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		salt := n.baseSeed
		s := salt
		s = s*6364136223846793005 + 1442695040888963407 + salt
		s = s*6364136223846793005 + 1442695040888963407 + salt
		s = s*6364136223846793005 + 1442695040888963407 + salt
		n.worldSeed = s
		n.worldSeed = n.worldSeed*6364136223846793005 + 1442695040888963407 + uint64(worldSeed)
		walk(n.Parent)
		walk(n.Parent2)
	}
	walk(l)
}

// setChunkSeed derives the per-cell seed a layer's mcNextInt draws consume,
// folding x, z, x, z into the world seed in four LCG rounds.
func (l *Layer) setChunkSeed(x, z int64) {
	s := l.worldSeed
	s = s*6364136223846793005 + 1442695040888963407 + uint64(x)
	s = s*6364136223846793005 + 1442695040888963407 + uint64(z)
	s = s*6364136223846793005 + 1442695040888963407 + uint64(x)
	s = s*6364136223846793005 + 1442695040888963407 + uint64(z)
	l.chunkSeed = s
}

// mcNextInt returns the chunk seed shifted right by 24 bits, modulo mod,
// then advances the chunk seed, matching the reference mcNextInt.
func (l *Layer) mcNextInt(mod int32) int32 {
	v := int32(int64(l.chunkSeed>>24) % int64(mod))
	if v < 0 {
		v += mod
	}
	l.chunkSeed = l.chunkSeed*6364136223846793005 + 1442695040888963407 + l.worldSeed
	return v
}

// Get evaluates the layer at (x,z) over a wxh rectangle into out, which
// must have capacity w*h.
func (l *Layer) Get(x, z, w, h int32, out []BiomeID) {
	l.run(l, x, z, w, h, out)
}

// GetOne is a convenience wrapper for a single-cell query.
func (l *Layer) GetOne(x, z int32) BiomeID {
	out := make([]BiomeID, 1)
	l.Get(x, z, 1, 1, out)
	return out[0]
}
