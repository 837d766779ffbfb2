package world

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Range describes a rectangular (or cuboid) biome query: a horizontal
// scale factor, a north-west corner, and extents. Vertical scale is
// implicitly 1:1 when Scale==1 and 1:4 otherwise; SY==0 means a flat 2D
// query at Y.
type Range struct {
	Scale  int32
	X, Z   int32
	SX, SZ int32
	Y, SY  int32
}

// validScales enumerates the horizontal scales a Range may request.
// Scale==0 is the caller's signal that it installed a manual entry layer
// via a custom Generator wiring; this implementation has none, so it
// always reports unsupported-scale for it, matching spec.md §8's boundary
// behavior ("missing installation yields unsupported-scale").
var validScales = map[int32]bool{1: true, 4: true, 16: true, 64: true, 256: true}

func (r Range) validate() error {
	if r.SX <= 0 || r.SZ <= 0 {
		return fmt.Errorf("world: %w: sx=%d sz=%d must be positive", ErrInvalidRange, r.SX, r.SZ)
	}
	if r.Scale != 0 && !validScales[r.Scale] {
		return fmt.Errorf("world: %w: scale=%d", ErrUnsupportedScale, r.Scale)
	}
	if r.Scale == 0 {
		return fmt.Errorf("world: %w: scale=0 requires a manual entry layer", ErrUnsupportedScale)
	}
	return nil
}

func (r Range) layers() int32 {
	if r.SY <= 0 {
		return 1
	}
	return r.SY
}

// getMinCacheSize is the single source of truth for buffer sizing: callers
// MUST use it (or a value precomputed from it) before allocating, per
// spec.md §5's memory-discipline requirement.
func getMinCacheSize(r Range) (int, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	return int(r.SX) * int(r.SZ) * int(r.layers()), nil
}

// index maps a 3D cache coordinate to its flat offset, matching spec.md
// §6's Range layout: out[i_y*sx*sz + i_z*sx + i_x].
func (r Range) index(ix, iz, iy int32) int {
	return int(iy)*int(r.SX)*int(r.SZ) + int(iz)*int(r.SX) + int(ix)
}

// AllocCache allocates a buffer sized for r. Ownership: the caller frees it
// (via FreeCache, or implicitly by letting it be garbage collected) once
// done; the generator only ever writes into an already-allocated buffer.
func AllocCache(r Range) ([]BiomeID, error) {
	n, err := getMinCacheSize(r)
	if err != nil {
		return nil, err
	}
	cache := make([]BiomeID, n)
	if cache == nil {
		return nil, fmt.Errorf("world: %w", ErrAllocationFailed)
	}
	return cache, nil
}

// FreeCache releases a cache buffer. Go's allocator needs no explicit
// free, but the call site is kept so every AllocCache has a matching
// release on every exit path, the scoped-acquisition discipline spec.md §5
// and §9 require of callers in languages that do need one.
func FreeCache(cache []BiomeID) {}

// WithCache is the scoped-acquisition wrapper spec.md §9 asks for: it
// allocates a cache sized for r, guarantees FreeCache runs on every exit
// path (including a panic unwinding through fn), and hands the buffer to
// fn.
func WithCache(r Range, fn func(cache []BiomeID) error) error {
	cache, err := AllocCache(r)
	if err != nil {
		return err
	}
	defer FreeCache(cache)
	return fn(cache)
}

// Fingerprint hashes a filled cache buffer for cheap log/debug comparison
// (e.g. confirming two GenBiomes runs over the same Range agree without
// diffing every cell). Not part of the query contract itself.
func Fingerprint(cache []BiomeID) uint64 {
	buf := make([]byte, 4)
	h := xxhash.New()
	for _, id := range cache {
		binary.LittleEndian.PutUint32(buf, uint32(id))
		h.Write(buf)
	}
	return h.Sum64()
}
