package world

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/brentp/intintmap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Region-grid constants: translating a base seed between two region
// corners is an affine 64-bit map, and per-structure salts offset it.
// Bit-exact contract values per spec.md §6.
const (
	regionCoeffX uint64 = 341873128712
	regionCoeffZ uint64 = 132897987541

	swampHutSalt      uint64 = 14357617
	oceanMonumentSalt uint64 = 10387312 // spec.md §6; drives FindMonumentQuadCandidate

	regionChunks int64 = 32
)

// seedOfRegion is the algebraic identity spec.md §4.7 describes: the
// structure-check seed for region (rx,rz) is linear in rx,rz over 64-bit
// arithmetic, so translating a found seed to any other region never
// requires re-searching.
func seedOfRegion(seed int64, rx, rz int32, structSalt uint64) int64 {
	return int64(uint64(seed) + uint64(rx)*regionCoeffX + uint64(rz)*regionCoeffZ + structSalt)
}

// structureOffset returns the in-region chunk offset (each in [0,24)) a
// region's structure-placement roll selects, via the firstInt24/
// secondInt24 closed forms instead of constructing an Lcg48.
func structureOffset(regionSeed int64) (ox, oz int32) {
	return int32(firstInt24(regionSeed)), int32(secondInt24(regionSeed))
}

// cornerBand reports whether an offset in [0,24) falls within [lower,upper]
// of the edge nearest a shared region corner; near selects which edge is
// "near" for this quadrant (true = offset near 0, false = near 24).
func cornerBand(off, lower, upper int32, near bool) bool {
	if near {
		return off >= lower && off <= upper
	}
	return off >= 24-upper && off <= 24-lower
}

// checkTL/TR/BL/BR test one of the four regions surrounding a shared
// corner: each region's structure must land within the quality band of the
// edge touching that corner. Grounded on
// original_source/cubiomes/finders.c's checkTL/checkTR/checkBL/checkBR.
func checkTL(seed int64, rx, rz int32, structSalt uint64, lower, upper int32) bool {
	ox, oz := structureOffset(seedOfRegion(seed, rx, rz, structSalt))
	return cornerBand(ox, lower, upper, false) && cornerBand(oz, lower, upper, false)
}

func checkTR(seed int64, rx, rz int32, structSalt uint64, lower, upper int32) bool {
	ox, oz := structureOffset(seedOfRegion(seed, rx, rz, structSalt))
	return cornerBand(ox, lower, upper, true) && cornerBand(oz, lower, upper, false)
}

func checkBL(seed int64, rx, rz int32, structSalt uint64, lower, upper int32) bool {
	ox, oz := structureOffset(seedOfRegion(seed, rx, rz, structSalt))
	return cornerBand(ox, lower, upper, false) && cornerBand(oz, lower, upper, true)
}

func checkBR(seed int64, rx, rz int32, structSalt uint64, lower, upper int32) bool {
	ox, oz := structureOffset(seedOfRegion(seed, rx, rz, structSalt))
	return cornerBand(ox, lower, upper, true) && cornerBand(oz, lower, upper, true)
}

// swampPrecheck is the cheap swamp precheck run on each quad candidate: it
// builds a Layer whose world seed is the structure region seed, takes the
// chunk seed of cell (0,0) and accepts when mcNextInt(6)==5. It does not
// evaluate the world seed's biome layer at the south-east 1:256 cell, and
// no generator is constructed.
func swampPrecheck(regionSeed int64) bool {
	l := &Layer{worldSeed: uint64(regionSeed)}
	l.setChunkSeed(0, 0)
	return l.mcNextInt(6) == 5
}

// low20ResidueTable brute-forces the low-20-bit seed residues r for which
// checkTL(r, 0, 0) passes at the requested quality band. The check reads
// the region seed's bits 17 and up, which the low 20 bits alone do not fix,
// so a base whose residue is missing from the set can still pass the
// corner checks. It plays the role of spec.md §4.7's low20QuadIdeal/
// low20QuadClassic/low20QuadHutNormal/low20QuadHutBarely tables: the real
// game ships these as precomputed constants, but the tables themselves are
// data cut from the retrieval pack (DESIGN.md), so this computes an
// equivalent restriction once per search instead of hardcoding a mirrored
// literal table.
func low20ResidueTable(structSalt uint64, quality int32) []uint32 {
	lower, upper := quality, 23-quality
	var out []uint32
	const mask = (1 << 20) - 1
	for low := uint32(0); low <= mask; low++ {
		if checkTL(int64(low), 0, 0, structSalt, lower, upper) {
			out = append(out, low)
		}
	}
	return out
}

// FindQuadCandidate searches base seeds for a quad witch-hut candidate:
// four touching region corners that each place a swamp hut within the
// quality band of their shared corner, with the swamp biome precheck
// spec.md §4.7 mandates for this specific structure. Matches spec.md's
// findQuadCandidate(&outList, startSeed, regionRadius, quality) ->
// baseSeed, returning every 48-bit base found rather than only the first.
func FindQuadCandidate(ctx context.Context, startSeed int64, regionRadius int32, quality int32) ([]int64, error) {
	return findQuadCandidate(ctx, startSeed, regionRadius, quality, swampHutSalt, true)
}

// FindMonumentQuadCandidate searches base seeds for a quad ocean-monument
// candidate using the same region-corner algebra as FindQuadCandidate but
// salted with oceanMonumentSalt (spec.md §6) instead of swampHutSalt, and
// without the swamp-biome precheck that only applies to witch huts.
func FindMonumentQuadCandidate(ctx context.Context, startSeed int64, regionRadius int32, quality int32) ([]int64, error) {
	return findQuadCandidate(ctx, startSeed, regionRadius, quality, oceanMonumentSalt, false)
}

// findQuadCandidate is the structure-salt-generic search both
// FindQuadCandidate and FindMonumentQuadCandidate drive: four touching
// region corners must each place the salted structure within the quality
// band of their shared corner. regionRadius bounds how far from the origin
// region the search looks; quality narrows the acceptance band (0 =
// loosest). swampGate applies the swamp-biome precheck only the witch-hut
// search needs.
func findQuadCandidate(ctx context.Context, startSeed int64, regionRadius int32, quality int32, structSalt uint64, swampGate bool) ([]int64, error) {
	lower, upper := quality, 23-quality
	residues := low20ResidueTable(structSalt, quality)

	var mu sync.Mutex
	var found []int64

	g, ctx := errgroup.WithContext(ctx)
	var stop atomic.Bool

	const workers = 8
	chunk := (len(residues) + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(residues) {
			hi = len(residues)
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			seen := intintmap.New(1024, 0.75)
			var local []int64
			for i := lo; i < hi; i++ {
				if stop.Load() {
					return nil
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				low20 := int64(residues[i])
				for rx := -regionRadius; rx <= regionRadius; rx++ {
					for rz := -regionRadius; rz <= regionRadius; rz++ {
						for hi48 := int64(0); hi48 < 1<<16; hi48++ {
							base := startSeed + low20 + hi48<<20

							if !checkTL(base, rx, rz, structSalt, lower, upper) {
								continue
							}
							if !checkTR(base, rx+1, rz, structSalt, lower, upper) {
								continue
							}
							if !checkBL(base, rx, rz+1, structSalt, lower, upper) {
								continue
							}
							if !checkBR(base, rx+1, rz+1, structSalt, lower, upper) {
								continue
							}
							if swampGate {
								regionSeed := seedOfRegion(base, rx, rz, structSalt)
								if !swampPrecheck(regionSeed) {
									continue
								}
							}
							// The same base can satisfy more than one (rx,rz) corner within
							// this worker's residue range; dedupe hits here on the full base,
							// leaving the final slices.Compact to catch duplicates across workers.
							if _, ok := seen.Get(base); ok {
								continue
							}
							seen.Put(base, 1)
							local = append(local, base)
						}
					}
				}
			}
			if len(local) > 0 {
				mu.Lock()
				found = append(found, local...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.Sort(found)
	return slices.Compact(found), nil
}

// requiredBiomeCategories are the twelve biome families spec.md §8
// scenario 2 requires a qualifying all-biomes seed to contain.
var requiredBiomeCategories = []Category{
	CatOcean, CatPlains, CatDesert, CatExtremeHills, CatForest, CatTaiga,
	CatSwamp, CatIcePlains, CatMushroomIsland, CatJungle, CatSavanna, CatMesa,
}

// FindAllBiomesSeed sweeps [startSeed,endSeed) for a seed whose genBiomes
// output over area contains every category in requiredBiomeCategories.
// Filters run in this order: the full category set at 1:256, a mushroom
// island at 1:256, then a >=36-distinct-biome count at 1:4; there is no
// coarser 1:1024 warm/lush pass. Returns
// (0, false, nil) when no seed qualifies, never an error for "not found"
// (spec.md §7: the seed-finder reports zero hits via an empty result, not
// an error).
func FindAllBiomesSeed(ctx context.Context, startSeed, endSeed int64, version Version, area Range) (int64, bool, error) {
	area.Scale = 256
	cache256, err := AllocCache(area)
	if err != nil {
		return 0, false, err
	}

	var stop atomic.Bool
	const batch = 65536

	for base := startSeed; base < endSeed; base += batch {
		if stop.Load() {
			break
		}
		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		default:
		}
		end := base + batch
		if end > endSeed {
			end = endSeed
		}
		for seed := base; seed < end; seed++ {
			gen := SetupGenerator(version, 0)
			if err := gen.ApplySeed(Overworld, seed); err != nil {
				return 0, false, err
			}
			if err := gen.GenBiomes(Overworld, cache256, area); err != nil {
				return 0, false, err
			}
			if !hasAllCategories(cache256, requiredBiomeCategories) {
				continue
			}
			if !hasMushroomIsland(gen, area) {
				continue
			}
			if countDistinctBiomesAt4(gen, area) < 36 {
				continue
			}
			return seed, true, nil
		}
	}
	return 0, false, nil
}

func hasAllCategories(cache []BiomeID, want []Category) bool {
	seen := map[Category]bool{}
	for _, id := range cache {
		if b := Lookup(id); b != nil {
			seen[b.Category] = true
		}
	}
	for _, c := range want {
		if !seen[c] {
			return false
		}
	}
	return true
}

func hasMushroomIsland(gen *Generator, area Range) bool {
	r := area
	r.Scale = 256
	cache, err := AllocCache(r)
	if err != nil {
		return false
	}
	if err := gen.GenBiomes(Overworld, cache, r); err != nil {
		return false
	}
	for _, id := range cache {
		if id == MushroomFields || id == MushroomFieldShore {
			return true
		}
	}
	return false
}

func countDistinctBiomesAt4(gen *Generator, area Range) int {
	r := area
	r.Scale = 4
	cache, err := AllocCache(r)
	if err != nil {
		return 0
	}
	if err := gen.GenBiomes(Overworld, cache, r); err != nil {
		return 0
	}
	seen := map[BiomeID]bool{}
	for _, id := range cache {
		seen[id] = true
	}
	return len(seen)
}
