package world

import (
	"context"
	"testing"
)

func TestSeedOfRegionIsLinearInRegionCoords(t *testing.T) {
	seed := int64(100)
	a := seedOfRegion(seed, 1, 0, swampHutSalt)
	b := seedOfRegion(seed, 0, 0, swampHutSalt)
	want := int64(uint64(b) + regionCoeffX)
	if a != want {
		t.Fatalf("seedOfRegion(rx=1) - seedOfRegion(rx=0) mismatch: got %d, want delta %d", a-b, regionCoeffX)
	}
}

func TestCornerBandNearZero(t *testing.T) {
	if !cornerBand(1, 0, 5, true) {
		t.Fatal("offset 1 should be within [0,5] near the zero edge")
	}
	if cornerBand(20, 0, 5, true) {
		t.Fatal("offset 20 should not be within [0,5] near the zero edge")
	}
}

func TestCornerBandNearTwentyFour(t *testing.T) {
	if !cornerBand(23, 0, 5, false) {
		t.Fatal("offset 23 should be within band near the 24 edge")
	}
	if cornerBand(10, 0, 5, false) {
		t.Fatal("offset 10 should not be within band near the 24 edge")
	}
}

func TestSwampPrecheckDeterministic(t *testing.T) {
	a := swampPrecheck(123456789)
	b := swampPrecheck(123456789)
	if a != b {
		t.Fatal("swampPrecheck not deterministic")
	}
}

func TestFindQuadCandidateReturnsSortedUniqueResults(t *testing.T) {
	found, err := FindQuadCandidate(context.Background(), 0, 0, 11)
	if err != nil {
		t.Fatalf("FindQuadCandidate: %v", err)
	}
	for i := 1; i < len(found); i++ {
		if found[i-1] >= found[i] {
			t.Fatalf("results not strictly increasing at index %d: %d >= %d", i, found[i-1], found[i])
		}
	}
}

func TestFindMonumentQuadCandidateReturnsSortedUniqueResults(t *testing.T) {
	found, err := FindMonumentQuadCandidate(context.Background(), 0, 0, 11)
	if err != nil {
		t.Fatalf("FindMonumentQuadCandidate: %v", err)
	}
	for i := 1; i < len(found); i++ {
		if found[i-1] >= found[i] {
			t.Fatalf("results not strictly increasing at index %d: %d >= %d", i, found[i-1], found[i])
		}
	}
}

func TestFindAllBiomesSeedReturnsNoHitWithoutError(t *testing.T) {
	area := Range{X: -2, Z: -2, SX: 4, SZ: 4}
	seed, ok, err := FindAllBiomesSeed(context.Background(), 0, 4, V1_12, area)
	if err != nil {
		t.Fatalf("FindAllBiomesSeed: %v", err)
	}
	if ok {
		t.Logf("found qualifying seed %d in tiny range (acceptable, not required)", seed)
	}
}
