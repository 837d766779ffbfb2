package world

import "testing"

func TestGetMinCacheSizeRejectsNonPositiveExtents(t *testing.T) {
	_, err := getMinCacheSize(Range{Scale: 4, SX: 0, SZ: 10})
	if err == nil {
		t.Fatal("expected error for sx=0, got nil")
	}
}

func TestGetMinCacheSizeRejectsUnsupportedScale(t *testing.T) {
	_, err := getMinCacheSize(Range{Scale: 3, SX: 4, SZ: 4})
	if err == nil {
		t.Fatal("expected error for scale=3, got nil")
	}
}

func TestGetMinCacheSizeScaleZeroIsUnsupportedWithoutManualEntry(t *testing.T) {
	_, err := getMinCacheSize(Range{Scale: 0, SX: 4, SZ: 4})
	if err == nil {
		t.Fatal("expected unsupported-scale for scale=0 (no manual entry layer installed)")
	}
}

func TestGetMinCacheSizeCountsVerticalLayers(t *testing.T) {
	n, err := getMinCacheSize(Range{Scale: 4, SX: 2, SZ: 3, SY: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2*3*5 {
		t.Fatalf("getMinCacheSize = %d, want %d", n, 2*3*5)
	}
}

func TestAllocCacheSizeMatchesGetMinCacheSize(t *testing.T) {
	r := Range{Scale: 16, SX: 10, SZ: 10}
	n, err := getMinCacheSize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache, err := AllocCache(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache) != n {
		t.Fatalf("AllocCache returned %d cells, want %d", len(cache), n)
	}
}

func TestWithCacheRunsCallbackAndPropagatesError(t *testing.T) {
	wantErr := ErrAllocationFailed
	err := WithCache(Range{Scale: 1, SX: 1, SZ: 1}, func(cache []BiomeID) error {
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("WithCache error = %v, want %v", err, wantErr)
	}
}

func TestFingerprintDeterministicAndOrderSensitive(t *testing.T) {
	a := []BiomeID{Plains, Desert, Ocean}
	b := []BiomeID{Plains, Desert, Ocean}
	c := []BiomeID{Ocean, Desert, Plains}

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("Fingerprint should be deterministic for identical cache contents")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Fatal("Fingerprint should distinguish different cell orderings")
	}
}

func TestRangeIndexMatchesSpecLayout(t *testing.T) {
	r := Range{SX: 4, SZ: 5}
	got := r.index(2, 3, 1)
	want := 1*4*5 + 3*4 + 2
	if got != want {
		t.Fatalf("index = %d, want %d", got, want)
	}
}
