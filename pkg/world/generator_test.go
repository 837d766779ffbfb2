package world

import "testing"

func TestSetupGeneratorLegacyExposesAllScales(t *testing.T) {
	gen := SetupGenerator(V1_12, 0)
	if err := gen.ApplySeed(Overworld, 1); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}
	for _, scale := range []int32{256, 64, 16, 4, 1} {
		if _, err := gen.GetLayerForScale(scale); err != nil {
			t.Errorf("GetLayerForScale(%d): %v", scale, err)
		}
	}
}

func TestGetLayerForScaleRejectsUnknownScale(t *testing.T) {
	gen := SetupGenerator(V1_12, 0)
	_ = gen.ApplySeed(Overworld, 1)
	if _, err := gen.GetLayerForScale(7); err == nil {
		t.Fatal("expected unsupported-scale error for scale=7")
	}
}

func TestModernGeneratorHasNoLayerGraph(t *testing.T) {
	gen := SetupGenerator(V1_16, 0)
	_ = gen.ApplySeed(Overworld, 1)
	if _, err := gen.GetLayerForScale(4); err == nil {
		t.Fatal("expected error: modern generator should not expose a layer graph")
	}
}

func TestGenBiomesDeterministicLegacy(t *testing.T) {
	r := Range{Scale: 4, X: -8, Z: -8, SX: 16, SZ: 16}

	run := func() []BiomeID {
		gen := SetupGenerator(V1_12, 0)
		if err := gen.ApplySeed(Overworld, 999); err != nil {
			t.Fatalf("ApplySeed: %v", err)
		}
		cache, err := AllocCache(r)
		if err != nil {
			t.Fatalf("AllocCache: %v", err)
		}
		if err := gen.GenBiomes(Overworld, cache, r); err != nil {
			t.Fatalf("GenBiomes: %v", err)
		}
		return cache
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("GenBiomes not deterministic at cell %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestGenBiomesDeterministicModern(t *testing.T) {
	r := Range{Scale: 4, X: -8, Z: -8, SX: 16, SZ: 16, Y: 16, SY: 1}

	run := func() []BiomeID {
		gen := SetupGenerator(V1_16, 0)
		if err := gen.ApplySeed(Overworld, 999); err != nil {
			t.Fatalf("ApplySeed: %v", err)
		}
		cache, err := AllocCache(r)
		if err != nil {
			t.Fatalf("AllocCache: %v", err)
		}
		if err := gen.GenBiomes(Overworld, cache, r); err != nil {
			t.Fatalf("GenBiomes: %v", err)
		}
		return cache
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("GenBiomes not deterministic at cell %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestGetBiomeAtMatchesGenBiomesSingleCell(t *testing.T) {
	gen := SetupGenerator(V1_12, 0)
	if err := gen.ApplySeed(Overworld, 42); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	id, err := gen.GetBiomeAt(Overworld, 4, 10, 64, -6)
	if err != nil {
		t.Fatalf("GetBiomeAt: %v", err)
	}

	r := Range{Scale: 4, X: 10 / 4, Z: -6 / 4, SX: 1, SZ: 1}
	cache, err := AllocCache(r)
	if err != nil {
		t.Fatalf("AllocCache: %v", err)
	}
	if err := gen.GenBiomes(Overworld, cache, r); err != nil {
		t.Fatalf("GenBiomes: %v", err)
	}
	if cache[0] != id {
		t.Fatalf("GetBiomeAt = %v, GenBiomes at same cell = %v", id, cache[0])
	}
}
