package world

import "testing"

func TestNetherNoiseDeterminism(t *testing.T) {
	a := NewNetherNoise(55)
	b := NewNetherNoise(55)

	for _, p := range [][3]int64{{0, 64, 0}, {200, 32, -100}} {
		if got, want := a.BiomeAt(p[0], p[1], p[2]), b.BiomeAt(p[0], p[1], p[2]); got != want {
			t.Fatalf("NetherNoise.BiomeAt(%v) not deterministic: %d != %d", p, got, want)
		}
	}
}

func TestNetherNoiseReturnsKnownNetherBiome(t *testing.T) {
	n := NewNetherNoise(1)
	id := n.BiomeAt(0, 64, 0)
	switch id {
	case NetherWastes, SoulSandValley, CrimsonForest, WarpedForest, BasaltDeltas:
	default:
		t.Fatalf("BiomeAt returned %d, not one of the five nether biomes", id)
	}
}

func TestEndNoiseDeterminism(t *testing.T) {
	a := NewEndNoise(7)
	b := NewEndNoise(7)
	for _, p := range [][3]int64{{0, 64, 0}, {5000, 64, 5000}} {
		if got, want := a.BiomeAt(p[0], p[1], p[2]), b.BiomeAt(p[0], p[1], p[2]); got != want {
			t.Fatalf("EndNoise.BiomeAt(%v) not deterministic: %d != %d", p, got, want)
		}
	}
}

func TestEndNoiseFarFromOriginIsHighlandsOrMidlands(t *testing.T) {
	e := NewEndNoise(1)
	id := e.BiomeAt(100000, 64, 100000)
	if id != EndHighlands && id != EndMidlands {
		t.Fatalf("BiomeAt far from origin = %d, want EndHighlands or EndMidlands", id)
	}
}

func TestApproxSurfaceBetaNonNegative(t *testing.T) {
	e := NewEndNoise(1)
	h := approxSurfaceBeta(e, 100, 100)
	if h < 0 {
		t.Fatalf("approxSurfaceBeta = %d, want >= 0", h)
	}
}
