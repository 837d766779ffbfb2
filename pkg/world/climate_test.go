package world

import "testing"

func TestBiomeNoiseDeterminism(t *testing.T) {
	a := NewBiomeNoise(12345, false, false)
	b := NewBiomeNoise(12345, false, false)

	for _, p := range [][3]int64{{0, 64, 0}, {1000, 64, -500}, {-12345, 80, 6789}} {
		ida := a.BiomeAt(p[0], p[1], p[2])
		idb := b.BiomeAt(p[0], p[1], p[2])
		if ida != idb {
			t.Fatalf("BiomeAt(%v) not deterministic: %d != %d", p, ida, idb)
		}
	}
}

func TestBiomeNoiseLargeBiomesChangesWavelength(t *testing.T) {
	normal := NewBiomeNoise(1, false, false)
	large := NewBiomeNoise(1, true, false)

	cn := normal.climateAt(2000, 64, 2000)
	cl := large.climateAt(2000, 64, 2000)
	if cn == cl {
		t.Fatalf("large-biomes flag had no effect on the climate vector")
	}
}

func TestBiomeNoiseSetNPTypeReturnsRawAxis(t *testing.T) {
	bn := NewBiomeNoise(7, false, false)
	bn.SetNPType(NPTemperature)
	full := bn.climateAt(100, 64, 100)
	got := bn.BiomeAt(100, 64, 100)
	if int64(got) != full[NPTemperature] {
		t.Fatalf("SetNPType(NPTemperature) returned %d, want raw axis value %d", got, full[NPTemperature])
	}
}

func TestClimateSampleAxisOutOfRangeIsSafe(t *testing.T) {
	var cs ClimateSample
	if v := cs.axis(-1); v != 0 {
		t.Fatalf("axis(-1) = %v, want 0", v)
	}
}
