package world

import "testing"

func TestMutatedRoundTrips(t *testing.T) {
	for _, base := range mutableBases {
		m := Mutated(base)
		if BaseOf(m) != base {
			t.Errorf("BaseOf(Mutated(%d)) = %d, want %d", base, BaseOf(m), base)
		}
	}
}

func TestMutatedBiomesHaveMetadata(t *testing.T) {
	for _, base := range mutableBases {
		b := Lookup(Mutated(base))
		if b == nil {
			t.Errorf("mutated variant of %d has no table entry", base)
			continue
		}
		if b.Name == "" {
			t.Errorf("mutated variant of %d has empty name", base)
		}
	}
}

func TestBaseOfIsIdentityBelowOffset(t *testing.T) {
	if BaseOf(Plains) != Plains {
		t.Errorf("BaseOf(Plains) = %d, want %d", BaseOf(Plains), Plains)
	}
}

func TestIsOceanicCoversAllOceanVariants(t *testing.T) {
	oceans := []BiomeID{
		Ocean, DeepOcean, FrozenOcean, DeepFrozenOcean,
		WarmOcean, LukewarmOcean, ColdOcean,
		DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean,
	}
	for _, id := range oceans {
		if !isOceanic(id) {
			t.Errorf("isOceanic(%d) = false, want true", id)
		}
	}
	if isOceanic(Plains) {
		t.Errorf("isOceanic(Plains) = true, want false")
	}
}

func TestIsBiomeSnowyMatchesTemperature(t *testing.T) {
	if !isBiomeSnowy(SnowyTundra) {
		t.Errorf("isBiomeSnowy(SnowyTundra) = false, want true")
	}
	if isBiomeSnowy(Desert) {
		t.Errorf("isBiomeSnowy(Desert) = true, want false")
	}
}

func TestEqualOrPlateauMesaVariants(t *testing.T) {
	if !equalOrPlateau(WoodedBadlandsPlateau, BadlandsPlateau) {
		t.Errorf("equalOrPlateau(WoodedBadlandsPlateau, BadlandsPlateau) = false, want true")
	}
	if equalOrPlateau(Plains, Desert) {
		t.Errorf("equalOrPlateau(Plains, Desert) = true, want false")
	}
}

func TestBiomeTableFieldsValid(t *testing.T) {
	for id, b := range biomeTable {
		if b.Name == "" {
			t.Errorf("biome ID %d has empty name", id)
		}
		if b.ID != id {
			t.Errorf("biome table entry for %d has mismatched ID %d", id, b.ID)
		}
	}
}
