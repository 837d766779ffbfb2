package world

import "testing"

func TestBiomeTreeQueryPicksContainingLeaf(t *testing.T) {
	tree := defaultBiomeTree()
	p := [NPMax]int64{
		NPContinentalness: fp(-1.5),
		NPDepth:           fp(-1.0),
	}
	got := tree.Query(p)
	if got != DeepOcean {
		t.Fatalf("Query(deep ocean point) = %v, want DeepOcean", Lookup(got))
	}
}

func TestBiomeTreeQueryIsDeterministic(t *testing.T) {
	tree := defaultBiomeTree()
	p := [NPMax]int64{
		NPContinentalness: fp(0.3),
		NPTemperature:     fp(0.6),
		NPHumidity:        fp(-0.5),
		NPWeirdness:       fp(-0.4),
	}
	a := tree.Query(p)
	b := tree.Query(p)
	if a != b {
		t.Fatalf("Query not deterministic: %v != %v", a, b)
	}
}

func TestTreeAxisBoxSqDistZeroInside(t *testing.T) {
	box := unconstrainedBox().with(NPContinentalness, fp(-1), fp(1))
	p := [NPMax]int64{NPContinentalness: fp(0)}
	if d := box.sqDist(p); d != 0 {
		t.Fatalf("sqDist inside box = %d, want 0", d)
	}
}

func TestTreeAxisBoxSqDistPositiveOutside(t *testing.T) {
	box := unconstrainedBox().with(NPContinentalness, fp(-1), fp(1))
	p := [NPMax]int64{NPContinentalness: fp(2)}
	if d := box.sqDist(p); d <= 0 {
		t.Fatalf("sqDist outside box = %d, want > 0", d)
	}
}
