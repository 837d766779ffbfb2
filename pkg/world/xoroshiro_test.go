package world

import "testing"

func TestXoroshiro128Determinism(t *testing.T) {
	a := NewXoroshiro128(42)
	b := NewXoroshiro128(42)
	for i := 0; i < 100; i++ {
		if a.NextLong() != b.NextLong() {
			t.Fatalf("NextLong diverged at iteration %d", i)
		}
	}
}

func TestXoroshiro128DifferentSeedsDiverge(t *testing.T) {
	a := NewXoroshiro128(1)
	b := NewXoroshiro128(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.NextLong() == b.NextLong() {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("different seeds produced %d/64 identical draws", same)
	}
}

func TestXoroshiro128NextIntInRange(t *testing.T) {
	x := NewXoroshiro128(7)
	for i := 0; i < 5000; i++ {
		v := x.NextInt(37)
		if v >= 37 {
			t.Fatalf("NextInt(37) = %d, out of range", v)
		}
	}
}

func TestXoroshiro128NeverAllZeroState(t *testing.T) {
	x := NewXoroshiro128(0)
	lo, hi := x.State()
	if lo == 0 && hi == 0 {
		t.Fatalf("seed 0 produced degenerate all-zero state")
	}
}

func TestXoroshiro128NextIntJAndNextLongJDeterministic(t *testing.T) {
	a := NewXoroshiro128(13)
	b := NewXoroshiro128(13)
	for i := 0; i < 50; i++ {
		if a.NextIntJ(100) != b.NextIntJ(100) {
			t.Fatalf("NextIntJ diverged at iteration %d", i)
		}
	}
	for i := 0; i < 50; i++ {
		if a.NextLongJ() != b.NextLongJ() {
			t.Fatalf("NextLongJ diverged at iteration %d", i)
		}
	}
}

func TestXoroshiro128RawStateRoundtrip(t *testing.T) {
	a := NewXoroshiro128(9)
	lo, hi := a.State()

	b := &Xoroshiro128{}
	b.SetRawState(lo, hi)
	if a.NextLong() != b.NextLong() {
		t.Fatalf("SetRawState did not reproduce the source stream")
	}
}
