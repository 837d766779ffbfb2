package world

import (
	"math"
	"testing"
)

func TestPerlinDeterminism(t *testing.T) {
	p1 := NewPerlin(NewLcg48(12345))
	p2 := NewPerlin(NewLcg48(12345))

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		z := float64(i) * 0.53
		if p1.Sample(x, 0, z, 0, 0) != p2.Sample(x, 0, z, 0, 0) {
			t.Fatalf("Sample not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestPerlinXDeterminism(t *testing.T) {
	p1 := NewPerlinX(NewXoroshiro128(12345))
	p2 := NewPerlinX(NewXoroshiro128(12345))

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		z := float64(i) * 0.53
		if p1.Sample(x, 0, z, 0, 0) != p2.Sample(x, 0, z, 0, 0) {
			t.Fatalf("Sample not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(NewLcg48(42))
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.1 - 500
		z := float64(i)*0.07 - 350
		v := p.Sample(x, 0, z, 0, 0)
		if v < -2.0 || v > 2.0 {
			t.Errorf("Sample(%f, 0, %f) = %f, out of expected range", x, z, v)
		}
	}
}

func TestPerlin3DRange(t *testing.T) {
	p := NewPerlin(NewLcg48(99))
	for i := 0; i < 5000; i++ {
		x := float64(i)*0.13 - 300
		y := float64(i)*0.07 - 200
		z := float64(i)*0.09 - 100
		v := p.Sample(x, y, z, 0, 0)
		if v < -2.0 || v > 2.0 {
			t.Errorf("Sample(%f, %f, %f) = %f, out of expected range", x, y, z, v)
		}
	}
}

func TestOctaveSmoothness(t *testing.T) {
	o := NewOctave(NewLcg48(77), -3, 4)
	prev := o.Sample(0, 0, 0)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := o.Sample(float64(i)*0.01, 0, 0)
		diff := math.Abs(v - prev)
		if diff > maxDiff {
			maxDiff = diff
		}
		prev = v
	}
	if maxDiff > 1.0 {
		t.Errorf("Octave.Sample max step difference = %f, expected smooth transitions", maxDiff)
	}
}

func TestDoublePerlinDeterminism(t *testing.T) {
	d1 := NewDoublePerlin(NewLcg48(7), -4, 2)
	d2 := NewDoublePerlin(NewLcg48(7), -4, 2)
	for i := 0; i < 50; i++ {
		x := float64(i) * 1.7
		z := float64(i) * 0.9
		if d1.Sample(x, 0, z) != d2.Sample(x, 0, z) {
			t.Fatalf("DoublePerlin.Sample not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestDoublePerlinXMatchesAmplitudeTable(t *testing.T) {
	amps := []float64{1, 1}
	d := NewDoublePerlinX(NewXoroshiro128(123), amps, -3, 2, 0)
	// Two non-zero amplitudes trim to length 2, whose table entry is 10/9.
	if d.amplitude != ampInit[2] {
		t.Fatalf("DoublePerlin amplitude = %f, want ampInit[2] = %f", d.amplitude, ampInit[2])
	}
	v := d.Sample(10, 0, 10)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("DoublePerlin.Sample returned non-finite value %f", v)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	p1 := NewPerlin(NewLcg48(1))
	p2 := NewPerlin(NewLcg48(2))
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.5
		z := float64(i) * 0.3
		if p1.Sample(x, 0, z, 0, 0) == p2.Sample(x, 0, z, 0, 0) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("different seeds produced %d/100 identical values", same)
	}
}

func TestMaintainPrecisionBound(t *testing.T) {
	for _, x := range []float64{0, 1e9, -1e9, 33554432, 33554433} {
		v := maintainPrecision(x)
		if v < -33554432 || v > 33554432 {
			t.Errorf("maintainPrecision(%f) = %f, outside expected band", x, v)
		}
	}
}
