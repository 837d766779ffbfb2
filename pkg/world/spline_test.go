package world

import "testing"

func TestFixSplineReturnsConstant(t *testing.T) {
	s := FixSpline(0.42)
	cs := &ClimateSample{}
	if got := s.Sample(cs); got != 0.42 {
		t.Fatalf("FixSpline sample = %v, want 0.42", got)
	}
}

func TestSplineInterpolatesBetweenBreakpoints(t *testing.T) {
	s := NewSpline(NPErosion)
	s.AddPoint(-1.0, 0, FixSpline(-1.0))
	s.AddPoint(1.0, 0, FixSpline(1.0))

	cs := &ClimateSample{Values: [NPMax]int64{NPErosion: 0}}
	got := s.Sample(cs)
	if got < -0.01 || got > 0.01 {
		t.Fatalf("Sample at erosion=0 = %v, want ~0 (midpoint of [-1,1])", got)
	}
}

func TestSplineExtrapolatesPastEdges(t *testing.T) {
	s := NewSpline(NPErosion)
	s.AddPoint(-1.0, 1.0, FixSpline(0.0))
	s.AddPoint(1.0, -1.0, FixSpline(0.0))

	below := s.Sample(&ClimateSample{Values: [NPMax]int64{NPErosion: climateFixedPoint(-2.0)}})
	if below >= 0 {
		t.Fatalf("Sample below first breakpoint = %v, want negative (extrapolated via derivative)", below)
	}
}
