package world

import "sort"

// Spline evaluates a piecewise-linear function of one climate axis, the
// way the overworld's noise-to-biome pipeline turns a continentalness
// sample into an erosion spline and an erosion sample into a final depth
// offset. A fixed (leaf) spline always returns the same constant; an
// interior spline holds breakpoint locations, each with a derivative used
// to extrapolate past the first/last breakpoint, and a child spline
// evaluated at each breakpoint. Grounded on original_source/biomenoise.h's
// Spline/FixSpline structs; see DESIGN.md for the representative-tree
// scope decision (Open Question (b)).
type Spline struct {
	typ      int // NP_* axis this spline reads; -1 on a fixed leaf
	fixed    bool
	value    float32 // valid only when fixed
	loc      []float32
	der      []float32
	children []*Spline
}

// FixSpline builds a constant-valued leaf spline.
func FixSpline(v float32) *Spline {
	return &Spline{typ: -1, fixed: true, value: v}
}

// NewSpline builds an interior spline reading the given climate axis.
func NewSpline(typ int) *Spline {
	return &Spline{typ: typ}
}

// AddPoint appends a breakpoint at loc with derivative der and child
// spline child, in ascending loc order (the caller is responsible for
// ordering, matching the reference spline builder's append-only API).
func (s *Spline) AddPoint(loc, der float32, child *Spline) {
	s.loc = append(s.loc, loc)
	s.der = append(s.der, der)
	s.children = append(s.children, child)
}

// Sample evaluates the spline at the climate point carried by p, descending
// by binary-searching the breakpoints for the governing axis and linearly
// interpolating between the two neighboring children, matching spec.md
// §3's Spline evaluation contract.
func (s *Spline) Sample(p *ClimateSample) float32 {
	if s.fixed {
		return s.value
	}
	x := p.axis(s.typ)
	n := len(s.loc)
	i := sort.Search(n, func(i int) bool { return s.loc[i] >= x })

	switch {
	case n == 0:
		return 0
	case i == 0:
		return s.children[0].Sample(p) + s.der[0]*(x-s.loc[0])
	case i == n:
		last := n - 1
		return s.children[last].Sample(p) + s.der[last]*(x-s.loc[last])
	default:
		lo, hi := i-1, i
		span := s.loc[hi] - s.loc[lo]
		t := (x - s.loc[lo]) / span
		v1 := s.children[lo].Sample(p)
		v2 := s.children[hi].Sample(p)
		return v1 + t*(v2-v1)
	}
}
