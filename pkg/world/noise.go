package world

import "math"

// Perlin is Ken Perlin's improved noise as reimplemented for world
// generation: a fixed 256-entry permutation table plus three lattice
// offsets drawn from the seeding generator.
type Perlin struct {
	perm [256]byte

	a, b, c    float64
	amplitude  float64
	lacunarity float64

	// h2/d2/t2 cache the y==0 lattice coordinate so callers that always
	// sample at y==0 (2D biome/surface noise) skip repeating the fade
	// computation for that axis.
	h2 int
	d2 float64
	t2 float64
}

// NewPerlin builds a Perlin lattice seeded from an Lcg48 stream, matching
// perlinInit.
func NewPerlin(rng *Lcg48) *Perlin {
	p := &Perlin{}
	p.a = rng.NextDouble() * 256.0
	p.b = rng.NextDouble() * 256.0
	p.c = rng.NextDouble() * 256.0
	p.amplitude = 1.0
	p.lacunarity = 1.0

	for i := range p.perm {
		p.perm[i] = byte(i)
	}
	for i := 0; i < 256; i++ {
		j := int(rng.NextInt(int32(256-i))) + i
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}
	p.cacheY()
	return p
}

// NewPerlinX builds a Perlin lattice seeded from an xoroshiro128 stream,
// matching xPerlinInit.
func NewPerlinX(rng *Xoroshiro128) *Perlin {
	p := &Perlin{}
	p.a = rng.NextDouble() * 256.0
	p.b = rng.NextDouble() * 256.0
	p.c = rng.NextDouble() * 256.0
	p.amplitude = 1.0
	p.lacunarity = 1.0

	for i := range p.perm {
		p.perm[i] = byte(i)
	}
	for i := 0; i < 256; i++ {
		j := int(rng.NextInt(uint32(256-i))) + i
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}
	p.cacheY()
	return p
}

func (p *Perlin) cacheY() {
	i2 := math.Floor(p.b)
	d2 := p.b - i2
	p.h2 = int(i2)
	p.d2 = d2
	p.t2 = fade(d2)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// indexedLerp selects one of the 16 symbolic gradient directions Perlin's
// reference implementation uses in place of a literal gradient table.
func indexedLerp(idx byte, a, b, c float64) float64 {
	switch idx & 0xf {
	case 0:
		return a + b
	case 1:
		return -a + b
	case 2:
		return a - b
	case 3:
		return -a - b
	case 4:
		return a + c
	case 5:
		return -a + c
	case 6:
		return a - c
	case 7:
		return -a - c
	case 8:
		return b + c
	case 9:
		return -b + c
	case 10:
		return b - c
	case 11:
		return -b - c
	case 12:
		return a + b
	case 13:
		return -b + c
	case 14:
		return -a + b
	default: // 15
		return -b - c
	}
}

// Sample evaluates the lattice at (x, y, z). yamp/ymin reproduce the
// vertical-wrap behaviour the overworld density function applies above a
// configurable clamp; pass 0 for both when no wrap is needed. y==0 hits
// the struct's cached fade values for the second coordinate, matching the
// reference implementation's d2==0 shortcut.
func (p *Perlin) Sample(x, y, z, yamp, ymin float64) float64 {
	var h2 int
	var d2, t2 float64

	if y == 0.0 {
		d2, h2, t2 = p.d2, p.h2, p.t2
	} else {
		d2 = y + p.b
		i2 := math.Floor(d2)
		d2 -= i2
		h2 = int(i2)
		t2 = fade(d2)
	}

	d1 := x + p.a
	d3 := z + p.c
	i1 := math.Floor(d1)
	i3 := math.Floor(d3)
	d1 -= i1
	d3 -= i3
	h1 := int(i1)
	h3 := int(i3)

	t1 := fade(d1)
	t3 := fade(d3)

	if yamp != 0 {
		yclamp := ymin
		if d2 < ymin {
			yclamp = d2
		}
		d2 -= math.Floor(yclamp/yamp) * yamp
	}

	idx := func(i int) byte { return p.perm[i&0xff] }

	a1 := int(idx(h1)) + h2
	b1 := int(idx(h1+1)) + h2

	a2 := int(idx(a1)) + h3
	b2 := int(idx(b1)) + h3
	a3 := int(idx(a1+1)) + h3
	b3 := int(idx(b1+1)) + h3

	l1 := indexedLerp(idx(a2), d1, d2, d3)
	l2 := indexedLerp(idx(b2), d1-1, d2, d3)
	l3 := indexedLerp(idx(a3), d1, d2-1, d3)
	l4 := indexedLerp(idx(b3), d1-1, d2-1, d3)
	l5 := indexedLerp(idx(a2+1), d1, d2, d3-1)
	l6 := indexedLerp(idx(b2+1), d1-1, d2, d3-1)
	l7 := indexedLerp(idx(a3+1), d1, d2-1, d3-1)
	l8 := indexedLerp(idx(b3+1), d1-1, d2-1, d3-1)

	l1 = lerp(t1, l1, l2)
	l3 = lerp(t1, l3, l4)
	l5 = lerp(t1, l5, l6)
	l7 = lerp(t1, l7, l8)

	l1 = lerp(t2, l1, l3)
	l5 = lerp(t2, l5, l7)

	return lerp(t3, l1, l5)
}

// maintainPrecision re-bases a coordinate into a bounded range so that
// repeated lattice lookups far from the origin keep float64 precision, the
// same trick the reference generator applies before every lattice sample.
func maintainPrecision(x float64) float64 {
	return x - math.Round(x/33554432.0)*33554432.0
}

// Octave stacks several Perlin lattices at halving amplitude and doubling
// frequency.
type Octave struct {
	layers []*Perlin
	amps   []float64
	lacs   []float64
}

var lacunaInit = []float64{
	1, .5, .25, 1. / 8, 1. / 16, 1. / 32, 1. / 64, 1. / 128,
	1. / 256, 1. / 512, 1. / 1024, 1. / 2048, 1. / 4096,
}

var persistInit = []float64{
	0, 1, 2. / 3, 4. / 7, 8. / 15, 16. / 31, 32. / 63, 64. / 127, 128. / 255, 256. / 511,
}

// NewOctave builds a legacy (pre-1.18) octave stack from an Lcg48 stream.
// omin is the exponent of the coarsest octave (<= 0) and length is the
// octave count; omin+length must be <= 1.
func NewOctave(rng *Lcg48, omin, length int) *Octave {
	o := &Octave{}
	end := omin + length - 1
	persist := 1.0 / (float64(int64(1)<<uint(length)) - 1.0)
	lacuna := math.Pow(2.0, float64(end))

	i := 0
	if end == 0 {
		o.layers = append(o.layers, NewPerlin(rng))
		o.amps = append(o.amps, persist)
		o.lacs = append(o.lacs, lacuna)
		persist *= 2.0
		lacuna *= 0.5
		i = 1
	} else {
		rng.SkipN(int64(-end * 262))
	}
	for ; i < length; i++ {
		o.layers = append(o.layers, NewPerlin(rng))
		o.amps = append(o.amps, persist)
		o.lacs = append(o.lacs, lacuna)
		persist *= 2.0
		lacuna *= 0.5
	}
	return o
}

// md5OctaveN are the per-octave xoroshiro constants modern worldgen XORs
// into the shared double-perlin seed before deriving each component
// Perlin lattice; named "octave_-12".."octave_0" in the reference source,
// where each pair is the MD5 digest of that ASCII string split into two
// big-endian uint64 halves.
var md5OctaveN = [13][2]uint64{
	{0xb198de63a8012672, 0x7b84cad43ef7b5a8},
	{0x0fd787bfbc403ec3, 0x74a4a31ca21b48b8},
	{0x36d326eed40efeb2, 0x5be9ce18223c636a},
	{0x082fe255f8be6631, 0x4e96119e22dedc81},
	{0x0ef68ec68504005e, 0x48b6bf93a2789640},
	{0xf11268128982754f, 0x257a1d670430b0aa},
	{0xe51c98ce7d1de664, 0x5f9478a733040c45},
	{0x6d7b49e7e429850a, 0x2e3063c622a24777},
	{0xbd90d5377ba1b762, 0xc07317d419a7548d},
	{0x53d39c6752dac858, 0xbcd1c5a80ab65b3e},
	{0xb4a24d7a84e7677b, 0x023ff9668e89b5c4},
	{0xdffa22b534c5f608, 0xb9b67517d3665ca9},
	{0xd50708086cef4d7c, 0x6e1651ecc7f43309},
}

// NewOctaveX builds a modern (1.18+) octave stack from an xoroshiro128
// stream. amplitudes holds one weight per octave index starting at omin;
// a zero weight skips that octave entirely. nmax caps the number of
// lattices actually constructed (negative means unlimited, 0 builds none),
// used to split a
// shared amplitude budget between a DoublePerlin's two halves.
func NewOctaveX(rng *Xoroshiro128, amplitudes []float64, omin, length, nmax int) *Octave {
	o := &Octave{}
	lacuna := lacunaInit[-omin]
	persist := persistInit[length]
	xlo := rng.NextLong()
	xhi := rng.NextLong()

	n := 0
	for i := 0; i < length && n != nmax; i, lacuna, persist = i+1, lacuna*2.0, persist*0.5 {
		if amplitudes[i] == 0 {
			continue
		}
		px := &Xoroshiro128{}
		px.SetRawState(xlo^md5OctaveN[12+omin+i][0], xhi^md5OctaveN[12+omin+i][1])
		o.layers = append(o.layers, NewPerlinX(px))
		o.amps = append(o.amps, amplitudes[i]*persist)
		o.lacs = append(o.lacs, lacuna)
		n++
	}
	return o
}

// Sample evaluates every layer of the stack and sums their contributions.
func (o *Octave) Sample(x, y, z float64) float64 {
	var v float64
	for i, p := range o.layers {
		lf := o.lacs[i]
		ax := maintainPrecision(x * lf)
		ay := maintainPrecision(y * lf)
		az := maintainPrecision(z * lf)
		v += o.amps[i] * p.Sample(ax, ay, az, 0, 0)
	}
	return v
}

// SampleAmp evaluates the stack the way the overworld depth/erosion fields
// do: y defaults to -p.b unless ydefault is false, and yamp/ymin feed the
// lattice's vertical wrap.
func (o *Octave) SampleAmp(x, y, z, yamp, ymin float64, ydefault bool) float64 {
	var v float64
	for i, p := range o.layers {
		lf := o.lacs[i]
		ax := maintainPrecision(x * lf)
		ay := maintainPrecision(y * lf)
		if ydefault {
			ay = -p.b
		}
		az := maintainPrecision(z * lf)
		v += o.amps[i] * p.Sample(ax, ay, az, yamp*lf, ymin*lf)
	}
	return v
}

// DoublePerlin pairs two Octave stacks at a fixed lacunarity ratio,
// matching doublePerlinInit / sampleDoublePerlin.
type DoublePerlin struct {
	octA, octB *Octave
	amplitude  float64
}

// NewDoublePerlin builds a legacy double-perlin from an Lcg48 stream.
func NewDoublePerlin(rng *Lcg48, omin, length int) *DoublePerlin {
	return &DoublePerlin{
		octA:      NewOctave(rng, omin, length),
		octB:      NewOctave(rng, omin, length),
		amplitude: (10.0 / 6.0) * float64(length) / float64(length+1),
	}
}

var ampInit = []float64{
	0, 5. / 6, 10. / 9, 15. / 12, 20. / 15, 25. / 18, 30. / 21, 35. / 24, 40. / 27, 45. / 30,
}

// NewDoublePerlinX builds a modern double-perlin from an xoroshiro128
// stream, splitting nmax octaves between the two halves (ceil/floor) the
// way xDoublePerlinInit does.
func NewDoublePerlinX(rng *Xoroshiro128, amplitudes []float64, omin, length, nmax int) *DoublePerlin {
	na, nb := -1, -1
	if nmax > 0 {
		na = (nmax + 1) >> 1
		nb = nmax - na
	}
	d := &DoublePerlin{
		octA: NewOctaveX(rng, amplitudes, omin, length, na),
		octB: NewOctaveX(rng, amplitudes, omin, length, nb),
	}

	lo, hi := 0, length
	for hi > 0 && amplitudes[hi-1] == 0 {
		hi--
	}
	for lo < hi && amplitudes[lo] == 0 {
		lo++
	}
	trimmed := hi - lo
	d.amplitude = ampInit[trimmed]
	return d
}

// Sample evaluates both halves of the stack, the second nudged by the
// 337/331 lacunarity ratio that decorrelates it from the first.
func (d *DoublePerlin) Sample(x, y, z float64) float64 {
	const f = 337.0 / 331.0
	v := d.octA.Sample(x, y, z)
	v += d.octB.Sample(x*f, y*f, z*f)
	return v * d.amplitude
}
