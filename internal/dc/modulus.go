package dc

// spread8 maps a byte to the 16-bit word holding its bits at even positions,
// which is the square of the byte read as a polynomial.
var spread8 = func() (t [256]uint16) {
	for v := range t {
		for b := range 8 {
			if v>>b&1 == 1 {
				t[v] |= 1 << (2 * b)
			}
		}
	}
	return t
}()

func spread32(x uint32) uint64 {
	return uint64(spread8[x&0xff]) |
		uint64(spread8[x>>8&0xff])<<16 |
		uint64(spread8[x>>16&0xff])<<32 |
		uint64(spread8[x>>24])<<48
}

// modulus is arithmetic in GF(2)[x]/(f).
type modulus struct {
	f     Poly
	deg   int
	words int

	// fold[v] is the multiple of f whose coefficients deg..deg+7 spell v.
	fold [256][]uint64
}

func newModulus(f Poly) *modulus {
	d := f.Degree()
	m := &modulus{f: f[:d/64+1], deg: d, words: d/64 + 1}
	for v := 1; v < 256; v++ {
		row := make(Poly, (d+8)/64+1)
		for b := 7; b >= 0; b-- {
			if uint(v>>b)&1 != row.Coeff(d+b) {
				xorShifted(row, m.f, b)
			}
		}
		m.fold[v] = row
	}
	return m
}

func window8(a []uint64, p int) uint64 {
	w, b := p/64, uint(p%64)
	x := a[w] >> b
	if b > 56 && w+1 < len(a) {
		x |= a[w+1] << (64 - b)
	}
	return x & 0xff
}

// reduce folds buf down to degree < deg a byte at a time, finishing bit by
// bit. It works in place and returns the low words of buf, which must be at
// least m.words long.
func (m *modulus) reduce(buf []uint64) Poly {
	p := len(buf)*64 - 8
	for ; p >= m.deg; p -= 8 {
		if v := window8(buf, p); v != 0 {
			xorShifted(buf, m.fold[v], p-m.deg)
		}
	}
	r := Poly(buf)
	for d := r.Degree(); d >= m.deg; d = r.Degree() {
		xorShifted(buf, m.f, d-m.deg)
	}
	return r[:m.words]
}

func (m *modulus) square(a Poly) Poly {
	buf := make([]uint64, 2*max(len(a), m.words))
	for i, w := range a {
		buf[2*i] = spread32(uint32(w))
		buf[2*i+1] = spread32(uint32(w >> 32))
	}
	return m.reduce(buf)
}

func (m *modulus) mul(a, b Poly) Poly {
	var nibble [16][]uint64
	for k := 1; k < 16; k++ {
		row := make([]uint64, len(b)+1)
		for j := range 4 {
			if k>>j&1 == 1 {
				xorShifted(row, b, j)
			}
		}
		nibble[k] = row
	}
	buf := make([]uint64, max(len(a)+len(b)+1, m.words))
	for i, w := range a {
		for k := range 16 {
			if v := w >> (4 * k) & 15; v != 0 {
				xorShifted(buf, nibble[v], 64*i+4*k)
			}
		}
	}
	return m.reduce(buf)
}

// plusX returns a + x.
func plusX(a Poly) Poly {
	r := a.clone()
	r[0] ^= 2
	return r
}
