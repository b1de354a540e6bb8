// Package dc finds Mersenne-Twister parameter sets whose characteristic
// polynomial is irreducible, in the manner of Matsumoto and Nishimura's
// dynamic creator, and carries the GF(2) polynomial arithmetic it needs.
package dc

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Poly is a polynomial over GF(2). Bit i%64 of word i/64 is the coefficient
// of x^i.
type Poly []uint64

func newPoly(deg int) Poly {
	return make(Poly, deg/64+1)
}

// FromExponents returns the sum of x^e over exps.
func FromExponents(exps ...int) Poly {
	top := 0
	for _, e := range exps {
		top = max(top, e)
	}
	p := newPoly(top)
	for _, e := range exps {
		p[e/64] ^= 1 << (e % 64)
	}
	return p
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i*64 + 63 - bits.LeadingZeros64(p[i])
		}
	}
	return -1
}

func (p Poly) Coeff(i int) uint {
	if i < 0 || i/64 >= len(p) {
		return 0
	}
	return uint(p[i/64]>>(i%64)) & 1
}

// Weight is the number of non-zero coefficients.
func (p Poly) Weight() int {
	n := 0
	for _, w := range p {
		n += bits.OnesCount64(w)
	}
	return n
}

func (p Poly) Equal(q Poly) bool {
	n := max(len(p), len(q))
	for i := range n {
		var a, b uint64
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// String lists the terms from the highest power down, e.g. "x^4 + x + 1".
func (p Poly) String() string {
	d := p.Degree()
	if d < 0 {
		return "0"
	}
	terms := make([]string, 0, p.Weight())
	for i := d; i >= 0; i-- {
		if p.Coeff(i) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

func (p Poly) clone() Poly {
	return slices.Clone(p)
}

// xorShifted adds src*x^s into dst. Terms past the end of dst are dropped.
func xorShifted(dst, src []uint64, s int) {
	ws, bs := s/64, uint(s%64)
	for i, w := range src {
		if w == 0 {
			continue
		}
		j := i + ws
		if j >= len(dst) {
			return
		}
		dst[j] ^= w << bs
		if bs != 0 && j+1 < len(dst) {
			dst[j+1] ^= w >> (64 - bs)
		}
	}
}

// Mod returns a mod b. It panics if b is zero.
func Mod(a, b Poly) Poly {
	db := b.Degree()
	if db < 0 {
		panic("dc: division by the zero polynomial")
	}
	r := a.clone()
	for d := r.Degree(); d >= db; d = r.Degree() {
		xorShifted(r, b, d-db)
	}
	return r
}

func GCD(a, b Poly) Poly {
	a, b = a.clone(), b.clone()
	for b.Degree() >= 0 {
		a, b = b, Mod(a, b)
	}
	return a
}

func coprime(a, b Poly) bool {
	return GCD(a, b).Degree() == 0
}
