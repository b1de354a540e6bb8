package dc

// Params is a Mersenne-Twister recurrence over 32-bit words: N words of
// state of which the oldest keeps only its top 32-R bits, middle offset M,
// and A as the last row of the twist matrix.
type Params struct {
	N, M, R int
	A       uint32
}

// Exponent is the dimension of the state space, and the degree of the
// characteristic polynomial.
func (p Params) Exponent() int {
	return 32*p.N - p.R
}

// CharPoly returns the characteristic polynomial of the recurrence. In
// Horner form it starts at 1 and, for bit j of A from the lowest, multiplies
// by x^(n-1) + x^(m-1) while j < r and by x^n + x^m after, adding bit j.
func CharPoly(p Params) Poly {
	f := newPoly(p.Exponent())
	f[0] = 1
	for j := range 32 {
		hi, lo := p.N, p.M
		if j < p.R {
			hi, lo = p.N-1, p.M-1
		}
		next := make(Poly, len(f))
		xorShifted(next, f, hi)
		xorShifted(next, f, lo)
		next[0] ^= uint64(p.A >> j & 1)
		f = next
	}
	return f
}
