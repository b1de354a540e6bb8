package dc

// MinimalPolynomial runs Berlekamp-Massey over a bit sequence (one bit per
// element, low bit used) and returns the shortest recurrence in
// characteristic form: f of degree L with s[i+L] = sum over j<L of f_j s[i+j].
// 2L bits of a sequence with linear complexity L are enough to recover it.
func MinimalPolynomial(seq []uint8) Poly {
	words := len(seq)/64 + 2
	c, b := make(Poly, words), make(Poly, words)
	c[0], b[0] = 1, 1
	l, shift := 0, 1
	for i, s := range seq {
		d := s & 1
		for j := 1; j <= l; j++ {
			if c.Coeff(j) == 1 {
				d ^= seq[i-j] & 1
			}
		}
		if d == 0 {
			shift++
			continue
		}
		prev := c.clone()
		xorShifted(c, b, shift)
		if 2*l <= i {
			l = i + 1 - l
			b = prev
			shift = 1
		} else {
			shift++
		}
	}

	f := newPoly(l)
	for j := 0; j <= l; j++ {
		if c.Coeff(j) == 1 {
			f[(l-j)/64] |= 1 << ((l - j) % 64)
		}
	}
	return f
}
