package dc

// sieveDepth bounds the distinct-degree sieve run ahead of the full test.
// Most reducible candidates have a factor this small.
const sieveDepth = 40

// Irreducible reports whether f is irreducible over GF(2) by Rabin's test:
// x^(2^n) = x mod f, and gcd(x^(2^(n/q)) - x, f) = 1 for each prime q | n.
// Factors of degree up to sieveDepth are ruled out first with a single gcd
// against the product of x^(2^k) - x.
func Irreducible(f Poly) bool {
	n := f.Degree()
	switch {
	case n < 1:
		return false
	case n == 1:
		return true
	case f.Coeff(0) == 0:
		return false
	}

	m := newModulus(f)
	rabin := make(map[int]bool)
	for _, q := range primeFactors(n) {
		rabin[n/q] = true
	}
	depth := min(sieveDepth, n/2)

	x := FromExponents(1)
	sieve := FromExponents(0)
	for k := 1; k <= n; k++ {
		x = m.square(x)
		if k <= depth {
			sieve = m.mul(sieve, plusX(x))
			if k == depth && !coprime(sieve, m.f) {
				return false
			}
		}
		if k < n && rabin[k] && !coprime(plusX(x), m.f) {
			return false
		}
	}
	return plusX(x).Degree() < 0
}

func primeFactors(n int) []int {
	var out []int
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		out = append(out, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
