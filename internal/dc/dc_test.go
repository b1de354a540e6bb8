package dc

import (
	"context"
	"errors"
	"testing"
)

func TestPolyBasics(t *testing.T) {
	p := FromExponents(607, 273, 0)
	if p.Degree() != 607 || p.Weight() != 3 {
		t.Fatalf("degree %d weight %d", p.Degree(), p.Weight())
	}
	if p.Coeff(273) != 1 || p.Coeff(272) != 0 || p.Coeff(5000) != 0 {
		t.Fatal("unexpected coefficients")
	}
	if got := FromExponents(4, 1, 0).String(); got != "x^4 + x + 1" {
		t.Fatalf("String = %q", got)
	}
	if (Poly{}).Degree() != -1 || (Poly{}).String() != "0" {
		t.Fatal("zero polynomial")
	}
	if !FromExponents(3).Equal(append(FromExponents(3), 0, 0)) {
		t.Fatal("trailing zero words should not matter")
	}
}

func TestModAndGCD(t *testing.T) {
	// (x^2+x+1)(x^3+x+1) = x^5+x^4+1
	a := FromExponents(2, 1, 0)
	b := FromExponents(3, 1, 0)
	prod := FromExponents(5, 4, 0)
	if r := Mod(prod, a); r.Degree() != -1 {
		t.Fatalf("x^2+x+1 should divide x^5+x^4+1, remainder %v", r)
	}
	// x^5+x^4+x^3+x = x(x+1)(x^3+x+1)
	if g := GCD(prod, FromExponents(5, 4, 3, 1)); !g.Equal(b) {
		t.Fatalf("gcd = %v, want %v", g, b)
	}
	if !coprime(a, b) {
		t.Fatal("distinct irreducibles should be coprime")
	}
}

func TestModulusArithmetic(t *testing.T) {
	f := FromExponents(127, 1, 0)
	m := newModulus(f)
	x := FromExponents(1)

	// x^(2^7) = x^128 = x^2 + x mod x^127 + x + 1
	for range 7 {
		x = m.square(x)
	}
	if want := FromExponents(2, 1); !x.Equal(want) {
		t.Fatalf("x^128 = %v, want %v", x, want)
	}

	a := FromExponents(100, 3)
	b := FromExponents(90, 2, 0)
	got := m.mul(a, b)
	want := Mod(FromExponents(190, 100+2, 100, 93, 5, 3), f)
	if !got.Equal(want) {
		t.Fatalf("mul = %v, want %v", got, want)
	}
	if sq := m.square(a); !sq.Equal(m.mul(a, a)) {
		t.Fatal("square and mul disagree")
	}
}

func TestIrreducible(t *testing.T) {
	cases := []struct {
		name string
		f    Poly
		want bool
	}{
		{"x", FromExponents(1), true},
		{"x+1", FromExponents(1, 0), true},
		{"x^2+1", FromExponents(2, 0), false},
		{"x^4+x+1", FromExponents(4, 1, 0), true},
		{"x^4+x^2+1", FromExponents(4, 2, 0), false},
		{"x^6+x^3+1", FromExponents(6, 3, 0), true},
		// (x^3+x+1)(x^3+x^2+1) passes x^(2^6) = x but not the gcd for q = 2.
		{"x^6+...+1", FromExponents(6, 5, 4, 3, 2, 1, 0), false},
		{"aes", FromExponents(8, 4, 3, 1, 0), true},
		{"x^8+1", FromExponents(8, 0), false},
		{"x^127+x+1", FromExponents(127, 1, 0), true},
		{"x^127+x^2+1", FromExponents(127, 2, 0), false},
		{"x^521+x^32+1", FromExponents(521, 32, 0), true},
		{"x^521+x^31+1", FromExponents(521, 31, 0), false},
		{"x^607+x^273+1", FromExponents(607, 273, 0), true},
		{"x^607+x^272+1", FromExponents(607, 272, 0), false},
		{"no constant term", FromExponents(607, 273, 1), false},
		{"zero", Poly{0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Irreducible(tc.f); got != tc.want {
				t.Fatalf("Irreducible(%v) = %v, want %v", tc.f, got, tc.want)
			}
		})
	}
}

func TestPrimeFactors(t *testing.T) {
	got := primeFactors(2203)
	if len(got) != 1 || got[0] != 2203 {
		t.Fatalf("2203 is prime, got %v", got)
	}
	got = primeFactors(360)
	if len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 5 {
		t.Fatalf("primeFactors(360) = %v", got)
	}
}

func lfsrBits(f Poly, n int) []uint8 {
	d := f.Degree()
	s := make([]uint8, n)
	s[0] = 1
	for i := d; i < n; i++ {
		var b uint8
		for j := range d {
			if f.Coeff(j) == 1 {
				b ^= s[i-d+j]
			}
		}
		s[i] = b
	}
	return s
}

func TestMinimalPolynomialRecoversLFSR(t *testing.T) {
	for _, f := range []Poly{FromExponents(4, 1, 0), FromExponents(127, 1, 0), FromExponents(31, 3, 0)} {
		d := f.Degree()
		got := MinimalPolynomial(lfsrBits(f, 2*d+10))
		if !got.Equal(f) {
			t.Fatalf("recovered %v, want %v", got, f)
		}
	}

	if got := MinimalPolynomial(make([]uint8, 50)); got.Degree() != 0 {
		t.Fatalf("zero sequence should give degree 0, got %v", got)
	}
}

// twister runs the recurrence for p from a fixed state and returns the low
// bit of n successive words.
func twister(p Params, n int) []uint8 {
	upper := ^uint32(0) << p.R
	lower := ^upper
	x := make([]uint32, p.N)
	x[0] = 5489
	for i := 1; i < p.N; i++ {
		x[i] = 1812433253*(x[i-1]^(x[i-1]>>30)) + uint32(i)
	}
	out := make([]uint8, 0, n)
	for len(out) < n {
		for k := range p.N {
			y := x[k]&upper | x[(k+1)%p.N]&lower
			x[k] = x[(k+p.M)%p.N] ^ y>>1 ^ -(y&1)&p.A
		}
		for k := 0; k < p.N && len(out) < n; k++ {
			out = append(out, uint8(x[k]&1))
		}
	}
	return out
}

func TestCharPolyMatchesRecurrence(t *testing.T) {
	for _, p := range []Params{
		{N: 4, M: 2, R: 1, A: 0x9908b0df},
		{N: 69, M: 34, R: 5, A: 0xeb4e6f11},
		{N: 69, M: 34, R: 5, A: 0x80000001},
	} {
		f := CharPoly(p)
		if f.Degree() != p.Exponent() {
			t.Fatalf("%+v: degree %d, want %d", p, f.Degree(), p.Exponent())
		}
		got := MinimalPolynomial(twister(p, 2*p.Exponent()))
		if !got.Equal(f) {
			t.Fatalf("%+v: minimal polynomial of the output differs from CharPoly", p)
		}
	}
}

var search127 = Search{N: 4, M: 2, R: 1, Seed: 42, BMask: 0xffffff80, CMask: 0xffff8000}

func TestSearchAcceptsOnlyIrreducibleRows(t *testing.T) {
	entries, err := search127.Run(context.Background(), 8, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(entries) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(entries))
	}
	seen := make(map[uint32]bool)
	for i, e := range entries {
		if seen[e.A] {
			t.Fatalf("entry %d repeats row %#x", i, e.A)
		}
		seen[e.A] = true
		if e.A&0x80000000 == 0 || e.B&^search127.BMask != 0 || e.C&^search127.CMask != 0 {
			t.Fatalf("entry %d outside its masks: %+v", i, e)
		}
		if !Irreducible(CharPoly(Params{N: 4, M: 2, R: 1, A: e.A})) {
			t.Fatalf("entry %d has a reducible characteristic polynomial", i)
		}
	}
}

func TestSearchIgnoresWorkerCount(t *testing.T) {
	one := search127
	one.Workers = 1
	want, err := one.Run(context.Background(), 6, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	many := search127
	many.Workers, many.Batch = 3, 5
	var lanes []int
	got, err := many.Run(context.Background(), 6, func(lane int, _ Entry) { lanes = append(lanes, lane) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d differs: %+v != %+v", i, got[i], want[i])
		}
	}
	if len(lanes) != 6 || lanes[5] != 5 {
		t.Fatalf("progress calls: %v", lanes)
	}
}

func TestSearchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search127.Run(ctx, 4, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
