package rng

import (
	"context"
	"runtime"
	"testing"

	"gonum.org/v1/gonum/mathext/prng"

	"github.com/samcharles93/gpurand/internal/dc"
)

func TestMT19937ReferenceOutputs(t *testing.T) {
	t.Parallel()

	t.Run("init_genrand 5489", func(t *testing.T) {
		ln := newLane(&mt19937Params)
		ln.initGenrand(5489)
		if got := ln.next(); got != 3499211612 {
			t.Fatalf("first output: got %d want 3499211612", got)
		}
	})

	t.Run("init_by_array", func(t *testing.T) {
		ln := newLane(&mt19937Params)
		ln.seed([]uint32{0x123, 0x234, 0x345, 0x456})
		want := []uint32{1067595299, 955945823, 477289528, 4107218783, 4228976476}
		for i, w := range want {
			if got := ln.next(); got != w {
				t.Fatalf("output %d: got %d want %d", i, got, w)
			}
		}
	})
}

func TestMT19937LaneMatchesGonum(t *testing.T) {
	t.Parallel()
	for lane := uint32(0); lane < 4; lane++ {
		key := []uint32{777, 0, lane}
		ref := prng.NewMT19937()
		ref.SeedFromKeys(key)
		ln := newLane(&mt19937Params)
		ln.seed(key)
		for i := range 2000 {
			if got, want := ln.next(), ref.Uint32(); got != want {
				t.Fatalf("lane %d output %d: got %d want %d", lane, i, got, want)
			}
		}
	}
}

func TestLaneFillRange(t *testing.T) {
	t.Parallel()
	for _, v := range Variants() {
		ln := newLane(v.params(3))
		ln.seed([]uint32{777, 0, 3})
		out := make([]float32, 10000)
		ln.fill(out)
		for i, x := range out {
			if x < 0 || x >= 1 {
				t.Fatalf("%s: value %d out of range: %v", v.Name, i, x)
			}
		}
	}
}

func TestMT2203TableIsStable(t *testing.T) {
	t.Parallel()
	first := mt2203Table()
	second := mt2203Table()
	if len(first) != MT2203Streams {
		t.Fatalf("unexpected table size: %d", len(first))
	}
	if &first[0] != &second[0] {
		t.Fatal("table should be built once")
	}

	seen := make(map[uint32]int, len(first))
	for i, p := range first {
		if prev, dup := seen[p.a]; dup {
			t.Fatalf("lanes %d and %d share matrix parameter %#x", prev, i, p.a)
		}
		seen[p.a] = i
		if p.n != 69 || p.m != 34 || p.lower != 0x1f {
			t.Fatalf("lane %d has wrong recursion shape: %+v", i, p)
		}
		if p.a&0x80000000 == 0 || p.b&^0xffffff80 != 0 || p.c&^0xffff8000 != 0 {
			t.Fatalf("lane %d parameters outside their masks: %+v", i, p)
		}
	}
}

// The recurrence has 2203 bits of state and 2^2203-1 is prime, so a lane
// whose output has an irreducible minimal polynomial of degree 2203 runs
// through every non-zero state.
func TestMT2203LanesHaveFullPeriod(t *testing.T) {
	t.Parallel()
	for _, lane := range []int{0, 1, 2, 3011, MT2203Streams - 1} {
		p := mt2203Params(lane)
		ln := newLane(p)
		ln.seed([]uint32{777, 0, uint32(lane)})
		seq := make([]uint8, 2*2203)
		for i := range seq {
			seq[i] = uint8(ln.next() & 1)
		}

		f := dc.MinimalPolynomial(seq)
		if f.Degree() != 2203 {
			t.Fatalf("lane %d: linear complexity %d, want 2203", lane, f.Degree())
		}
		if !f.Equal(dc.CharPoly(dc.Params{N: p.n, M: p.m, R: 5, A: p.a})) {
			t.Fatalf("lane %d: output recurrence differs from the lane's characteristic polynomial", lane)
		}
		if !dc.Irreducible(f) {
			t.Fatalf("lane %d: characteristic polynomial is reducible", lane)
		}
	}
}

func TestMT2203TableMatchesSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the lane search")
	}
	s := dc.Search{
		N: 69, M: 34, R: 5,
		Seed:    0x6d74323230330001,
		BMask:   0xffffff80,
		CMask:   0xffff8000,
		Workers: runtime.NumCPU(),
	}
	got, err := s.Run(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if want := mt2203Entries[0]; got[0] != (dc.Entry{A: want.a, B: want.b, C: want.c}) {
		t.Fatalf("lane 0: search gives %+v, table has %+v", got[0], want)
	}
}

func TestLanesWithSameSeedDiverge(t *testing.T) {
	t.Parallel()
	for _, v := range Variants() {
		a := newLane(v.params(0))
		b := newLane(v.params(1))
		a.seed([]uint32{777, 0, 0})
		b.seed([]uint32{777, 0, 1})
		same := 0
		for range 64 {
			if a.next() == b.next() {
				same++
			}
		}
		if same > 2 {
			t.Fatalf("%s: lanes 0 and 1 produced %d identical words", v.Name, same)
		}
	}
}
