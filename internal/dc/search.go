package dc

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Entry is one accepted parameter set: the twist row and tempering masks.
type Entry struct {
	A, B, C uint32
}

// Search draws twist rows from a splitmix64 stream seeded with Seed. A row
// has its top bit forced, so the characteristic polynomial has a unit
// constant term, and is accepted when that polynomial is irreducible and the
// row was not accepted before. Each accepted row is followed by one draw
// whose low and high halves, masked by BMask and CMask, are the tempering
// masks. The result depends only on the fields below, never on Workers.
type Search struct {
	N, M, R int
	Seed    uint64
	BMask   uint32
	CMask   uint32

	// Workers bounds concurrent candidate tests; Batch is how many upcoming
	// draws are tested together. Both default from Workers.
	Workers int
	Batch   int
}

// Run returns the first count entries of the stream. progress, if set, is
// called as each entry is accepted.
func (s Search) Run(ctx context.Context, count int, progress func(lane int, e Entry)) ([]Entry, error) {
	workers := max(s.Workers, 1)
	batch := s.Batch
	if batch <= 0 {
		batch = 4 * workers
	}

	state := s.Seed
	known := make(map[uint32]bool)
	used := make(map[uint32]struct{}, count)
	out := make([]Entry, 0, count)
	for len(out) < count {
		ahead := state
		a := twistRow(&state)
		if _, dup := used[a]; dup {
			continue
		}
		ok, tested := known[a]
		if !tested {
			if err := s.lookahead(ctx, ahead, batch, workers, known); err != nil {
				return out, err
			}
			ok = known[a]
		}
		delete(known, a)
		if !ok {
			continue
		}

		used[a] = struct{}{}
		bits := splitMix64(&state)
		e := Entry{A: a, B: uint32(bits) & s.BMask, C: uint32(bits>>32) & s.CMask}
		out = append(out, e)
		if progress != nil {
			progress(len(out)-1, e)
		}
	}
	return out, nil
}

// lookahead tests the next n rows drawn from state, without advancing the
// caller's stream, and records the verdicts in known.
func (s Search) lookahead(ctx context.Context, state uint64, n, workers int, known map[uint32]bool) error {
	rows := make([]uint32, 0, n)
	for range n {
		a := twistRow(&state)
		if _, ok := known[a]; !ok && !slices.Contains(rows, a) {
			rows = append(rows, a)
		}
	}

	verdicts := make([]bool, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, a := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = Irreducible(CharPoly(Params{N: s.N, M: s.M, R: s.R, A: a}))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, a := range rows {
		known[a] = verdicts[i]
	}
	return nil
}

func twistRow(state *uint64) uint32 {
	return uint32(splitMix64(state)) | 0x80000000
}

func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
