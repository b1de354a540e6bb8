package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/samcharles93/gpurand/internal/rng"
)

const (
	DefaultCount int64  = 2_400_000
	DefaultSeed  uint64 = 777
)

// Defaults are applied to every request option left unset.
type Defaults struct {
	Count   int64
	Seed    uint64
	Variant string
	Lanes   int
}

func DefaultSettings() Defaults {
	return Defaults{
		Count:   DefaultCount,
		Seed:    DefaultSeed,
		Variant: rng.Default,
	}
}

type RequestOptions struct {
	Count   *int64
	Seed    *uint64
	Variant *string
	Lanes   *int
}

type Request struct {
	Count   int64
	Seed    uint64
	Variant string
	// Lanes overrides the variant's default lane count when positive.
	Lanes int
}

// ResolveRequest fills unset options from defaults and stores the variant
// under its registry name.
func ResolveRequest(opts RequestOptions, defaults Defaults) Request {
	req := Request{
		Count:   defaults.Count,
		Seed:    defaults.Seed,
		Variant: defaults.Variant,
		Lanes:   defaults.Lanes,
	}
	if opts.Count != nil {
		req.Count = *opts.Count
	}
	if opts.Seed != nil {
		req.Seed = *opts.Seed
	}
	if opts.Variant != nil && strings.TrimSpace(*opts.Variant) != "" {
		req.Variant = *opts.Variant
	}
	if opts.Lanes != nil {
		req.Lanes = *opts.Lanes
	}
	// Unknown names stay as given for Validate to report.
	if key, err := rng.Normalize(req.Variant); err == nil {
		req.Variant = key
	}
	return req
}

// Bytes is the size of the device and host buffers for the request.
func (r Request) Bytes() int64 {
	return r.Count * 4
}

// Validate rejects requests that can never produce output.
func (r Request) Validate() error {
	if r.Count <= 0 {
		return fmt.Errorf("%w: count must be > 0, got %d", rng.ErrGeneration, r.Count)
	}
	if r.Count > math.MaxInt64/4 {
		return fmt.Errorf("%w: count %d overflows the buffer size", rng.ErrGeneration, r.Count)
	}
	if r.Lanes < 0 {
		return fmt.Errorf("%w: lanes must be >= 0, got %d", rng.ErrGeneration, r.Lanes)
	}
	if _, err := rng.Normalize(r.Variant); err != nil {
		return err
	}
	return nil
}
