// Package rng implements parallel-stream Mersenne-Twister generators that run
// as kernels on a device queue.
//
// A generator's state is split into lanes. Each lane has its own recursion
// parameters (or its own seed key) and advances on its own, so a kernel can
// run every lane concurrently without synchronising inside the generation
// loop. Output element ranges are assigned to lanes in contiguous chunks, so
// the values written depend only on the variant, lane count, seed and the
// sequence of requests, never on how many goroutines execute the lanes.
package rng

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/samcharles93/gpurand/internal/device"
)

var (
	ErrUnsupportedVariant = errors.New("unsupported generator variant")
	ErrGeneration         = errors.New("invalid generation request")
)

type options struct {
	lanes int
}

type Option func(*options)

// WithLanes sets the number of lanes. Zero selects the variant default.
func WithLanes(n int) Option {
	return func(o *options) {
		o.lanes = n
	}
}

// Generator is a handle to generator state bound to at most one queue.
// It must be destroyed before its queue.
type Generator struct {
	variant *Variant
	lanes   []*lane
	queue   *device.Queue

	seeded    bool
	destroyed bool
}

func Create(variant string, opts ...Option) (*Generator, error) {
	v, err := Lookup(variant)
	if err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	n := o.lanes
	if n == 0 {
		n = v.DefaultLanes
	}
	if n < 0 || n > v.MaxLanes {
		return nil, fmt.Errorf("%w: %s supports 1 to %d lanes, got %d", ErrUnsupportedVariant, v.Name, v.MaxLanes, n)
	}

	lanes := make([]*lane, n)
	for i := range lanes {
		lanes[i] = newLane(v.params(i))
	}
	return &Generator{variant: v, lanes: lanes}, nil
}

func (g *Generator) Variant() string {
	return g.variant.Name
}

func (g *Generator) Lanes() int {
	return len(g.lanes)
}

// BindQueue attaches the generator to q. Seeding and generation are enqueued
// on q from then on.
func (g *Generator) BindQueue(q *device.Queue) error {
	if g.destroyed {
		return fmt.Errorf("%w: generator destroyed", device.ErrInvalidHandle)
	}
	if q == nil {
		return fmt.Errorf("%w: nil queue", ErrGeneration)
	}
	if g.queue != nil {
		return fmt.Errorf("%w: generator already bound to queue %d", ErrGeneration, g.queue.ID())
	}
	if err := q.Attach(); err != nil {
		return err
	}
	g.queue = q
	return nil
}

// SetSeed enqueues a re-initialisation of every lane from seed. Lane i is
// keyed with {low 32 bits, high 32 bits, i}.
func (g *Generator) SetSeed(seed uint64) error {
	if g.destroyed {
		return fmt.Errorf("%w: generator destroyed", device.ErrInvalidHandle)
	}
	if g.queue == nil {
		return fmt.Errorf("%w: no queue bound", ErrGeneration)
	}
	lanes := g.lanes
	if err := g.queue.Launch("rng_seed", func(device.Memory) error {
		for i, ln := range lanes {
			ln.seed([]uint32{uint32(seed), uint32(seed >> 32), uint32(i)})
		}
		return nil
	}); err != nil {
		return err
	}
	g.seeded = true
	return nil
}

// GenerateUniform enqueues generation of count float32 values in [0, 1)
// into dst and returns without waiting for them.
func (g *Generator) GenerateUniform(dst device.DeviceBuffer, count int64) error {
	switch {
	case g.destroyed:
		return fmt.Errorf("%w: generator destroyed", device.ErrInvalidHandle)
	case count <= 0:
		return fmt.Errorf("%w: count must be > 0, got %d", ErrGeneration, count)
	case count > math.MaxInt64/4:
		return fmt.Errorf("%w: count %d overflows the buffer size", ErrGeneration, count)
	case g.queue == nil:
		return fmt.Errorf("%w: no queue bound", ErrGeneration)
	case !g.seeded:
		return fmt.Errorf("%w: generator not seeded", ErrGeneration)
	case dst.Bytes() < count*4:
		return fmt.Errorf("%w: destination holds %d bytes, need %d", ErrGeneration, dst.Bytes(), count*4)
	}

	lanes := g.lanes
	units := g.queue.Device().ComputeUnits
	return g.queue.Launch("rng_generate_uniform", func(mem device.Memory) error {
		out, err := mem.DeviceFloat32s(dst)
		if err != nil {
			return err
		}
		return fillLanes(out[:count], lanes, units)
	})
}

// Destroy detaches the generator from its queue. Commands already enqueued
// keep their own reference to the lane state and still complete.
func (g *Generator) Destroy() error {
	if g.destroyed {
		return fmt.Errorf("%w: generator already destroyed", device.ErrInvalidHandle)
	}
	g.destroyed = true
	if g.queue != nil {
		g.queue.Detach()
		g.queue = nil
	}
	g.lanes = nil
	return nil
}

func fillLanes(out []float32, lanes []*lane, units int) error {
	chunk := (len(out) + len(lanes) - 1) / len(lanes)
	var eg errgroup.Group
	eg.SetLimit(max(units, 1))
	for i, ln := range lanes {
		start := i * chunk
		if start >= len(out) {
			break
		}
		end := min(start+chunk, len(out))
		eg.Go(func() error {
			ln.fill(out[start:end])
			return nil
		})
	}
	return eg.Wait()
}
