// Package pipeline drives one generation request through the device: queue
// acquisition, buffer allocation, generator binding, seeding, generation,
// copy-out and teardown, in that order and exactly once.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/rng"
)

// Consumer receives the generated values after the queue has drained. The
// slice is only valid for the duration of the call.
type Consumer func(values []float32) error

// Pipeline owns the queue, generator and buffers of a single run. It is
// driven by one goroutine and is not reusable once torn down.
type Pipeline struct {
	id    string
	dev   *device.Device
	req   Request
	log   logger.Logger
	state State

	queue   *device.Queue
	gen     *rng.Generator
	devBuf  device.DeviceBuffer
	hostBuf device.HostBuffer
}

func New(dev *device.Device, req Request, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	id := uuid.NewString()
	return &Pipeline{
		id:  id,
		dev: dev,
		req: req,
		log: log.With("run_id", id),
	}
}

func (p *Pipeline) ID() string       { return p.id }
func (p *Pipeline) State() State     { return p.state }
func (p *Pipeline) Request() Request { return p.req }

// AcquireQueue validates the request and creates the run's queue. Nothing is
// allocated when validation fails.
func (p *Pipeline) AcquireQueue() error {
	if err := p.expect(StageAcquireQueue, Uninitialized); err != nil {
		return err
	}
	if err := p.req.Validate(); err != nil {
		return p.abort(StageValidate, err)
	}
	return p.advance(StageAcquireQueue, QueueReady, func() error {
		q, err := device.NewQueue(p.dev)
		if err != nil {
			return err
		}
		p.queue = q
		return nil
	})
}

func (p *Pipeline) AllocateBuffers() error {
	if err := p.expect(StageAllocateBuffers, QueueReady); err != nil {
		return err
	}
	return p.advance(StageAllocateBuffers, BuffersAllocated, func() error {
		p.log.Info("allocating data", "samples", p.req.Count, "bytes", p.req.Bytes())
		arena := p.dev.Arena()
		devBuf, err := arena.AllocDevice(p.req.Bytes())
		if err != nil {
			return err
		}
		p.devBuf = devBuf
		hostBuf, err := arena.AllocHost(p.req.Bytes())
		if err != nil {
			return err
		}
		p.hostBuf = hostBuf
		if !hostBuf.Pinned() {
			p.log.Debug("host buffer is not page-locked")
		}
		return nil
	})
}

func (p *Pipeline) BindGenerator() error {
	if err := p.expect(StageBindGenerator, BuffersAllocated); err != nil {
		return err
	}
	return p.advance(StageBindGenerator, GeneratorBound, func() error {
		gen, err := rng.Create(p.req.Variant, rng.WithLanes(p.req.Lanes))
		if err != nil {
			return err
		}
		p.gen = gen
		p.log.Debug("generator created", "variant", gen.Variant(), "lanes", gen.Lanes())
		return gen.BindQueue(p.queue)
	})
}

func (p *Pipeline) Seed() error {
	if err := p.expect(StageSeed, GeneratorBound); err != nil {
		return err
	}
	return p.advance(StageSeed, Seeded, func() error {
		p.log.Info("seeding", "seed", p.req.Seed)
		return p.gen.SetSeed(p.req.Seed)
	})
}

func (p *Pipeline) Generate() error {
	if err := p.expect(StageGenerate, Seeded); err != nil {
		return err
	}
	return p.advance(StageGenerate, Generated, func() error {
		p.log.Info("generating random numbers")
		return p.gen.GenerateUniform(p.devBuf, p.req.Count)
	})
}

// CopyOut enqueues the device to host transfer behind generation. The host
// buffer is readable only after Teardown has drained the queue.
func (p *Pipeline) CopyOut() error {
	if err := p.expect(StageCopyOut, Generated); err != nil {
		return err
	}
	return p.advance(StageCopyOut, CopiedOut, func() error {
		p.log.Info("reading back the results")
		return p.queue.EnqueueCopyD2H(p.hostBuf, p.devBuf, p.req.Bytes())
	})
}

// Teardown destroys the generator, drains and destroys the queue, hands the
// host buffer to consume and then frees both buffers. consume may be nil.
func (p *Pipeline) Teardown(consume Consumer) error {
	if err := p.expect(StageTeardown, CopiedOut); err != nil {
		return err
	}
	p.log.Info("shutting down")

	if err := p.destroyGenerator(); err != nil {
		return p.abort(StageTeardown, err)
	}
	if err := p.destroyQueue(); err != nil {
		return p.abort(StageTeardown, err)
	}
	if consume != nil {
		values, err := p.dev.Arena().HostFloat32s(p.hostBuf)
		if err == nil {
			err = consume(values[:p.req.Count])
		}
		if err != nil {
			return p.abort(StageTeardown, err)
		}
	}

	err := p.release()
	p.state = TornDown
	if err != nil {
		return &StageError{Stage: StageTeardown, Err: err}
	}
	p.log.Debug("pipeline complete")
	return nil
}

// Abort releases whatever the pipeline holds and moves it to TornDown.
// Aborting a torn-down pipeline is a no-op.
func (p *Pipeline) Abort() error {
	if p.state == TornDown {
		return nil
	}
	err := p.release()
	p.state = TornDown
	return err
}

// expect fails with ErrSequence when the pipeline is not in state want. A
// live pipeline that is driven out of order is torn down.
func (p *Pipeline) expect(stage string, want State) error {
	if p.state == want {
		return nil
	}
	err := fmt.Errorf("%w: %s requires %s, pipeline is %s", ErrSequence, stage, want, p.state)
	if p.state == TornDown {
		return &StageError{Stage: stage, Err: err}
	}
	return p.abort(stage, err)
}

func (p *Pipeline) advance(stage string, next State, fn func() error) error {
	p.log.Debug("pipeline stage", "stage", stage, "state", p.state.String())
	if err := fn(); err != nil {
		return p.abort(stage, err)
	}
	p.state = next
	return nil
}

func (p *Pipeline) abort(stage string, err error) error {
	if cerr := p.release(); cerr != nil {
		p.log.Warn("cleanup after failed stage incomplete", "stage", stage, "error", cerr)
	}
	p.state = TornDown
	p.log.Debug("pipeline aborted", "stage", stage, "error", err)
	return &StageError{Stage: stage, Err: err}
}

// release frees everything still held in reverse acquisition order and
// reports every failure.
func (p *Pipeline) release() error {
	var errs []error
	if err := p.destroyGenerator(); err != nil {
		errs = append(errs, fmt.Errorf("destroy generator: %w", err))
	}
	if err := p.destroyQueue(); err != nil {
		errs = append(errs, fmt.Errorf("destroy queue: %w", err))
	}
	arena := p.dev.Arena()
	if !p.devBuf.IsZero() {
		if err := arena.Free(p.devBuf); err != nil {
			errs = append(errs, fmt.Errorf("free device buffer: %w", err))
		}
		p.devBuf = device.DeviceBuffer{}
	}
	if !p.hostBuf.IsZero() {
		if err := arena.Free(p.hostBuf); err != nil {
			errs = append(errs, fmt.Errorf("free host buffer: %w", err))
		}
		p.hostBuf = device.HostBuffer{}
	}
	return errors.Join(errs...)
}

func (p *Pipeline) destroyGenerator() error {
	if p.gen == nil {
		return nil
	}
	gen := p.gen
	p.gen = nil
	return gen.Destroy()
}

// destroyQueue drains the queue. A queue that reports asynchronous errors is
// still destroyed and the error is returned.
func (p *Pipeline) destroyQueue() error {
	if p.queue == nil {
		return nil
	}
	err := p.queue.Destroy()
	if !errors.Is(err, device.ErrQueueBusy) {
		p.queue = nil
	}
	return err
}

// Run drives a fresh pipeline through every stage and hands the results to
// consume. The logger is taken from ctx.
func Run(ctx context.Context, dev *device.Device, req Request, consume Consumer) error {
	p := New(dev, req, logger.FromContext(ctx))
	steps := []func() error{
		p.AcquireQueue,
		p.AllocateBuffers,
		p.BindGenerator,
		p.Seed,
		p.Generate,
		p.CopyOut,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return p.Teardown(consume)
}

// Generate runs a pipeline and returns a copy of the generated values.
func Generate(ctx context.Context, dev *device.Device, req Request) ([]float32, error) {
	var out []float32
	err := Run(ctx, dev, req, func(values []float32) error {
		out = make([]float32, len(values))
		copy(out, values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
