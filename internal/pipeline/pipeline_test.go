package pipeline

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/rng"
)

func testDevice(t *testing.T, units int) *device.Device {
	t.Helper()
	dev, err := device.Provision(device.Config{
		Devices:         []device.Spec{{Name: "test", MemoryBytes: 64 << 20, ComputeUnits: units}},
		HostMemoryBytes: 64 << 20,
	}, 0)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	return dev
}

func request(count int64, seed uint64) Request {
	req := ResolveRequest(RequestOptions{}, DefaultSettings())
	req.Count = count
	req.Seed = seed
	return req
}

func assertReleased(t *testing.T, dev *device.Device) {
	t.Helper()
	if usage := dev.Arena().Usage(); usage != (device.Usage{}) {
		t.Fatalf("buffers still outstanding: %+v", usage)
	}
}

func mustStep(t *testing.T, step func() error) {
	t.Helper()
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

// assertStageError checks err wraps target and carries the stage and kind.
func assertStageError(t *testing.T, err, target error, stage, kind string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
	if got := Stage(err); got != stage {
		t.Fatalf("stage: got %q want %q", got, stage)
	}
	if kind != "" && Kind(err) != kind {
		t.Fatalf("kind: got %q want %q", Kind(err), kind)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	first, err := Generate(ctx, testDevice(t, 4), request(10, 777))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Generate(ctx, testDevice(t, 4), request(10, 777))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first) != 10 {
		t.Fatalf("expected 10 values, got %d", len(first))
	}
	if !slices.Equal(first, second) {
		t.Fatal("runs with the same seed differ")
	}
	for i, v := range first {
		if v < 0 || v >= 1 {
			t.Fatalf("value %d out of range: %v", i, v)
		}
	}
}

func TestGenerateIndependentOfComputeUnits(t *testing.T) {
	ctx := context.Background()
	req := request(100_000, 42)
	one, err := Generate(ctx, testDevice(t, 1), req)
	if err != nil {
		t.Fatalf("one unit: %v", err)
	}
	many, err := Generate(ctx, testDevice(t, 16), req)
	if err != nil {
		t.Fatalf("16 units: %v", err)
	}
	if !slices.Equal(one, many) {
		t.Fatal("output depends on compute units")
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	ctx := context.Background()
	a, err := Generate(ctx, testDevice(t, 2), request(64, 777))
	if err != nil {
		t.Fatalf("seed 777: %v", err)
	}
	b, err := Generate(ctx, testDevice(t, 2), request(64, 778))
	if err != nil {
		t.Fatalf("seed 778: %v", err)
	}
	if slices.Equal(a, b) {
		t.Fatal("different seeds gave the same output")
	}
}

func TestGenerateBothVariants(t *testing.T) {
	for _, v := range rng.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			dev := testDevice(t, 4)
			req := request(5000, 1)
			req.Variant = v.Name
			values, err := Generate(context.Background(), dev, req)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(values) != 5000 {
				t.Fatalf("expected 5000 values, got %d", len(values))
			}
			for i, x := range values {
				if x < 0 || x >= 1 {
					t.Fatalf("value %d out of range: %v", i, x)
				}
			}
			assertReleased(t, dev)
		})
	}
}

func TestRunReleasesEverything(t *testing.T) {
	dev := testDevice(t, 4)
	if err := Run(context.Background(), dev, request(1000, 777), nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertReleased(t, dev)
}

func TestConsumerRunsBeforeBuffersAreFreed(t *testing.T) {
	dev := testDevice(t, 4)
	var (
		seen device.Usage
		n    int
	)
	err := Run(context.Background(), dev, request(1000, 777), func(values []float32) error {
		n = len(values)
		seen = dev.Arena().Usage()
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1000 {
		t.Fatalf("consumer saw %d values", n)
	}
	if seen.DeviceBuffers != 1 || seen.HostBuffers != 1 {
		t.Fatalf("buffers should be live in the consumer: %+v", seen)
	}
	assertReleased(t, dev)
}

func TestConsumerErrorReleasesBuffers(t *testing.T) {
	dev := testDevice(t, 2)
	boom := errors.New("boom")
	err := Run(context.Background(), dev, request(100, 777), func([]float32) error {
		return boom
	})
	assertStageError(t, err, boom, StageTeardown, "")
	assertReleased(t, dev)
}

func TestZeroCountFailsBeforeAllocation(t *testing.T) {
	for _, count := range []int64{0, -5} {
		dev := testDevice(t, 2)
		p := New(dev, request(count, 777), logger.Nop())
		err := p.AcquireQueue()
		assertStageError(t, err, rng.ErrGeneration, StageValidate, "GenerationError")
		if p.State() != TornDown {
			t.Fatalf("state after failure: %v", p.State())
		}
		assertReleased(t, dev)
	}
}

func TestOversizedCountIsAllocationError(t *testing.T) {
	dev := testDevice(t, 2)
	p := New(dev, request(10_000_000_000, 777), logger.Nop())
	mustStep(t, p.AcquireQueue)

	err := p.AllocateBuffers()
	assertStageError(t, err, device.ErrAllocation, StageAllocateBuffers, "AllocationError")
	if p.State() != TornDown {
		t.Fatalf("state after failure: %v", p.State())
	}
	assertReleased(t, dev)
}

func TestHostAllocationFailureFreesDeviceBuffer(t *testing.T) {
	dev, err := device.Provision(device.Config{
		Devices:         []device.Spec{{MemoryBytes: 1 << 20, ComputeUnits: 1}},
		HostMemoryBytes: 1 << 10,
	}, 0)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}

	err = Run(context.Background(), dev, request(1024, 777), nil)
	assertStageError(t, err, device.ErrAllocation, StageAllocateBuffers, "")
	assertReleased(t, dev)
}

func TestGenerateBeforeSeedIsSequenceError(t *testing.T) {
	dev := testDevice(t, 2)
	p := New(dev, request(10, 777), logger.Nop())
	mustStep(t, p.AcquireQueue)
	mustStep(t, p.AllocateBuffers)
	mustStep(t, p.BindGenerator)

	err := p.Generate()
	assertStageError(t, err, ErrSequence, StageGenerate, "SequenceError")
	if p.State() != TornDown {
		t.Fatalf("state after failure: %v", p.State())
	}
	assertReleased(t, dev)
}

func TestSkippedStageIsSequenceError(t *testing.T) {
	dev := testDevice(t, 2)
	p := New(dev, request(10, 777), logger.Nop())
	mustStep(t, p.AcquireQueue)

	if err := p.BindGenerator(); !errors.Is(err, ErrSequence) {
		t.Fatalf("expected sequence error, got %v", err)
	}
	if p.State() != TornDown {
		t.Fatalf("state after failure: %v", p.State())
	}
	assertReleased(t, dev)
}

func TestStepsAfterTeardownFail(t *testing.T) {
	dev := testDevice(t, 2)
	p := New(dev, request(10, 777), logger.Nop())
	for _, step := range []func() error{p.AcquireQueue, p.AllocateBuffers, p.BindGenerator, p.Seed, p.Generate, p.CopyOut} {
		mustStep(t, step)
	}
	if err := p.Teardown(nil); err != nil {
		t.Fatalf("teardown: %v", err)
	}
	if p.State() != TornDown {
		t.Fatalf("state after teardown: %v", p.State())
	}

	if err := p.AcquireQueue(); !errors.Is(err, ErrSequence) {
		t.Fatalf("AcquireQueue after teardown: %v", err)
	}
	if err := p.Teardown(nil); !errors.Is(err, ErrSequence) {
		t.Fatalf("second teardown: %v", err)
	}
	if err := p.Abort(); err != nil {
		t.Fatalf("abort after teardown: %v", err)
	}
	assertReleased(t, dev)
}

func TestAbortMidway(t *testing.T) {
	dev := testDevice(t, 2)
	p := New(dev, request(10, 777), logger.Nop())
	mustStep(t, p.AcquireQueue)
	mustStep(t, p.AllocateBuffers)
	mustStep(t, p.BindGenerator)
	mustStep(t, p.Seed)

	if err := p.Abort(); err != nil {
		t.Fatalf("abort: %v", err)
	}
	if p.State() != TornDown {
		t.Fatalf("state after abort: %v", p.State())
	}
	assertReleased(t, dev)
}

func TestUnsupportedVariant(t *testing.T) {
	dev := testDevice(t, 2)
	req := request(10, 777)
	req.Variant = "philox"

	err := Run(context.Background(), dev, req, nil)
	assertStageError(t, err, rng.ErrUnsupportedVariant, StageValidate, "UnsupportedVariantError")
	assertReleased(t, dev)
}

func TestTooManyLanesFailsAtBind(t *testing.T) {
	dev := testDevice(t, 2)
	req := request(10, 777)
	req.Lanes = rng.MT2203Streams + 1

	err := Run(context.Background(), dev, req, nil)
	assertStageError(t, err, rng.ErrUnsupportedVariant, StageBindGenerator, "")
	assertReleased(t, dev)
}

func TestStageErrorMessage(t *testing.T) {
	err := &StageError{Stage: StageSeed, Err: ErrSequence}
	if got, want := err.Error(), "stage seed failed (SequenceError): pipeline stage out of order"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Kind(nil) != "" {
		t.Fatalf("Kind(nil) = %q", Kind(nil))
	}
	if got := Kind(errors.New("other")); got != "DeviceError" {
		t.Fatalf("Kind(other) = %q", got)
	}
}

func TestResolveRequest(t *testing.T) {
	defaults := DefaultSettings()
	req := ResolveRequest(RequestOptions{}, defaults)
	if want := (Request{Count: DefaultCount, Seed: DefaultSeed, Variant: rng.Default}); req != want {
		t.Fatalf("defaults: got %+v want %+v", req, want)
	}

	count := int64(10)
	seed := uint64(5)
	variant := rng.MT19937
	lanes := 8
	req = ResolveRequest(RequestOptions{Count: &count, Seed: &seed, Variant: &variant, Lanes: &lanes}, defaults)
	if want := (Request{Count: 10, Seed: 5, Variant: rng.MT19937, Lanes: 8}); req != want {
		t.Fatalf("explicit: got %+v want %+v", req, want)
	}
	if req.Bytes() != 40 {
		t.Fatalf("Bytes() = %d", req.Bytes())
	}

	for _, blank := range []string{"", "  "} {
		req = ResolveRequest(RequestOptions{Variant: &blank}, defaults)
		if req.Variant != rng.Default {
			t.Fatalf("blank variant %q resolved to %q", blank, req.Variant)
		}
	}
}

func TestResolveRequestNormalizesVariant(t *testing.T) {
	raw := " MT19937 "
	req := ResolveRequest(RequestOptions{Variant: &raw}, DefaultSettings())
	if req.Variant != rng.MT19937 {
		t.Fatalf("variant stored as %q, want %q", req.Variant, rng.MT19937)
	}

	defaults := DefaultSettings()
	defaults.Variant = "Mt2203"
	if req := ResolveRequest(RequestOptions{}, defaults); req.Variant != rng.MT2203 {
		t.Fatalf("default variant stored as %q", req.Variant)
	}

	unknown := " Philox "
	req = ResolveRequest(RequestOptions{Variant: &unknown}, DefaultSettings())
	if req.Variant != unknown {
		t.Fatalf("unknown variant should be kept as given, got %q", req.Variant)
	}
	if err := req.Validate(); !errors.Is(err, rng.ErrUnsupportedVariant) {
		t.Fatalf("expected unsupported variant, got %v", err)
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		Uninitialized: "UNINITIALIZED",
		CopiedOut:     "COPIED_OUT",
		TornDown:      "TORN_DOWN",
		State(42):     "State(42)",
	} {
		if got := state.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
