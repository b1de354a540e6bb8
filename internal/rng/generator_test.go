package rng

import (
	"errors"
	"testing"

	"github.com/samcharles93/gpurand/internal/device"
)

func testDevice(t *testing.T, units int) *device.Device {
	t.Helper()
	dev, err := device.Provision(device.Config{
		Devices:         []device.Spec{{Name: "test", MemoryBytes: 64 << 20, ComputeUnits: units}},
		HostMemoryBytes: 64 << 20,
	}, 0)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	return dev
}

// generate runs one seeded generation and returns the device contents.
func generate(t *testing.T, dev *device.Device, variant string, lanes int, seed uint64, counts ...int64) [][]float32 {
	t.Helper()
	arena := dev.Arena()
	q, err := device.NewQueue(dev)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	g, err := Create(variant, WithLanes(lanes))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := g.BindQueue(q); err != nil {
		t.Fatalf("BindQueue: %v", err)
	}
	if err := g.SetSeed(seed); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}

	bufs := make([]device.DeviceBuffer, len(counts))
	for i, n := range counts {
		bufs[i], err = arena.AllocDevice(n * 4)
		if err != nil {
			t.Fatalf("AllocDevice: %v", err)
		}
		if err := g.GenerateUniform(bufs[i], n); err != nil {
			t.Fatalf("GenerateUniform: %v", err)
		}
	}
	if err := g.Destroy(); err != nil {
		t.Fatalf("Destroy generator: %v", err)
	}
	if err := q.Destroy(); err != nil {
		t.Fatalf("Destroy queue: %v", err)
	}

	out := make([][]float32, len(bufs))
	for i, b := range bufs {
		vals, err := arena.DeviceFloat32s(b)
		if err != nil {
			t.Fatalf("DeviceFloat32s: %v", err)
		}
		out[i] = append([]float32(nil), vals...)
		if err := arena.Free(b); err != nil {
			t.Fatalf("Free: %v", err)
		}
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()
	for _, v := range []string{MT2203, MT19937} {
		first := generate(t, testDevice(t, 4), v, 0, 777, 10)[0]
		second := generate(t, testDevice(t, 4), v, 0, 777, 10)[0]
		if len(first) != 10 {
			t.Fatalf("%s: expected 10 values, got %d", v, len(first))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%s: runs differ at %d: %v vs %v", v, i, first[i], second[i])
			}
			if first[i] < 0 || first[i] >= 1 {
				t.Fatalf("%s: value %d out of range: %v", v, i, first[i])
			}
		}
	}
}

func TestGenerateIndependentOfComputeUnits(t *testing.T) {
	t.Parallel()
	one := generate(t, testDevice(t, 1), MT2203, 64, 42, 100003)[0]
	many := generate(t, testDevice(t, 16), MT2203, 64, 42, 100003)[0]
	for i := range one {
		if one[i] != many[i] {
			t.Fatalf("output depends on compute units at %d: %v vs %v", i, one[i], many[i])
		}
	}
}

func TestSeedChangesOutput(t *testing.T) {
	t.Parallel()
	a := generate(t, testDevice(t, 2), MT2203, 0, 777, 64)[0]
	b := generate(t, testDevice(t, 2), MT2203, 0, 778, 64)[0]
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("different seeds produced %d identical values", same)
	}
}

func TestSuccessiveBatchesContinueStream(t *testing.T) {
	t.Parallel()
	got := generate(t, testDevice(t, 2), MT19937, 4, 9, 16, 16)
	same := 0
	for i := range got[0] {
		if got[0][i] == got[1][i] {
			same++
		}
	}
	if same > 1 {
		t.Fatalf("second batch repeated the first (%d equal values)", same)
	}
}

func TestGenerateUniformValidation(t *testing.T) {
	t.Parallel()
	dev := testDevice(t, 2)
	arena := dev.Arena()
	buf, err := arena.AllocDevice(40)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	defer func() { _ = arena.Free(buf) }()

	g, err := Create(MT2203)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := g.GenerateUniform(buf, 10); !errors.Is(err, ErrGeneration) {
		t.Fatalf("generate before bind: got %v want ErrGeneration", err)
	}
	if err := g.SetSeed(1); !errors.Is(err, ErrGeneration) {
		t.Fatalf("seed before bind: got %v want ErrGeneration", err)
	}

	q, err := device.NewQueue(dev)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	if err := g.BindQueue(q); err != nil {
		t.Fatalf("BindQueue: %v", err)
	}
	if err := g.BindQueue(q); !errors.Is(err, ErrGeneration) {
		t.Fatalf("second bind: got %v want ErrGeneration", err)
	}
	if err := g.GenerateUniform(buf, 10); !errors.Is(err, ErrGeneration) {
		t.Fatalf("generate before seed: got %v want ErrGeneration", err)
	}
	if err := g.SetSeed(1); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}
	if err := g.GenerateUniform(buf, 0); !errors.Is(err, ErrGeneration) {
		t.Fatalf("zero count: got %v want ErrGeneration", err)
	}
	if err := g.GenerateUniform(buf, -5); !errors.Is(err, ErrGeneration) {
		t.Fatalf("negative count: got %v want ErrGeneration", err)
	}
	if err := g.GenerateUniform(buf, 11); !errors.Is(err, ErrGeneration) {
		t.Fatalf("undersized destination: got %v want ErrGeneration", err)
	}

	if err := q.Destroy(); !errors.Is(err, device.ErrQueueBusy) {
		t.Fatalf("queue destroy with bound generator: got %v want ErrQueueBusy", err)
	}
	if err := g.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := g.Destroy(); !errors.Is(err, device.ErrInvalidHandle) {
		t.Fatalf("double destroy: got %v want ErrInvalidHandle", err)
	}
	if err := g.GenerateUniform(buf, 10); !errors.Is(err, device.ErrInvalidHandle) {
		t.Fatalf("generate after destroy: got %v want ErrInvalidHandle", err)
	}
	if err := q.Destroy(); err != nil {
		t.Fatalf("queue destroy: %v", err)
	}
}

func TestCreateRejectsUnknownVariant(t *testing.T) {
	t.Parallel()
	if _, err := Create("philox4x32"); !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("unknown variant: got %v want ErrUnsupportedVariant", err)
	}
	if _, err := Create(MT2203, WithLanes(MT2203Streams+1)); !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("too many lanes: got %v want ErrUnsupportedVariant", err)
	}
	g, err := Create(" MT2203 ")
	if err != nil {
		t.Fatalf("Create with padded name: %v", err)
	}
	if g.Variant() != MT2203 || g.Lanes() != 256 {
		t.Fatalf("unexpected generator: %s with %d lanes", g.Variant(), g.Lanes())
	}
}

func TestVariantsSorted(t *testing.T) {
	t.Parallel()
	vs := Variants()
	if len(vs) != 2 || vs[0].Name != MT19937 || vs[1].Name != MT2203 {
		t.Fatalf("unexpected variants: %+v", vs)
	}
	name, err := Normalize("")
	if err != nil || name != Default {
		t.Fatalf("Normalize empty: got %q, %v", name, err)
	}
}
