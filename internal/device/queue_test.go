package device

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	dev, err := Provision(Config{
		Devices:         []Spec{{Name: "test", MemoryBytes: 1 << 20, ComputeUnits: 2}},
		HostMemoryBytes: 1 << 20,
	}, 0)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	return dev
}

func TestQueueRunsInProgramOrder(t *testing.T) {
	t.Parallel()
	q, err := NewQueue(newTestDevice(t))
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}

	var order []int
	for i := range 50 {
		if err := q.Launch("step", func(Memory) error {
			if i%7 == 0 {
				time.Sleep(time.Millisecond)
			}
			order = append(order, i)
			return nil
		}); err != nil {
			t.Fatalf("Launch %d: %v", i, err)
		}
	}
	if err := q.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if len(order) != 50 {
		t.Fatalf("destroy must drain the queue: ran %d of 50", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("out of order at %d: got %d", i, v)
		}
	}
}

func TestKernelThenCopyRoundTrip(t *testing.T) {
	t.Parallel()
	dev := newTestDevice(t)
	arena := dev.Arena()
	q, err := NewQueue(dev)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}

	const n = 256
	dbuf, err := arena.AllocDevice(n * 4)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	hbuf, err := arena.AllocHost(n * 4)
	if err != nil {
		t.Fatalf("AllocHost: %v", err)
	}

	if err := q.Launch("fill", func(mem Memory) error {
		out, err := mem.DeviceFloat32s(dbuf)
		if err != nil {
			return err
		}
		for i := range out {
			out[i] = float32(i) * 1.25
		}
		return nil
	}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if err := q.EnqueueCopyD2H(hbuf, dbuf, n*4); err != nil {
		t.Fatalf("EnqueueCopyD2H: %v", err)
	}
	if err := q.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	host, err := arena.HostFloat32s(hbuf)
	if err != nil {
		t.Fatalf("HostFloat32s: %v", err)
	}
	for i, v := range host {
		if v != float32(i)*1.25 {
			t.Fatalf("mismatch at %d: got %v want %v", i, v, float32(i)*1.25)
		}
	}

	if err := arena.Free(dbuf); err != nil {
		t.Fatalf("device free: %v", err)
	}
	if err := arena.Free(hbuf); err != nil {
		t.Fatalf("host free: %v", err)
	}
}

func TestHostToDeviceCopy(t *testing.T) {
	t.Parallel()
	dev := newTestDevice(t)
	arena := dev.Arena()
	q, err := NewQueue(dev)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	defer func() { _ = q.Destroy() }()

	hin, err := arena.AllocHost(64)
	if err != nil {
		t.Fatalf("AllocHost: %v", err)
	}
	defer func() { _ = arena.Free(hin) }()
	dbuf, err := arena.AllocDevice(64)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	defer func() { _ = arena.Free(dbuf) }()

	in, err := arena.HostFloat32s(hin)
	if err != nil {
		t.Fatalf("HostFloat32s: %v", err)
	}
	for i := range in {
		in[i] = float32(i + 1)
	}
	if err := q.EnqueueCopyH2D(dbuf, hin, 64); err != nil {
		t.Fatalf("EnqueueCopyH2D: %v", err)
	}
	if err := q.Synchronize(); err != nil {
		t.Fatalf("Synchronize: %v", err)
	}
	got, err := arena.DeviceFloat32s(dbuf)
	if err != nil {
		t.Fatalf("DeviceFloat32s: %v", err)
	}
	for i := range got {
		if got[i] != in[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got[i], in[i])
		}
	}
}

func TestCopyRejectsOversizedTransfer(t *testing.T) {
	t.Parallel()
	dev := newTestDevice(t)
	arena := dev.Arena()
	q, err := NewQueue(dev)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	defer func() { _ = q.Destroy() }()

	dbuf, _ := arena.AllocDevice(16)
	hbuf, _ := arena.AllocHost(8)
	defer func() { _ = arena.Free(dbuf) }()
	defer func() { _ = arena.Free(hbuf) }()

	if err := q.EnqueueCopyD2H(hbuf, dbuf, 16); err == nil {
		t.Fatal("expected oversized copy to fail")
	}
	if err := q.EnqueueCopyD2H(hbuf, dbuf, 0); err != nil {
		t.Fatalf("zero-byte copy should be a no-op: %v", err)
	}
}

func TestAsyncErrorIsSticky(t *testing.T) {
	t.Parallel()
	q, err := NewQueue(newTestDevice(t))
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}

	var ran atomic.Int32
	_ = q.Launch("boom", func(Memory) error { return errors.New("boom") })
	_ = q.Launch("after", func(Memory) error { ran.Add(1); return nil })

	err = q.Synchronize()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected sticky error from Synchronize, got %v", err)
	}
	if ran.Load() != 1 {
		t.Fatal("commands after a failure must still run")
	}
	if err := q.Synchronize(); err != nil {
		t.Fatalf("error should be cleared after being reported: %v", err)
	}
	if err := q.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
}

func TestKernelPanicBecomesError(t *testing.T) {
	t.Parallel()
	q, err := NewQueue(newTestDevice(t))
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	_ = q.Launch("panics", func(Memory) error { panic("lane fault") })

	err = q.Destroy()
	if err == nil || !strings.Contains(err.Error(), "device execution failed") {
		t.Fatalf("expected execution error, got %v", err)
	}
	if !strings.Contains(err.Error(), "lane fault") {
		t.Fatalf("missing panic value: %v", err)
	}
}

func TestDestroyLifecycle(t *testing.T) {
	t.Parallel()
	q, err := NewQueue(newTestDevice(t))
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}

	if err := q.Attach(); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := q.Destroy(); !errors.Is(err, ErrQueueBusy) {
		t.Fatalf("destroy with attached user: got %v want ErrQueueBusy", err)
	}
	q.Detach()

	if err := q.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := q.Destroy(); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("second destroy: got %v want ErrInvalidHandle", err)
	}
	if err := q.Launch("late", func(Memory) error { return nil }); !errors.Is(err, ErrQueueDestroyed) {
		t.Fatalf("launch after destroy: got %v want ErrQueueDestroyed", err)
	}
	if err := q.Attach(); !errors.Is(err, ErrQueueDestroyed) {
		t.Fatalf("attach after destroy: got %v want ErrQueueDestroyed", err)
	}
}
