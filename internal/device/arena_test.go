package device

import (
	"errors"
	"testing"
)

func TestAllocDeviceAndFree(t *testing.T) {
	t.Parallel()
	a := NewArena(1<<20, 1<<20)

	buf, err := a.AllocDevice(4096)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	if buf.IsZero() {
		t.Fatal("expected non-zero handle")
	}
	if buf.Bytes() != 4096 {
		t.Fatalf("unexpected size: got %d want 4096", buf.Bytes())
	}
	u := a.Usage()
	if u.DeviceBuffers != 1 || u.DeviceBytes != 4096 {
		t.Fatalf("unexpected usage after alloc: %+v", u)
	}

	if err := a.Free(buf); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if u := a.Usage(); u.Outstanding() != 0 || u.DeviceBytes != 0 {
		t.Fatalf("expected empty arena, got %+v", u)
	}
}

func TestDoubleFreeIsInvalidHandle(t *testing.T) {
	t.Parallel()
	a := NewArena(1<<20, 1<<20)

	dev, err := a.AllocDevice(64)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	host, err := a.AllocHost(64)
	if err != nil {
		t.Fatalf("AllocHost: %v", err)
	}

	if err := a.Free(dev); err != nil {
		t.Fatalf("first device free: %v", err)
	}
	if err := a.Free(dev); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("second device free: got %v want ErrInvalidHandle", err)
	}
	if err := a.Free(host); err != nil {
		t.Fatalf("first host free: %v", err)
	}
	if err := a.Free(host); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("second host free: got %v want ErrInvalidHandle", err)
	}
}

func TestFreeNeverAllocated(t *testing.T) {
	t.Parallel()
	a := NewArena(1<<20, 1<<20)

	if err := a.Free(DeviceBuffer{}); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("zero device handle: got %v want ErrInvalidHandle", err)
	}
	if err := a.Free(HostBuffer{}); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("zero host handle: got %v want ErrInvalidHandle", err)
	}
	if err := a.Free(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("nil buffer: got %v want ErrInvalidHandle", err)
	}

	other := NewArena(1<<20, 1<<20)
	foreign, err := other.AllocDevice(16)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	foreign.id += 100
	if err := a.Free(foreign); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("foreign handle: got %v want ErrInvalidHandle", err)
	}
}

func TestAllocationExceedsCapacity(t *testing.T) {
	t.Parallel()
	a := NewArena(1024, 512)

	if _, err := a.AllocDevice(2048); !errors.Is(err, ErrAllocation) {
		t.Fatalf("oversized device alloc: got %v want ErrAllocation", err)
	}
	if _, err := a.AllocHost(1024); !errors.Is(err, ErrAllocation) {
		t.Fatalf("oversized host alloc: got %v want ErrAllocation", err)
	}
	if _, err := a.AllocDevice(0); !errors.Is(err, ErrAllocation) {
		t.Fatalf("zero device alloc: got %v want ErrAllocation", err)
	}
	if _, err := a.AllocHost(-1); !errors.Is(err, ErrAllocation) {
		t.Fatalf("negative host alloc: got %v want ErrAllocation", err)
	}

	first, err := a.AllocDevice(768)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	if _, err := a.AllocDevice(512); !errors.Is(err, ErrAllocation) {
		t.Fatalf("alloc past remaining capacity: got %v want ErrAllocation", err)
	}
	if err := a.Free(first); err != nil {
		t.Fatalf("Free: %v", err)
	}
	second, err := a.AllocDevice(1024)
	if err != nil {
		t.Fatalf("alloc after free: %v", err)
	}
	_ = a.Free(second)

	if u := a.Usage(); u.Outstanding() != 0 {
		t.Fatalf("failed allocations must not be tracked: %+v", u)
	}
}

func TestFloat32ViewsAfterFree(t *testing.T) {
	t.Parallel()
	a := NewArena(1<<20, 1<<20)

	dev, err := a.AllocDevice(40)
	if err != nil {
		t.Fatalf("AllocDevice: %v", err)
	}
	vals, err := a.DeviceFloat32s(dev)
	if err != nil {
		t.Fatalf("DeviceFloat32s: %v", err)
	}
	if len(vals) != 10 {
		t.Fatalf("unexpected view length: got %d want 10", len(vals))
	}
	for i, v := range vals {
		if v != 0 {
			t.Fatalf("device memory not zeroed at %d: %v", i, v)
		}
	}

	if err := a.Free(dev); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if _, err := a.DeviceFloat32s(dev); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("use after free: got %v want ErrInvalidHandle", err)
	}
}
