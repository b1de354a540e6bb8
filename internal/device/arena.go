package device

import (
	"fmt"
	"sync"
	"unsafe"
)

// Buffer is a DeviceBuffer or a HostBuffer.
type Buffer interface {
	Bytes() int64
	handleID() uint64
}

// DeviceBuffer is an opaque handle to device memory. The zero value refers to
// no allocation.
type DeviceBuffer struct {
	id    uint64
	bytes int64
}

func (b DeviceBuffer) Bytes() int64     { return b.bytes }
func (b DeviceBuffer) IsZero() bool     { return b.id == 0 }
func (b DeviceBuffer) handleID() uint64 { return b.id }

// HostBuffer is an opaque handle to host memory allocated by the arena.
type HostBuffer struct {
	id     uint64
	bytes  int64
	pinned bool
}

func (b HostBuffer) Bytes() int64     { return b.bytes }
func (b HostBuffer) IsZero() bool     { return b.id == 0 }
func (b HostBuffer) Pinned() bool     { return b.pinned }
func (b HostBuffer) handleID() uint64 { return b.id }

// Usage reports allocations that have not been freed.
type Usage struct {
	DeviceBuffers int
	HostBuffers   int
	DeviceBytes   int64
	HostBytes     int64
}

func (u Usage) Outstanding() int {
	return u.DeviceBuffers + u.HostBuffers
}

// Memory is the view of device memory handed to a kernel.
type Memory interface {
	DeviceFloat32s(b DeviceBuffer) ([]float32, error)
}

// Arena owns every device and host allocation of one device. Allocations are
// sized exactly to the request; there is no pooling.
type Arena struct {
	mu        sync.Mutex
	deviceCap int64
	hostCap   int64
	nextID    uint64
	device    map[uint64][]byte
	host      map[uint64]hostRegion
	usage     Usage
}

type hostRegion struct {
	mem    []byte
	pinned bool
}

func NewArena(deviceBytes, hostBytes int64) *Arena {
	return &Arena{
		deviceCap: deviceBytes,
		hostCap:   hostBytes,
		device:    make(map[uint64][]byte),
		host:      make(map[uint64]hostRegion),
	}
}

func (a *Arena) AllocDevice(bytes int64) (DeviceBuffer, error) {
	if bytes <= 0 {
		return DeviceBuffer{}, fmt.Errorf("%w: device alloc size must be > 0", ErrAllocation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if bytes > a.deviceCap-a.usage.DeviceBytes {
		return DeviceBuffer{}, fmt.Errorf("%w: insufficient device memory: need %d, available %d",
			ErrAllocation, bytes, a.deviceCap-a.usage.DeviceBytes)
	}
	a.nextID++
	id := a.nextID
	a.device[id] = allocAligned(bytes)
	a.usage.DeviceBuffers++
	a.usage.DeviceBytes += bytes
	return DeviceBuffer{id: id, bytes: bytes}, nil
}

func (a *Arena) AllocHost(bytes int64) (HostBuffer, error) {
	if bytes <= 0 {
		return HostBuffer{}, fmt.Errorf("%w: host alloc size must be > 0", ErrAllocation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if bytes > a.hostCap-a.usage.HostBytes {
		return HostBuffer{}, fmt.Errorf("%w: insufficient host memory: need %d, available %d",
			ErrAllocation, bytes, a.hostCap-a.usage.HostBytes)
	}
	mem, pinned, err := mapHost(bytes)
	if err != nil {
		return HostBuffer{}, fmt.Errorf("%w: map host memory: %v", ErrAllocation, err)
	}
	a.nextID++
	id := a.nextID
	a.host[id] = hostRegion{mem: mem, pinned: pinned}
	a.usage.HostBuffers++
	a.usage.HostBytes += bytes
	return HostBuffer{id: id, bytes: bytes, pinned: pinned}, nil
}

// Free releases buf. Freeing a handle twice, or one the arena never issued,
// returns ErrInvalidHandle.
func (a *Arena) Free(buf Buffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidHandle)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	switch b := buf.(type) {
	case DeviceBuffer:
		mem, ok := a.device[b.id]
		if !ok {
			return fmt.Errorf("%w: device buffer %d is not allocated", ErrInvalidHandle, b.id)
		}
		delete(a.device, b.id)
		a.usage.DeviceBuffers--
		a.usage.DeviceBytes -= int64(len(mem))
		return nil
	case HostBuffer:
		region, ok := a.host[b.id]
		if !ok {
			return fmt.Errorf("%w: host buffer %d is not allocated", ErrInvalidHandle, b.id)
		}
		delete(a.host, b.id)
		a.usage.HostBuffers--
		a.usage.HostBytes -= int64(len(region.mem))
		if err := unmapHost(region.mem, region.pinned); err != nil {
			return fmt.Errorf("unmap host buffer %d: %w", b.id, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown buffer type %T", ErrInvalidHandle, buf)
	}
}

func (a *Arena) Usage() Usage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.usage
}

// DeviceFloat32s returns the float32 view of a live device buffer.
func (a *Arena) DeviceFloat32s(b DeviceBuffer) ([]float32, error) {
	mem, err := a.deviceMem(b)
	if err != nil {
		return nil, err
	}
	return float32View(mem), nil
}

// HostFloat32s returns the float32 view of a live host buffer. The slice is
// invalid once the buffer is freed.
func (a *Arena) HostFloat32s(b HostBuffer) ([]float32, error) {
	mem, err := a.hostMem(b)
	if err != nil {
		return nil, err
	}
	return float32View(mem), nil
}

func (a *Arena) deviceMem(b DeviceBuffer) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	mem, ok := a.device[b.id]
	if !ok {
		return nil, fmt.Errorf("%w: device buffer %d is not allocated", ErrInvalidHandle, b.id)
	}
	return mem, nil
}

func (a *Arena) hostMem(b HostBuffer) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	region, ok := a.host[b.id]
	if !ok {
		return nil, fmt.Errorf("%w: host buffer %d is not allocated", ErrInvalidHandle, b.id)
	}
	return region.mem, nil
}

// allocAligned returns zeroed memory aligned for 8-byte element views.
func allocAligned(bytes int64) []byte {
	words := make([]uint64, (bytes+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), bytes)
}

func float32View(mem []byte) []float32 {
	if len(mem) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&mem[0])), len(mem)/4)
}
