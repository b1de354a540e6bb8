package device

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var queueIDs atomic.Uint64

// Kernel is device work launched on a queue. It runs on the queue's worker
// goroutine and may fan out across the device's compute units.
type Kernel func(mem Memory) error

type command struct {
	name string
	run  func() error
}

// Queue is an in-order command stream bound to one device.
//
// Ordering contract: every command enqueued on a Queue starts only after all
// commands enqueued before it on the same Queue have completed. Enqueue calls
// return as soon as the command is recorded; the caller blocks only in
// Synchronize and Destroy. A command that fails records a sticky error
// which is returned by the next Synchronize or by Destroy; later commands
// still run.
type Queue struct {
	id  uint64
	dev *Device

	mu          sync.Mutex
	cond        *sync.Cond
	pending     []command
	outstanding int
	attached    int
	destroyed   bool
	closing     bool
	err         error

	done chan struct{}
}

// NewQueue creates a queue on dev and starts its worker.
func NewQueue(dev *Device) (*Queue, error) {
	if dev == nil || dev.arena == nil {
		return nil, fmt.Errorf("%w: device is not provisioned", ErrInvalidHandle)
	}
	q := &Queue{
		id:   queueIDs.Add(1),
		dev:  dev,
		done: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.worker()
	return q, nil
}

func (q *Queue) ID() uint64 {
	return q.id
}

func (q *Queue) Device() *Device {
	return q.dev
}

// Attach records a user of the queue, such as a generator. Destroy fails
// while users are attached.
func (q *Queue) Attach() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.destroyed {
		return fmt.Errorf("%w: queue %d", ErrQueueDestroyed, q.id)
	}
	q.attached++
	return nil
}

func (q *Queue) Detach() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.attached > 0 {
		q.attached--
	}
}

// Launch enqueues kernel.
func (q *Queue) Launch(name string, kernel Kernel) error {
	if kernel == nil {
		return fmt.Errorf("launch %s: nil kernel", name)
	}
	arena := q.dev.arena
	return q.enqueue(name, func() error {
		return kernel(arena)
	})
}

// EnqueueCopyD2H schedules a copy of bytes from src into dst.
func (q *Queue) EnqueueCopyD2H(dst HostBuffer, src DeviceBuffer, bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if err := checkCopy(bytes, dst, src); err != nil {
		return err
	}
	arena := q.dev.arena
	if _, err := arena.hostMem(dst); err != nil {
		return err
	}
	if _, err := arena.deviceMem(src); err != nil {
		return err
	}
	return q.enqueue("memcpy_d2h", func() error {
		d, err := arena.hostMem(dst)
		if err != nil {
			return err
		}
		s, err := arena.deviceMem(src)
		if err != nil {
			return err
		}
		copy(d[:bytes], s[:bytes])
		return nil
	})
}

// EnqueueCopyH2D schedules a copy of bytes from src into dst.
func (q *Queue) EnqueueCopyH2D(dst DeviceBuffer, src HostBuffer, bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if err := checkCopy(bytes, dst, src); err != nil {
		return err
	}
	arena := q.dev.arena
	if _, err := arena.deviceMem(dst); err != nil {
		return err
	}
	if _, err := arena.hostMem(src); err != nil {
		return err
	}
	return q.enqueue("memcpy_h2d", func() error {
		d, err := arena.deviceMem(dst)
		if err != nil {
			return err
		}
		s, err := arena.hostMem(src)
		if err != nil {
			return err
		}
		copy(d[:bytes], s[:bytes])
		return nil
	})
}

// Synchronize blocks until every enqueued command has completed and returns
// the first error recorded since the last Synchronize.
func (q *Queue) Synchronize() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.outstanding > 0 {
		q.cond.Wait()
	}
	err := q.err
	q.err = nil
	return err
}

// Destroy drains the queue, stops its worker and returns any pending
// asynchronous error. No command can be enqueued afterwards.
func (q *Queue) Destroy() error {
	q.mu.Lock()
	if q.destroyed {
		q.mu.Unlock()
		return fmt.Errorf("%w: queue %d already destroyed", ErrInvalidHandle, q.id)
	}
	if q.attached > 0 {
		q.mu.Unlock()
		return fmt.Errorf("%w: queue %d has %d attached", ErrQueueBusy, q.id, q.attached)
	}
	q.destroyed = true
	for q.outstanding > 0 {
		q.cond.Wait()
	}
	q.closing = true
	q.cond.Broadcast()
	err := q.err
	q.err = nil
	q.mu.Unlock()

	<-q.done
	return err
}

func (q *Queue) enqueue(name string, run func() error) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.destroyed {
		return fmt.Errorf("%w: enqueue %s on queue %d", ErrQueueDestroyed, name, q.id)
	}
	q.pending = append(q.pending, command{name: name, run: run})
	q.outstanding++
	q.cond.Broadcast()
	return nil
}

func (q *Queue) worker() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closing {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		cmd := q.pending[0]
		q.pending[0] = command{}
		q.pending = q.pending[1:]
		q.mu.Unlock()

		err := runCommand(cmd)

		q.mu.Lock()
		if err != nil && q.err == nil {
			q.err = fmt.Errorf("queue %d: %s: %w", q.id, cmd.name, err)
		}
		q.outstanding--
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}

func runCommand(cmd command) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = executionError(rec)
		}
	}()
	return cmd.run()
}

func checkCopy(bytes int64, dst, src Buffer) error {
	if bytes > dst.Bytes() || bytes > src.Bytes() {
		return fmt.Errorf("copy of %d bytes exceeds buffer (dst %d, src %d)", bytes, dst.Bytes(), src.Bytes())
	}
	return nil
}
