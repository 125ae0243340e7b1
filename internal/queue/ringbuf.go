package queue

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// RingQueue is a fixed-capacity FIFO queue over a circular buffer.
//
// The buffer is allocated once by New and never grows. front is the slot of
// the oldest item and rear the slot of the newest; size tells full from
// empty when the two indices meet.
//
// WARNING: RingQueue is NOT safe for concurrent use.
type RingQueue struct {
	buf      []Item
	front    int
	rear     int
	size     int
	capacity int
}

// NewRingQueue creates a RingQueue holding up to capacity items.
// It is equivalent to New.
func NewRingQueue(capacity int) (*RingQueue, error) {
	return New(capacity)
}

// New creates an empty RingQueue with a zeroed buffer of capacity slots.
//
// It returns ErrInvalidArgument if capacity is not positive and
// ErrOutOfMemory if the buffer cannot be allocated.
func New(capacity int) (*RingQueue, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d", capacity)
	}

	buf, err := allocate(capacity)
	if err != nil {
		return nil, err
	}

	return &RingQueue{
		buf:      buf,
		front:    0,
		rear:     capacity - 1,
		size:     0,
		capacity: capacity,
	}, nil
}

// allocate turns the runtime panic raised for an impossible slice length
// into ErrOutOfMemory. Exhausting the heap is fatal and cannot be reported.
func allocate(capacity int) (buf []Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Wrapf(ErrOutOfMemory, "allocating %d slots: %v", capacity, r)
		}
	}()
	return make([]Item, capacity), nil
}

func (r *RingQueue) live() bool {
	return r != nil && r.buf != nil
}

// IsFull reports whether the queue holds capacity items.
// An uninitialized queue is never full.
func (r *RingQueue) IsFull() bool {
	if !r.live() {
		return false
	}
	return r.size == r.capacity
}

// IsEmpty reports whether the queue holds no items.
// An uninitialized queue is always empty.
func (r *RingQueue) IsEmpty() bool {
	if !r.live() {
		return true
	}
	return r.size == 0
}

// Enqueue adds an item at the rear of the queue.
// Returns ErrFull if the queue is full; the item is not stored.
func (r *RingQueue) Enqueue(v Item) error {
	if !r.live() {
		return ErrNotInitialized
	}
	if r.size == r.capacity {
		return ErrFull
	}

	r.rear = (r.rear + 1) % r.capacity
	r.buf[r.rear] = v
	r.size++

	return nil
}

// Dequeue removes and returns the item at the front of the queue.
// Returns ErrEmpty if the queue is empty.
//
// The vacated slot keeps its old value until it is overwritten.
func (r *RingQueue) Dequeue() (Item, error) {
	if !r.live() {
		return 0, ErrNotInitialized
	}
	if r.size == 0 {
		return 0, ErrEmpty
	}

	v := r.buf[r.front]
	r.front = (r.front + 1) % r.capacity
	r.size--

	return v, nil
}

// PeekFront returns the oldest item without removing it.
func (r *RingQueue) PeekFront() (Item, error) {
	if !r.live() {
		return 0, ErrNotInitialized
	}
	if r.size == 0 {
		return 0, ErrEmpty
	}
	return r.buf[r.front], nil
}

// PeekRear returns the newest item without removing it.
func (r *RingQueue) PeekRear() (Item, error) {
	if !r.live() {
		return 0, ErrNotInitialized
	}
	if r.size == 0 {
		return 0, ErrEmpty
	}
	return r.buf[r.rear], nil
}

// Destroy releases the buffer and zeroes every field.
//
// After Destroy the queue is uninitialized; calling Destroy again returns
// ErrNotInitialized, as it does for a nil queue.
func (r *RingQueue) Destroy() error {
	if !r.live() {
		return ErrNotInitialized
	}
	*r = RingQueue{}
	return nil
}

// Push adds an item to the queue.
// Returns false if the queue is full or uninitialized.
func (r *RingQueue) Push(v Item) bool {
	return r.Enqueue(v) == nil
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty or uninitialized.
func (r *RingQueue) Pop() (Item, bool) {
	v, err := r.Dequeue()
	return v, err == nil
}

// Len returns the current number of items in the queue.
func (r *RingQueue) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Cap returns the capacity of the queue, 0 once destroyed.
func (r *RingQueue) Cap() int {
	if r == nil {
		return 0
	}
	return r.capacity
}

// Front returns the buffer index of the oldest item.
func (r *RingQueue) Front() int {
	if r == nil {
		return 0
	}
	return r.front
}

// Rear returns the buffer index of the newest item.
func (r *RingQueue) Rear() int {
	if r == nil {
		return 0
	}
	return r.rear
}

// Slots returns a copy of the raw buffer in storage order, not FIFO order.
// Slots never written hold zero. Returns nil for an uninitialized queue.
func (r *RingQueue) Slots() []Item {
	if !r.live() {
		return nil
	}
	out := make([]Item, len(r.buf))
	copy(out, r.buf)
	return out
}

// Display writes the raw buffer to w in storage order, each slot followed
// by a tab, then a newline. It writes nothing for an uninitialized queue.
func (r *RingQueue) Display(w io.Writer) error {
	if !r.live() {
		return nil
	}
	_, err := io.WriteString(w, r.String()+"\n")
	return err
}

func (r *RingQueue) String() string {
	if !r.live() {
		return ""
	}
	var sb strings.Builder
	for _, v := range r.buf {
		fmt.Fprintf(&sb, "%d\t", v)
	}
	return sb.String()
}
