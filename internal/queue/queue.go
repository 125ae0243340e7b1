// Package queue provides fixed-capacity FIFO queues of uint16 values.
//
// This package offers two implementations of the Queue interface:
//   - RingQueue: circular buffer allocated once at construction
//   - ChannelQueue: standard library approach using a buffered channel
//
// # RingQueue Ownership (IMPORTANT)
//
// RingQueue is NOT safe for concurrent use. It assumes a single owner that
// performs every call; callers that share a queue between goroutines must
// provide their own synchronization.
//
// Full and empty are decided by an explicit size counter, so every slot of
// the buffer is usable and front == rear is never ambiguous.
//
// A nil *RingQueue, or one that has been destroyed, is uninitialized:
// IsEmpty reports true, IsFull reports false, and every other operation
// returns ErrNotInitialized.
package queue

// Item is the element type stored by the queues.
type Item = uint16

// Queue is a bounded, non-blocking FIFO queue.
//
// Enqueue returns ErrFull when the queue is at capacity and Dequeue returns
// ErrEmpty when nothing is queued. Neither mutates state on failure.
type Queue interface {
	// Enqueue adds an item at the rear.
	Enqueue(Item) error

	// Dequeue removes and returns the item at the front.
	Dequeue() (Item, error)

	IsFull() bool
	IsEmpty() bool

	// Len returns the number of queued items.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}
