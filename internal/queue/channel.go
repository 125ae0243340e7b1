package queue

import (
	"github.com/pkg/errors"
)

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Enqueue/Dequeue performs
// a non-blocking channel operation via select with default.
type ChannelQueue struct {
	ch chan Item
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel(capacity int) (*ChannelQueue, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d", capacity)
	}
	return &ChannelQueue{
		ch: make(chan Item, capacity),
	}, nil
}

// Enqueue adds an item to the queue.
// Returns ErrFull if the queue is full (non-blocking).
func (q *ChannelQueue) Enqueue(v Item) error {
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrFull
	}
}

// Dequeue removes and returns an item from the queue.
// Returns ErrEmpty if the queue is empty (non-blocking).
func (q *ChannelQueue) Dequeue() (Item, error) {
	select {
	case v := <-q.ch:
		return v, nil
	default:
		return 0, ErrEmpty
	}
}

// Push adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue) Push(v Item) bool {
	return q.Enqueue(v) == nil
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue) Pop() (Item, bool) {
	v, err := q.Dequeue()
	return v, err == nil
}

func (q *ChannelQueue) IsFull() bool {
	return len(q.ch) == cap(q.ch)
}

func (q *ChannelQueue) IsEmpty() bool {
	return len(q.ch) == 0
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue) Cap() int {
	return cap(q.ch)
}
