package queue_test

import (
	"testing"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkItem queue.Item
var sinkErr error

func newRing(b *testing.B, capacity int) *queue.RingQueue {
	b.Helper()
	q, err := queue.New(capacity)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

func newChannel(b *testing.B, capacity int) *queue.ChannelQueue {
	b.Helper()
	q, err := queue.NewChannel(capacity)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_RingQueue_EnqueueDequeue_Direct(b *testing.B) {
	q := newRing(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	var err error
	for i := 0; i < b.N; i++ {
		q.Enqueue(queue.Item(i))
		val, err = q.Dequeue()
	}
	sinkItem = val
	sinkErr = err
}

func BenchmarkQueue_Channel_EnqueueDequeue_Direct(b *testing.B) {
	q := newChannel(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	var err error
	for i := 0; i < b.N; i++ {
		q.Enqueue(queue.Item(i))
		val, err = q.Dequeue()
	}
	sinkItem = val
	sinkErr = err
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_RingQueue_EnqueueDequeue_Interface(b *testing.B) {
	var q queue.Queue = newRing(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	var err error
	for i := 0; i < b.N; i++ {
		q.Enqueue(queue.Item(i))
		val, err = q.Dequeue()
	}
	sinkItem = val
	sinkErr = err
}

func BenchmarkQueue_Channel_EnqueueDequeue_Interface(b *testing.B) {
	var q queue.Queue = newChannel(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	var err error
	for i := 0; i < b.N; i++ {
		q.Enqueue(queue.Item(i))
		val, err = q.Dequeue()
	}
	sinkItem = val
	sinkErr = err
}

// Rejection paths must not allocate

func BenchmarkQueue_RingQueue_EnqueueFull(b *testing.B) {
	q := newRing(b, 64)
	for !q.IsFull() {
		q.Enqueue(1)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var err error
	for i := 0; i < b.N; i++ {
		err = q.Enqueue(queue.Item(i))
	}
	sinkErr = err
}

func BenchmarkQueue_RingQueue_DequeueEmpty(b *testing.B) {
	q := newRing(b, 64)
	b.ReportAllocs()
	b.ResetTimer()

	var err error
	for i := 0; i < b.N; i++ {
		_, err = q.Dequeue()
	}
	sinkErr = err
}

// Fill then drain the whole buffer, exercising wrap-around

func BenchmarkQueue_RingQueue_FillDrain_Size64(b *testing.B) {
	q := newRing(b, 64)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	for i := 0; i < b.N; i++ {
		for j := 0; j < 64; j++ {
			q.Enqueue(queue.Item(j))
		}
		for j := 0; j < 64; j++ {
			val, _ = q.Dequeue()
		}
	}
	sinkItem = val
}

func BenchmarkQueue_Channel_FillDrain_Size64(b *testing.B) {
	q := newChannel(b, 64)
	b.ReportAllocs()
	b.ResetTimer()

	var val queue.Item
	for i := 0; i < b.N; i++ {
		for j := 0; j < 64; j++ {
			q.Enqueue(queue.Item(j))
		}
		for j := 0; j < 64; j++ {
			val, _ = q.Dequeue()
		}
	}
	sinkItem = val
}
