// Package combined runs the same fill/drain workload across the queue
// implementations so they can be compared side by side.
//
// Three targets are available:
//   - ring: queue.RingQueue, the fixed-capacity circular buffer
//   - channel: queue.ChannelQueue, a buffered channel baseline
//   - lfr: go-lock-free-ring ShardedRing with a single shard
//
// Each cycle fills the target up to capacity and drains it again, so the
// ring indices wrap once per cycle. All targets are driven from a single
// goroutine; none of this measures contention.
package combined
