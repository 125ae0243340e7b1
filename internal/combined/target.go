package combined

import (
	"sort"

	"github.com/pkg/errors"
	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// Target names accepted by NewTarget.
const (
	TargetRing    = "ring"
	TargetChannel = "channel"
	TargetLFR     = "lfr"
)

// ErrUnknownTarget is returned by NewTarget for an unrecognised name.
var ErrUnknownTarget = errors.New("combined: unknown target")

// Target is the minimal bool-style queue surface every implementation
// under comparison provides.
type Target interface {
	Push(queue.Item) bool
	Pop() (queue.Item, bool)
}

var constructors = map[string]func(capacity int) (Target, error){
	TargetRing: func(capacity int) (Target, error) {
		return queue.New(capacity)
	},
	TargetChannel: func(capacity int) (Target, error) {
		return queue.NewChannel(capacity)
	},
	TargetLFR: newShardedRing,
}

// Targets returns the known target names in sorted order.
func Targets() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTarget builds the named target with the given capacity.
func NewTarget(name string, capacity int) (Target, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTarget, "%q", name)
	}
	t, err := ctor(capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "target %s", name)
	}
	return t, nil
}

// shardedRing adapts a single-shard go-lock-free-ring to Target.
// Only producer 0 ever writes.
type shardedRing struct {
	r *ring.ShardedRing
}

func newShardedRing(capacity int) (Target, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(queue.ErrInvalidArgument, "capacity %d", capacity)
	}
	r, err := ring.NewShardedRing(uint64(capacity), 1)
	if err != nil {
		return nil, errors.Wrap(err, "sharded ring")
	}
	return shardedRing{r: r}, nil
}

func (s shardedRing) Push(v queue.Item) bool {
	return s.r.Write(0, v)
}

func (s shardedRing) Pop() (queue.Item, bool) {
	v, ok := s.r.TryRead()
	if !ok {
		return 0, false
	}
	item, _ := v.(queue.Item)
	return item, true
}
