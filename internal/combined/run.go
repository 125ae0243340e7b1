package combined

import (
	"time"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// ErrNoProgress is returned when a target accepts no items at all.
var ErrNoProgress = errors.New("combined: target accepted no items")

// Result is the outcome of one fill/drain run.
type Result struct {
	Name     string
	Cycles   int
	Capacity int
	Ops      int // successful pushes plus successful pops
	Duration time.Duration
}

// NsPerOp returns the mean cost of a single push or pop.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Ops)
}

// MOpsPerSec returns throughput in millions of operations per second.
func (r Result) MOpsPerSec() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return 1000 / ns
}

// FillDrain pushes up to capacity items into t and pops them all back out,
// cycles times. A push that fails ends the fill phase early.
func FillDrain(name string, t Target, capacity, cycles int) (Result, error) {
	res := Result{Name: name, Cycles: cycles, Capacity: capacity}

	start := time.Now()
	for c := 0; c < cycles; c++ {
		pushed := 0
		for pushed < capacity && t.Push(queue.Item(pushed)) {
			pushed++
		}
		if pushed == 0 {
			return res, errors.Wrapf(ErrNoProgress, "%s cycle %d", name, c)
		}
		res.Ops += pushed

		for {
			if _, ok := t.Pop(); !ok {
				break
			}
			res.Ops++
		}
	}
	res.Duration = time.Since(start)

	return res, nil
}

// Run builds each named target and runs FillDrain against it.
func Run(names []string, capacity, cycles int) ([]Result, error) {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		t, err := NewTarget(name, capacity)
		if err != nil {
			return results, err
		}
		res, err := FillDrain(name, t, capacity, cycles)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
