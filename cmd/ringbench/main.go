// Command ringbench times fill/drain cycles of the queue implementations.
//
// Usage:
//
//	go run ./cmd/ringbench -n 100000 -c 1024 --impl all
//
// Every flag can also be set from the environment with the RINGBENCH_
// prefix, e.g. RINGBENCH_CAPACITY=64.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
