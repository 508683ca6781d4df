package config

import "time"

const (
	// DefaultMaxDepth is the default bound on menu-item nesting levels a
	// tree walk will descend. Zero means unbounded.
	DefaultMaxDepth = 0

	// DefaultParallelThreshold is the minimum sibling count at which the
	// tree builder forks a worker per child instead of walking sequentially.
	DefaultParallelThreshold = 2

	// DefaultMaxParallelDepth bounds how many nesting levels below the root
	// fork new goroutines; deeper levels walk sequentially within whichever
	// top-level worker reached them.
	DefaultMaxParallelDepth = 1

	// DefaultChildrenCapacity is the slice capacity a MenuNode's children
	// are pre-allocated with, sized for a typical top-level menu.
	DefaultChildrenCapacity = 8

	// DefaultSearchLimit is the default number of candidates `search`
	// surfaces when --limit is not given.
	DefaultSearchLimit = 10
)

// ToggleBackoff is the fixed exponential backoff schedule the Verifier
// re-reads a toggled item's checked state against, delays of 20ms, 40ms,
// 80ms, 160ms, 320ms, summing to ~620ms.
var ToggleBackoff = []time.Duration{
	20 * time.Millisecond,
	40 * time.Millisecond,
	80 * time.Millisecond,
	160 * time.Millisecond,
	320 * time.Millisecond,
}
