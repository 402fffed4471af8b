// Package simulate runs a service graph's nodes over a small worker
// pool, one goroutine per node, to approximate wall-clock behavior under
// concurrent execution — never part of the deterministic DP core, which
// stays single-threaded by design.
package simulate
