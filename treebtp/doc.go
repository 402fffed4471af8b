// Package treebtp implements the bottom-up recursive tree DP (BTP): it
// partitions a service graph directly, without reducing to chain DP,
// walking the tree post-order and maintaining at every node a queue of
// candidate subcases, cheapest first, indexed by how many cuts have been
// spent on the critical path so far.
//
// Algorithms & Complexity
//
// Each node's queue holds candidate head blocks (blocks whose barrier is
// that node) that pass a feasibility filter (memory <= M, CPU <= N);
// dominated candidates are not evicted. Merging a child's head block into its parent (when the connecting
// edge is not cut) recomputes that block's cost/memory/CPU incrementally
// from the child's cached values in O(1), mirroring chaindp's
// block.Accumulator but walking parent-to-child instead of a chain's
// b-to-w. After a child's queue is merged upward it is cleared down to
// its single best entry (table.clear) — the other candidates have
// already served their purpose of producing every useful merge outcome.
//
// Errors
//
// Infeasibility is reported through Result.Feasible, never as a Go error.
package treebtp
