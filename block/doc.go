// Package block computes the four scalar quantities the DP engines
// optimize over — memory, billing cost, critical-path latency, and CPU
// demand of a contiguous block [b..w] on a chain of nodes.
//
// Algorithms & Complexity
//
// Memory and cost are O(w-b) from scratch, O(1) incremental (prepending a
// node to the left only changes a running sum). CPU demand is O(w-b) from
// scratch via a reverse running-max scan and O(1) incremental: prepending
// a node adds one new suffix, whose max is the old running max or the new
// rate. Latency is O(min(w,end)-max(b,start)); Accumulator.Prepend
// re-sums it over the overlap on every step rather than updating it in
// O(1).
//
// Every function here is a pure, allocation-free read over caller-owned
// slices: no package-level memoization. Callers that want the Python
// reference's per-call lru_cache behavior (bounded to one DP invocation)
// wrap these in their own local cache, matching spec.md's "memoization
// scoped per DP invocation, never global" rule.
package block
