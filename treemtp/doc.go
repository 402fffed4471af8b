// Package treemtp implements the tree-DP meta-algorithm (MTP): it threads
// chaindp's single-chain DP through a service graph's branching skeleton,
// solving each maximal out-chain in isolation and combining the per-branch
// optima while tracking how many cuts have been spent on the critical
// path so the latency budget is respected globally.
//
// Algorithms & Complexity
//
// Partition walks the graph post-order from core.PLATFORM, visiting only
// nodes whose predecessor branches (or the root itself) — the start of
// each out-chain. At each such node it enumerates candidate (head, tail,
// branches) splits of the out-chains reachable from it (subchains), and
// dispatches one of four cases depending on whether the candidate
// intersects the critical path and where: disjoint, the whole critical
// path, its tail segment, or a straddling branch requiring a forced cut.
// Each case calls into a chaindp.Partitioner — supplied by the caller, not
// hard-coded — so the meta algorithm can be exercised against either
// chaindp.Partition or chaindp.PartitionVectorized.
//
// Errors
//
// Infeasibility is reported through Result.Feasible, never as a Go error.
// An unreachable cp_end returns ErrUnreachableCPEnd; an error from the
// supplied chaindp.Partitioner is returned as is.
package treemtp
