// Package chaindp implements the single-chain partitioning DP (SCP): the
// minimum-cost assignment of barrier nodes on a linear chain subject to
// per-block memory and CPU bounds and a latency budget on a designated
// subchain.
//
// Algorithms & Complexity
//
// Partition fills an n x n cell table bottom-up, w ascending then k
// ascending then b descending, in O(n^3) time and O(n^2) space; the inner
// b loop uses a block.Accumulator, reset to [w,w] for every k, to update
// memory, cost and CPU in O(1) per step (CPU via a running suffix max);
// latency is re-summed over the block's overlap with the latency window
// on each step (see block's doc). The loop breaks early in two places:
// the b loop stops the first time a larger block violates memory or CPU
// (block size grows monotonically as b decreases), and the k loop for a
// given w stops once latency makes no further k feasible.
//
// PartitionVectorized produces bit-identical output by reading block
// memory and runtime sums from prefix-sum arrays instead of the
// accumulator, still cell by cell; it exists purely as an alternate code
// path to exercise against Partition in tests, not a distinct algorithm.
//
// Errors
//
// Infeasible inputs are reported through Result.Feasible and Result.Reason,
// never as a Go error: ReasonLatencyBound (L below the subchain's runtime
// floor) and ReasonRegionEmpty (the memory/CPU/latency region admits no
// valid cut count). Ill-formed inputs (mismatched vector lengths, a
// non-positive rate) return ErrInvalidInput.
package chaindp
