// Package cluster implements the auxiliary, unconstrained clustering
// heuristics spec.md §3 alludes to when it says a edge's optional
// data(u→v) "is consumed by an auxiliary clustering heuristic" — these
// are not part of the DP core (§4.1-4.5) and ignore the memory, CPU, and
// latency bounds entirely; they exist to produce a cheap starting
// partition or a point of comparison for it.
//
// Grounded on original_source/misc/algs.py's
// min_edge_weight_tree_partitioning and min_split_tree_clustering.
package cluster
