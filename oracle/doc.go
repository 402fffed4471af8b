// Package oracle implements exhaustive chain-cut and tree-cut enumerators
// used only to validate the DP engines in chaindp, treemtp, and treebtp —
// never as a production partitioning path. Both enumerators are brute
// force (bitmask powersets over cut positions/edges) and are intended for
// small inputs exercised in tests, not production graphs.
package oracle
