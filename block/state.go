package block

// State is a chain-DP cell: the best known subcase ending in a block
// headed at Barr, with its accumulated Cost and Lat. Feasible is false for
// a cell that was never written, replacing the Python reference's use of
// math.Inf as an infeasibility sentinel with an explicit tag — chaindp,
// treemtp, and treebtp all compare Feasible rather than testing a cost
// against a sentinel value.
type State struct {
	Barr     int
	Cost     int64
	Lat      int64
	Feasible bool
}

// Infeasible is the zero-cost representation of an unreachable subcase.
var Infeasible = State{}
