package treemtp

import "github.com/svcgraph/partitioner/core"

// candidate is one extracted out-chain at a branching node: Head is the
// portion that continues toward cpEnd (possibly all of it, possibly
// none), Tail is the remainder, and Branches are the sibling subtrees at
// every branching point visited along the way that were NOT chosen as the
// continuation.
type candidate struct {
	Head, Tail []int
	Branches   []int
}

// subchains enumerates every out-chain candidate reachable from start,
// bisected at the last node from which cpEnd is still reachable.
//
// The Python reference generalizes this over an arbitrary "leaf" target
// that may be nil (meaning "no target, just enumerate all subchains");
// every call site in the tree meta-algorithm passes the fixed critical
// path tail cpEnd, so the leaf-reachability test collapses to "is this
// node an ancestor of cpEnd" — exactly membership in cpath, the
// precomputed root-to-cpEnd path. That lets this port skip the
// leaf-reachability label machinery entirely.
func subchains(g *core.ServiceGraph, start int, cpath map[int]bool) []candidate {
	chain := []int{start}
	for !g.IsBranching(chain[len(chain)-1]) && !g.IsLeaf(chain[len(chain)-1]) {
		chain = append(chain, g.Successors(chain[len(chain)-1])[0])
	}
	tail := chain[len(chain)-1]
	children := g.Successors(tail)
	if len(children) == 0 {
		return []candidate{{Head: chain, Tail: nil, Branches: nil}}
	}

	var out []candidate
	for _, c := range children {
		var nbr []int
		for _, other := range children {
			if other != c {
				nbr = append(nbr, other)
			}
		}
		for _, sub := range subchains(g, c, cpath) {
			branches := append(append([]int{}, nbr...), sub.Branches...)
			if cpath[sub.Head[0]] {
				out = append(out, candidate{
					Head:     append(append([]int{}, chain...), sub.Head...),
					Tail:     sub.Tail,
					Branches: branches,
				})
			} else {
				merged := append(append([]int{}, sub.Head...), sub.Tail...)
				out = append(out, candidate{Head: chain, Tail: merged, Branches: branches})
			}
		}
	}
	return out
}
