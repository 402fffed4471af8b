package core

import "sort"

// Root returns the real root node (PLATFORM's sole successor).
// Requires a finalized graph.
func (g *ServiceGraph) Root() int { return g.root }

// Len reports the number of non-platform nodes.
func (g *ServiceGraph) Len() int { return len(g.nodes) }

// Node returns the attributes of id. The second return value is false if id
// is unknown.
func (g *ServiceGraph) Node(id int) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Runtime returns the per-invocation runtime of id, or 0 if unknown.
func (g *ServiceGraph) Runtime(id int) int64 { return g.nodes[id].Runtime }

// Memory returns the memory footprint of id, or 0 if unknown.
func (g *ServiceGraph) Memory(id int) int64 { return g.nodes[id].Memory }

// Rate returns the invocation rate on edge from->to. The second return
// value is false if no such edge exists.
func (g *ServiceGraph) Rate(from, to int) (int64, bool) {
	e, ok := g.edges[[2]int{from, to}]
	return e.Rate, ok
}

// Data returns the auxiliary payload size on edge from->to, defaulting to 1.
func (g *ServiceGraph) Data(from, to int) float64 {
	e, ok := g.edges[[2]int{from, to}]
	if !ok {
		return 1
	}
	return e.Data
}

// Predecessor returns the unique predecessor of id. For the root it
// returns (PLATFORM, true); ok is false for unknown ids and for PLATFORM
// itself.
func (g *ServiceGraph) Predecessor(id int) (int, bool) {
	p, ok := g.parent[id]
	return p, ok
}

// Successors returns the sorted child node IDs of id (empty for leaves).
// A nil slice is never shared with callers; mutating the result is safe.
func (g *ServiceGraph) Successors(id int) []int {
	kids := g.children[id]
	out := make([]int, len(kids))
	copy(out, kids)
	return out
}

// IsLeaf reports whether id has no successors.
func (g *ServiceGraph) IsLeaf(id int) bool { return len(g.children[id]) == 0 }

// IsBranching reports whether id has more than one successor.
func (g *ServiceGraph) IsBranching(id int) bool { return len(g.children[id]) > 1 }

// Nodes returns all non-platform node IDs in ascending (canonical) order.
func (g *ServiceGraph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// PostOrderPair is one step of a post-order walk: Node's predecessor and
// Node itself, in the order the walk finished exploring Node's subtree.
type PostOrderPair struct {
	Pred int
	Node int
}

// PostOrder walks the tree rooted at PLATFORM in post-order, yielding
// (predecessor, node) pairs. The last pair is always (PLATFORM, Root()).
// It walks an explicit stack instead of recursing, so depth is bounded
// only by available memory.
//
// Complexity: O(V).
func (g *ServiceGraph) PostOrder() []PostOrderPair {
	type frame struct {
		node     int
		childIdx int
	}
	out := make([]PostOrderPair, 0, len(g.nodes))
	predOf := map[int]int{g.root: PLATFORM}
	stack := []frame{{node: g.root, childIdx: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := g.children[top.node]
		if top.childIdx < len(kids) {
			c := kids[top.childIdx]
			top.childIdx++
			predOf[c] = top.node
			stack = append(stack, frame{node: c, childIdx: 0})
			continue
		}
		out = append(out, PostOrderPair{Pred: predOf[top.node], Node: top.node})
		stack = stack[:len(stack)-1]
	}
	return out
}

// PathTo returns the set of nodes on the unique path from Root() to end
// (inclusive of both endpoints), by walking predecessors backward from end.
// Returns nil if end is unreachable from the root (not a descendant).
//
// Complexity: O(depth).
func (g *ServiceGraph) PathTo(end int) []int {
	var rev []int
	cur := end
	for {
		rev = append(rev, cur)
		if cur == g.root {
			break
		}
		p, ok := g.parent[cur]
		if !ok {
			return nil
		}
		cur = p
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// Chain extracts the runtime/memory/rate attribute vectors for the simple
// path nodes[0]..nodes[len-1], which must form a contiguous parent-child
// chain (nodes[i+1] a child of nodes[i]) with pred as the predecessor of
// nodes[0]. This is the bridge between the tree data model and the
// slice-based chain DP in package chaindp.
//
// Complexity: O(len(nodes)).
func (g *ServiceGraph) Chain(pred int, nodes []int) (runtime, memory, rate []int64) {
	runtime = make([]int64, len(nodes))
	memory = make([]int64, len(nodes))
	rate = make([]int64, len(nodes))
	prev := pred
	for i, n := range nodes {
		runtime[i] = g.Runtime(n)
		memory[i] = g.Memory(n)
		r, _ := g.Rate(prev, n)
		rate[i] = r
		prev = n
	}
	return
}
