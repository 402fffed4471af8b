package core

import "sort"

// EdgeOption configures an Edge's optional attributes when added.
type EdgeOption func(*Edge)

// WithData attaches an auxiliary payload-size value to an edge, consumed
// only by the clustering heuristics in package cluster. Default is 1 when
// omitted.
func WithData(data float64) EdgeOption {
	return func(e *Edge) { e.Data = data }
}

// AddNode registers a non-platform node with its runtime and memory
// attributes. Both must be positive. Returns ErrDuplicateNode,
// ErrNonPositiveRuntime, ErrNonPositiveMemory, or ErrAlreadyFinalized.
//
// Complexity: O(1).
func (g *ServiceGraph) AddNode(id int, runtime, memory int64) error {
	if g.finalized {
		return ErrAlreadyFinalized
	}
	if id == PLATFORM {
		return ErrDuplicateNode
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}
	if runtime <= 0 {
		return ErrNonPositiveRuntime
	}
	if memory <= 0 {
		return ErrNonPositiveMemory
	}
	g.nodes[id] = Node{ID: id, Runtime: runtime, Memory: memory}
	return nil
}

// AddEdge registers a directed edge from -> to with a positive invocation
// rate. from may be PLATFORM; to must have been added via AddNode and must
// not already have a predecessor (each non-root node has exactly one).
// Returns ErrNonPositiveRate, ErrUnknownNode, ErrDuplicateEdge, or
// ErrAlreadyFinalized.
//
// Complexity: O(1).
func (g *ServiceGraph) AddEdge(from, to int, rate int64, opts ...EdgeOption) error {
	if g.finalized {
		return ErrAlreadyFinalized
	}
	if rate <= 0 {
		return ErrNonPositiveRate
	}
	if from != PLATFORM {
		if _, ok := g.nodes[from]; !ok {
			return ErrUnknownNode
		}
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownNode
	}
	if _, exists := g.parent[to]; exists {
		return ErrDuplicateEdge
	}
	e := Edge{From: from, To: to, Rate: rate, Data: 1}
	for _, opt := range opts {
		opt(&e)
	}
	g.edges[[2]int{from, to}] = e
	g.parent[to] = from
	g.children[from] = append(g.children[from], to)
	return nil
}

// Finalize validates the tree invariants (exactly one PLATFORM root, acyclic,
// every non-root node has exactly one predecessor) and sorts every adjacency
// list, fixing the canonical traversal order. Once Finalize succeeds, the
// graph is read-only: AddNode/AddEdge return ErrAlreadyFinalized.
//
// Complexity: O(V + E).
func (g *ServiceGraph) Finalize() error {
	if g.finalized {
		return ErrAlreadyFinalized
	}
	roots := g.children[PLATFORM]
	if len(roots) == 0 {
		return ErrNoRoot
	}
	if len(roots) > 1 {
		return ErrMultipleRoots
	}
	for id := range g.nodes {
		if id != roots[0] {
			if _, ok := g.parent[id]; !ok {
				return ErrOrphanNode
			}
		}
	}
	if err := g.detectCycle(roots[0]); err != nil {
		return err
	}
	for p, kids := range g.children {
		sort.Ints(kids)
		g.children[p] = kids
	}
	g.root = roots[0]
	g.finalized = true
	return nil
}

// detectCycle walks the tree from root and fails if any node is revisited.
func (g *ServiceGraph) detectCycle(root int) error {
	visited := make(map[int]bool, len(g.nodes))
	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			return ErrCycle
		}
		visited[n] = true
		stack = append(stack, g.children[n]...)
	}
	if len(visited) != len(g.nodes) {
		return ErrCycle
	}
	return nil
}
