package graphgen

import "github.com/svcgraph/partitioner/core"

// Range is an inclusive [Min,Max] sampling bound.
type Range struct{ Min, Max int64 }

func (r Range) sample(rng interface{ Int63n(int64) int64 }) int64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}

// Options configures a randomized service graph.
type Options struct {
	// Nodes is the number of non-platform nodes to generate (>=1).
	Nodes int
	// BranchProb is the probability, in [0,1], that a node gains a second
	// child instead of continuing as a chain. 0 always produces a chain.
	BranchProb float64
	Runtime    Range
	Memory     Range
	Rate       Range
	// Seed selects the deterministic RNG stream. 0 uses the default seed.
	Seed int64
}

// Generate builds a random rooted service tree under Options: node 1 is
// attached to PLATFORM, and each subsequent node is attached under a node
// chosen uniformly among those still eligible, with BranchProb governing how often a
// parent is allowed to acquire more than one child (a pure chain results
// when BranchProb is 0).
func Generate(opt Options) (*core.ServiceGraph, error) {
	if opt.Nodes < 1 {
		opt.Nodes = 1
	}
	topoRNG := streamRNG(opt.Seed, 1)
	runtimeRNG := streamRNG(opt.Seed, 2)
	memoryRNG := streamRNG(opt.Seed, 3)
	rateRNG := streamRNG(opt.Seed, 4)

	g := core.NewServiceGraph()
	if err := g.AddNode(1, opt.Runtime.sample(runtimeRNG), opt.Memory.sample(memoryRNG)); err != nil {
		return nil, err
	}
	if err := g.AddEdge(core.PLATFORM, 1, opt.Rate.sample(rateRNG)); err != nil {
		return nil, err
	}

	// attachable holds every node still eligible to receive another child:
	// every node starts eligible, and loses eligibility once BranchProb
	// fails to re-admit it after it gains a child (keeping most graphs
	// chain-shaped unless BranchProb pushes toward branching).
	attachable := []int{1}
	for id := 2; id <= opt.Nodes; id++ {
		parent := attachable[topoRNG.Intn(len(attachable))]
		if err := g.AddNode(id, opt.Runtime.sample(runtimeRNG), opt.Memory.sample(memoryRNG)); err != nil {
			return nil, err
		}
		if err := g.AddEdge(parent, id, opt.Rate.sample(rateRNG)); err != nil {
			return nil, err
		}
		attachable = append(attachable, id)
		if topoRNG.Float64() >= opt.BranchProb {
			attachable = removeFirst(attachable, parent)
		}
	}
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}

func removeFirst(xs []int, v int) []int {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}
