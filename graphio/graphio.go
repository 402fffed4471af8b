package graphio

import (
	"errors"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/svcgraph/partitioner/core"
)

// ErrEmptyDocument is returned by Decode when the YAML document has no nodes.
var ErrEmptyDocument = errors.New("graphio: document has no nodes")

// doc is the on-disk YAML shape: a flat node list plus a flat edge list,
// deliberately not the nested adjacency-map shape core.ServiceGraph keeps
// internally, so hand-written fixtures stay readable.
type doc struct {
	Nodes []nodeDoc `yaml:"nodes"`
	Edges []edgeDoc `yaml:"edges"`
}

type nodeDoc struct {
	ID      int   `yaml:"id"`
	Runtime int64 `yaml:"runtime"`
	Memory  int64 `yaml:"memory"`
}

type edgeDoc struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Rate int64   `yaml:"rate"`
	Data float64 `yaml:"data,omitempty"`
}

// Encode writes g to w as a YAML document.
func Encode(w io.Writer, g *core.ServiceGraph) error {
	var d doc
	for _, id := range g.Nodes() {
		d.Nodes = append(d.Nodes, nodeDoc{ID: id, Runtime: g.Runtime(id), Memory: g.Memory(id)})
	}
	root := g.Root()
	if rate, ok := g.Rate(core.PLATFORM, root); ok {
		d.Edges = append(d.Edges, edgeDoc{From: core.PLATFORM, To: root, Rate: rate})
	}
	for _, id := range g.Nodes() {
		for _, c := range g.Successors(id) {
			rate, _ := g.Rate(id, c)
			d.Edges = append(d.Edges, edgeDoc{From: id, To: c, Rate: rate, Data: g.Data(id, c)})
		}
	}
	sort.Slice(d.Edges, func(i, j int) bool {
		if d.Edges[i].From != d.Edges[j].From {
			return d.Edges[i].From < d.Edges[j].From
		}
		return d.Edges[i].To < d.Edges[j].To
	})
	return yaml.NewEncoder(w).Encode(d)
}

// Decode reads a YAML document from r and builds a finalized ServiceGraph.
func Decode(r io.Reader) (*core.ServiceGraph, error) {
	var d doc
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	if len(d.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}

	g := core.NewServiceGraph()
	for _, n := range d.Nodes {
		if err := g.AddNode(n.ID, n.Runtime, n.Memory); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		opts := []core.EdgeOption{}
		if e.Data != 0 {
			opts = append(opts, core.WithData(e.Data))
		}
		if err := g.AddEdge(e.From, e.To, e.Rate, opts...); err != nil {
			return nil, err
		}
	}
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}
