package mcf

import (
	"github.com/netsimplex/mcflow/core"
)

// GraphView is the minimal read-only directed-graph contract the
// canonicalizer needs: node and arc counts, and the endpoints of each
// arc by dense 0-based index. Everything downstream of canonicalization
// works on plain int slices, never on GraphView again.
type GraphView interface {
	NumNodes() int
	NumArcs() int
	ArcSrc(a int) int
	ArcDst(a int) int
}

// ArcEndpoints is a convenience literal for building a DenseGraph inline.
type ArcEndpoints struct {
	Src, Dst int
}

// DenseGraph is the simplest GraphView: parallel src/dst slices indexed
// densely by arc, exactly the representation the spec's data model
// describes (src[a], dst[a] arrays).
type DenseGraph struct {
	numNodes int
	src, dst []int
}

// NewDenseGraph builds a DenseGraph from n nodes and a list of arc
// endpoints. Endpoints are not validated here; NetworkSimplex,
// CostScaling and Validate check them against NumNodes.
func NewDenseGraph(n int, arcs []ArcEndpoints) *DenseGraph {
	g := &DenseGraph{
		numNodes: n,
		src:      make([]int, len(arcs)),
		dst:      make([]int, len(arcs)),
	}
	for i, a := range arcs {
		g.src[i] = a.Src
		g.dst[i] = a.Dst
	}
	return g
}

func (g *DenseGraph) NumNodes() int    { return g.numNodes }
func (g *DenseGraph) NumArcs() int     { return len(g.src) }
func (g *DenseGraph) ArcSrc(a int) int { return g.src[a] }
func (g *DenseGraph) ArcDst(a int) int { return g.dst[a] }

// FromCoreGraph adapts a string-keyed *core.Graph into a dense GraphView,
// plus the index<->ID tables needed to translate Problem input/output
// back to vertex IDs.
//
// Vertices are indexed in the same sorted order core.Graph.Vertices()
// already returns internally (core/methods_vertices.go), so a given
// *core.Graph always yields the same node indices across calls — the
// determinism FromCoreGraph promises callers relying on P7.
//
// Edge weights are not interpreted as cost, capacity, or anything else;
// FromCoreGraph only extracts topology. Callers build Lo/Hi/Cost/Supply
// themselves, keyed by the returned index map.
func FromCoreGraph(g *core.Graph) (graph *DenseGraph, index map[string]int, ids []string, err error) {
	if g == nil {
		return nil, nil, nil, wrap("FromCoreGraph", ErrNilGraph)
	}

	ids = g.Vertices() // already sorted ascending by ID
	index = make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	edges := g.Edges() // sorted by Edge.ID ascending (deterministic)
	arcs := make([]ArcEndpoints, 0, len(edges))
	for _, e := range edges {
		arcs = append(arcs, ArcEndpoints{Src: index[e.From], Dst: index[e.To]})
		if !e.Directed && e.From != e.To {
			// Mixed/undirected edges contribute a reverse arc so the
			// dense view stays a plain directed-arc list throughout.
			arcs = append(arcs, ArcEndpoints{Src: index[e.To], Dst: index[e.From]})
		}
	}
	return NewDenseGraph(len(ids), arcs), index, ids, nil
}
