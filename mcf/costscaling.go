package mcf

import (
	"math"
	"strconv"

	"github.com/netsimplex/mcflow/core"
	"github.com/netsimplex/mcflow/dijkstra"
)

// csGraph is the residual graph the cost-scaling engine pushes flow
// across: arcs are stored in forward/backward pairs (arc i and i^1 are
// reverses of each other), adjacency grouped per node so discharge can
// scan a node's incident arcs directly.
type csGraph struct {
	n    int
	to   []int
	cap  []int64 // residual capacity remaining in this direction
	cost []int64 // per-unit cost in this direction (negative for reverse arcs)
	adj  [][]int // adj[u] lists arc indices with tail u
}

func newCSGraph(n int) *csGraph {
	return &csGraph{n: n, adj: make([][]int, n)}
}

func (g *csGraph) addArc(u, v int, capacity, cost int64) {
	g.to = append(g.to, v)
	g.cap = append(g.cap, capacity)
	g.cost = append(g.cost, cost)
	g.adj[u] = append(g.adj[u], len(g.to)-1)

	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
	g.cost = append(g.cost, -cost)
	g.adj[v] = append(g.adj[v], len(g.to)-1)
}

func (g *csGraph) reverse(i int) int { return i ^ 1 }

// CostScaling solves p with an epsilon-scaling push-relabel method. It
// shares Problem/Options/Solution with NetworkSimplex but maintains its
// own residual-graph representation, since push-relabel operates on
// per-arc residual capacity rather than a spanning-tree basis.
func CostScaling(p *Problem, opts ...Option) (*Solution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := apply(opts...)
	n, m := p.Graph.NumNodes(), p.Graph.NumArcs()
	o = o.resolve(n, m, 2*m)

	excess := make([]int64, n)
	for u := 0; u < n; u++ {
		excess[u] = p.supply(u)
	}

	var sumSupply int64
	for u := 0; u < n; u++ {
		sumSupply += p.supply(u)
	}
	if sumSupply > 0 {
		// Reported as Unbalanced rather than Infeasible: this is a
		// structural pre-flight rejection (total supply can never be
		// absorbed, independent of arc capacities), kept distinct from
		// the capacity-driven Infeasible returned below after the
		// algorithm actually runs and leaves residual excess.
		return &Solution{status: Unbalanced, engine: "CostScaling"}, nil
	}

	g := newCSGraph(n)
	origLo := make([]int64, m)
	arcIdx := make([]int, m) // forward residual-arc index for real arc a
	var maxAbsCost int64
	for a := 0; a < m; a++ {
		lo, hi, cost := p.lo(a), p.hi(a), p.cost(a)
		if hi < lo {
			return &Solution{status: Infeasible, engine: "CostScaling"}, nil
		}
		s, d := p.Graph.ArcSrc(a), p.Graph.ArcDst(a)
		origLo[a] = lo
		excess[s] -= lo
		excess[d] += lo

		arcIdx[a] = len(g.to)
		g.addArc(s, d, capClamp(hi-lo), cost)
		if ac := abs64(cost); ac > maxAbsCost {
			maxAbsCost = ac
		}
	}

	costMul := int64(n) + 1
	for i := range g.cost {
		g.cost[i] *= costMul
	}

	price := make([]int64, n)
	eps := maxAbsCost * costMul
	if eps < 1 {
		eps = 1
	}

	iterations := 0
	for ; eps >= 1; eps /= o.ScaleFactor {
		globalUpdate(g, price, excess, o)
		saturateNegativeArcs(g, price, excess)
		discharge(g, price, excess, eps, o, &iterations)
		if iterations >= o.MaxIterations {
			break
		}
	}

	var residual int64
	for u := 0; u < n; u++ {
		if excess[u] > 0 {
			residual += excess[u]
		}
	}
	if residual != 0 || iterations >= o.MaxIterations {
		if iterations >= o.MaxIterations {
			o.Logger.Warn("mcf: cost scaling hit its iteration cap before convergence",
				"cap", o.MaxIterations, "error", ErrIterationCap)
		}
		return &Solution{status: Infeasible, iterations: iterations, engine: "CostScaling"}, nil
	}

	flow := make([]int64, m)
	var total int64
	for a := 0; a < m; a++ {
		used := g.cap[g.reverse(arcIdx[a])] // flow sent forward == reverse arc's capacity
		flow[a] = used + origLo[a]
		total += p.cost(a) * flow[a]
	}

	return &Solution{
		status:     Optimal,
		flow:       flow,
		pi:         exactPotentials(g, costMul),
		total:      total,
		iterations: iterations,
		engine:     "CostScaling",
	}, nil
}

// exactPotentials recovers integral node potentials satisfying exact
// complementary slackness against the final flow. Cost-scaling's own
// `price` is only eps-optimal at termination, not a multiple of costMul,
// so dividing it by costMul truncates and can leave a nonzero reduced
// cost on an interior-flow arc. Since the final flow is optimal, its
// residual graph (arcs with cap[i] > 0) has no negative cycle, so
// Bellman-Ford shortest-path distances from an implicit zero-cost
// super-source are valid potentials: zero reduced cost on every arc that
// lies on a shortest path, which includes every strictly-interior-flow
// arc, since such an arc is residual in both directions and so must be
// tight.
func exactPotentials(g *csGraph, costMul int64) []int64 {
	dist := make([]int64, g.n)
	for iter := 0; iter < g.n; iter++ {
		changed := false
		for u := 0; u < g.n; u++ {
			for _, i := range g.adj[u] {
				if g.cap[i] <= 0 {
					continue
				}
				w := g.cost[i] / costMul
				if nd := dist[u] + w; nd < dist[g.to[i]] {
					dist[g.to[i]] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

func capClamp(c int64) int64 {
	if c < 0 {
		return 0
	}
	if c > infCap {
		return infCap
	}
	return c
}

// reducedCostCS returns the scaled reduced cost of residual arc i.
func reducedCostCS(g *csGraph, price []int64, tail, i int) int64 {
	return g.cost[i] + price[tail] - price[g.to[i]]
}

// saturateNegativeArcs pushes every arc with negative reduced cost to its
// residual capacity, the standard start-of-phase step that keeps the
// invariant "every residual arc has reduced cost >= -eps" after a price
// change shrinks eps.
func saturateNegativeArcs(g *csGraph, price []int64, excess []int64) {
	for u := 0; u < g.n; u++ {
		for _, i := range g.adj[u] {
			if g.cap[i] <= 0 {
				continue
			}
			if reducedCostCS(g, price, u, i) < 0 {
				v := g.to[i]
				delta := g.cap[i]
				g.cap[i] -= delta
				g.cap[g.reverse(i)] += delta
				excess[u] -= delta
				excess[v] += delta
			}
		}
	}
}

// discharge runs the push/relabel loop at the current epsilon until no
// node has positive excess or the iteration cap is hit.
func discharge(g *csGraph, price, excess []int64, eps int64, o Options, iterations *int) {
	queue := make([]int, 0, g.n)
	inQueue := make([]bool, g.n)
	for u := 0; u < g.n; u++ {
		if excess[u] > 0 {
			queue = append(queue, u)
			inQueue[u] = true
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for excess[u] > 0 {
			*iterations++
			if *iterations >= o.MaxIterations {
				return
			}
			pushed := false
			for _, i := range g.adj[u] {
				if g.cap[i] <= 0 || excess[u] <= 0 {
					continue
				}
				if reducedCostCS(g, price, u, i) >= 0 {
					continue
				}
				v := g.to[i]
				delta := excess[u]
				if g.cap[i] < delta {
					delta = g.cap[i]
				}
				g.cap[i] -= delta
				g.cap[g.reverse(i)] += delta
				excess[u] -= delta
				wasInactive := excess[v] <= 0
				excess[v] += delta
				if wasInactive && excess[v] > 0 && !inQueue[v] {
					queue = append(queue, v)
					inQueue[v] = true
				}
				pushed = true
			}
			if !pushed {
				relabel(g, price, u, eps)
				if o.Verbose {
					o.Logger.Debug("mcf: relabel", "node", u, "price", price[u], "eps", eps)
				}
			}
			if excess[u] <= 0 {
				break
			}
		}
	}
}

// relabel raises price[u] just enough to make at least one residual arc
// admissible again (reduced cost < 0) at the current epsilon.
func relabel(g *csGraph, price []int64, u int, eps int64) {
	best := infCap
	for _, i := range g.adj[u] {
		if g.cap[i] <= 0 {
			continue
		}
		if rc := reducedCostCS(g, price, u, i); rc < best {
			best = rc
		}
	}
	if best >= infCap {
		return // isolated node in the residual graph, nothing to do
	}
	price[u] -= best + eps
}

// globalUpdate re-prices every node using shortest reduced-cost distances
// from a virtual super-source connected to every node with positive
// excess, via the same Dijkstra implementation the rest of this module
// uses for ordinary shortest paths. It is skipped if no node is active.
func globalUpdate(g *csGraph, price []int64, excess []int64, o Options) {
	anyActive := false
	for _, e := range excess {
		if e > 0 {
			anyActive = true
			break
		}
	}
	if !anyActive {
		return
	}

	gg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	const super = "S"
	_ = gg.AddVertex(super)
	for u := 0; u < g.n; u++ {
		if err := gg.AddVertex(nodeID(u)); err != nil {
			return
		}
	}
	for u := 0; u < g.n; u++ {
		if excess[u] > 0 {
			if _, err := gg.AddEdge(super, nodeID(u), 0); err != nil {
				return
			}
		}
		for _, i := range g.adj[u] {
			if g.cap[i] <= 0 {
				continue
			}
			rc := reducedCostCS(g, price, u, i)
			if rc < 0 {
				continue // saturateNegativeArcs should have cleared these already
			}
			if _, err := gg.AddEdge(nodeID(u), nodeID(g.to[i]), rc); err != nil {
				return
			}
		}
	}

	dist, _, err := dijkstra.Dijkstra(gg, dijkstra.Source(super))
	if err != nil {
		o.Logger.Debug("mcf: global update skipped", "error", err)
		return
	}
	maxFinite := int64(0)
	for u := 0; u < g.n; u++ {
		if d, ok := dist[nodeID(u)]; ok && d < math.MaxInt64 && d > maxFinite {
			maxFinite = d
		}
	}
	for u := 0; u < g.n; u++ {
		if d, ok := dist[nodeID(u)]; ok && d < math.MaxInt64 {
			price[u] -= d
		} else {
			price[u] -= maxFinite
		}
	}
}

func nodeID(u int) string { return strconv.Itoa(u) }
