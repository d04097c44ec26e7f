package mcf

// canonicalProblem holds the shifted, artificial-arc-augmented arrays the
// engines operate on. Arcs [0,m) are the real arcs with lo shifted to 0.
// Arcs [m,m+n) are the "primary" artificial arcs that form the initial
// spanning tree, one per real node. Arcs [m+n,m+2n) are their zero-flow
// "companion" arcs in the opposite direction (spec §4.1's "second
// zero-flow LOWER arc"). The companions lie outside the entering-rule
// search window (see NetworkSimplex), so they are never pivoted in and
// keep zero flow for the whole solve.
type canonicalProblem struct {
	n, m int
	root int // = n

	src, dst []int
	hi       []int64 // residual capacity (post lower-bound shift)
	cost     []int64
	flow     []int64
	state    []arcState

	origLo []int64 // pre-shift lower bound, real arcs only, len m

	bigM       int64
	supplyType SupplyType
}

func (cp *canonicalProblem) numArcs() int { return len(cp.src) }

// canonicalize shifts lower bounds to zero, derives the big-M artificial
// cost, and builds the star-shaped initial spanning tree rooted at the
// artificial root node n. It returns Infeasible (with a nil tree) if any
// arc has hi < lo.
func canonicalize(p *Problem) (*canonicalProblem, *spanningTree, Status) {
	n, m := p.Graph.NumNodes(), p.Graph.NumArcs()

	cp := &canonicalProblem{
		n: n, m: m, root: n,
		src: make([]int, m+2*n), dst: make([]int, m+2*n),
		hi: make([]int64, m+2*n), cost: make([]int64, m+2*n),
		flow: make([]int64, m+2*n), state: make([]arcState, m+2*n),
		origLo:     make([]int64, m),
		supplyType: p.Type,
	}

	workSupply := make([]int64, n)
	for u := 0; u < n; u++ {
		workSupply[u] = p.supply(u)
	}

	var maxCost int64
	for a := 0; a < m; a++ {
		lo, hi, cost := p.lo(a), p.hi(a), p.cost(a)
		if hi < lo {
			return nil, nil, Infeasible
		}
		s, d := p.Graph.ArcSrc(a), p.Graph.ArcDst(a)

		cp.src[a], cp.dst[a] = s, d
		cp.cost[a] = cost
		cp.origLo[a] = lo
		cp.hi[a] = hi - lo
		cp.flow[a] = 0
		cp.state[a] = lowerState

		workSupply[s] -= lo
		workSupply[d] += lo

		if ac := abs64(cost); ac > maxCost {
			maxCost = ac
		}
	}
	cp.bigM = (maxCost + 1) * int64(n)

	tree := newStarTree(n)
	for u := 0; u < n; u++ {
		primary := m + u
		companion := m + n + u

		effSupply := workSupply[u]
		if p.Type == LEQ {
			effSupply = -workSupply[u]
		}
		mag := abs64(workSupply[u])

		// Both the primary (tree) and companion artificial arcs cost bigM
		// regardless of direction: giving either one a free (zero-cost)
		// ride would let the simplex invent flow a real solution couldn't
		// actually route, not merely weaken infeasibility detection.
		if effSupply <= 0 {
			// DOWN: root -> u, carries the node's deficit.
			cp.src[primary], cp.dst[primary] = cp.root, u
			cp.cost[primary] = cp.bigM
			cp.flow[primary] = mag
			cp.hi[primary] = infCap
			cp.state[primary] = treeState

			cp.src[companion], cp.dst[companion] = u, cp.root
			cp.cost[companion] = cp.bigM
			cp.hi[companion] = infCap
			cp.state[companion] = lowerState

			tree.parent[u] = cp.root
			tree.pred[u] = primary
			tree.predDir[u] = down
			tree.pi[u] = cp.bigM
		} else {
			// UP: u -> root, carries the node's surplus.
			cp.src[primary], cp.dst[primary] = u, cp.root
			cp.cost[primary] = cp.bigM
			cp.flow[primary] = mag
			cp.hi[primary] = infCap
			cp.state[primary] = treeState

			cp.src[companion], cp.dst[companion] = cp.root, u
			cp.cost[companion] = cp.bigM
			cp.hi[companion] = infCap
			cp.state[companion] = lowerState

			tree.parent[u] = cp.root
			tree.pred[u] = primary
			tree.predDir[u] = up
			tree.pi[u] = -cp.bigM
		}
	}

	return cp, tree, NotSolved
}

// realFlow reverses the lower-bound shift: Flow(a) = flow[a] + origLo[a].
func (cp *canonicalProblem) realFlow(a int) int64 {
	return cp.flow[a] + cp.origLo[a]
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
