package mcf

// simplexEngine holds every piece of mutable state a NetworkSimplex solve
// needs: the canonical problem arrays, the spanning-tree basis, the
// configured entering-arc rule, and the resolved options. One engine
// instance serves exactly one Solve call.
type simplexEngine struct {
	cp           *canonicalProblem
	tree         *spanningTree
	opts         Options
	rule         enteringRule
	searchArcNum int
}

// NetworkSimplex solves p with the primal simplex method over an
// explicit spanning-tree basis. A structurally invalid p (see
// Problem.validate) yields a nil *Solution and the error; otherwise the
// *Solution is non-nil, so check Solution.Status before trusting
// Flow/Potential/TotalCost.
func NetworkSimplex(p *Problem, opts ...Option) (*Solution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := apply(opts...)

	cp, tree, status := canonicalize(p)
	if status == Infeasible {
		return &Solution{status: Infeasible, engine: "NetworkSimplex"}, nil
	}

	// The entering-rule search window covers the real arcs plus the
	// primary artificial arcs only; the companion artificial arcs sit
	// outside it and are never entering candidates.
	searchArcNum := cp.m + cp.n
	o = o.resolve(cp.n, cp.m, searchArcNum)
	tree.rebuild(cp)

	e := &simplexEngine{
		cp:           cp,
		tree:         tree,
		opts:         o,
		rule:         newEnteringRule(o.Rule),
		searchArcNum: searchArcNum,
	}

	iter := 0
	capped := false
	for ; iter < o.MaxIterations; iter++ {
		arc, ok := e.rule.next(e)
		if !ok {
			break
		}
		res := e.pivot(arc)
		if res.unbounded {
			o.Logger.Warn("mcf: network simplex detected an unbounded cycle",
				"iterations", iter, "arc", arc)
			return &Solution{status: Unbounded, iterations: iter, engine: "NetworkSimplex"}, nil
		}
		if o.Verbose {
			o.Logger.Debug("mcf: pivot",
				"iteration", iter, "entering", res.enteringArc, "leaving", res.leavingArc,
				"delta", res.delta, "degenerate", res.degenerate)
		}
	}
	if iter >= o.MaxIterations {
		capped = true
		o.Logger.Warn("mcf: network simplex hit its iteration cap before optimality",
			"cap", o.MaxIterations, "error", ErrIterationCap)
	}

	if capped || cp.artificialFlowRemaining() {
		return &Solution{status: Infeasible, iterations: iter, engine: "NetworkSimplex"}, nil
	}

	return &Solution{
		status:     Optimal,
		flow:       cp.extractFlow(),
		pi:         cp.extractPotentials(tree),
		total:      cp.objective(),
		iterations: iter,
		engine:     "NetworkSimplex",
	}, nil
}

// artificialFlowRemaining reports whether any artificial arc still
// carries positive flow, the Big-M infeasibility certificate.
func (cp *canonicalProblem) artificialFlowRemaining() bool {
	for a := cp.m; a < cp.numArcs(); a++ {
		if cp.flow[a] != 0 {
			return true
		}
	}
	return false
}

// extractFlow returns the real-arc flow, shifted back by each arc's
// original lower bound.
func (cp *canonicalProblem) extractFlow() []int64 {
	out := make([]int64, cp.m)
	for a := 0; a < cp.m; a++ {
		out[a] = cp.realFlow(a)
	}
	return out
}

// extractPotentials returns the node potentials for the n real nodes,
// dropping the artificial root's entry.
func (cp *canonicalProblem) extractPotentials(tree *spanningTree) []int64 {
	out := make([]int64, cp.n)
	copy(out, tree.pi[:cp.n])
	return out
}

// objective returns the total cost over real arcs using their original
// (pre-shift) cost; the lower-bound shift does not change per-unit cost.
func (cp *canonicalProblem) objective() int64 {
	var total int64
	for a := 0; a < cp.m; a++ {
		total += cp.cost[a] * cp.realFlow(a)
	}
	return total
}
