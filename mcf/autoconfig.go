package mcf

// ProblemProfile summarizes a Problem's shape, cheap to compute up front
// and used by AutoOptions to pick sane defaults without the caller
// needing to understand the entering-rule tradeoffs directly.
type ProblemProfile struct {
	Nodes, Arcs   int
	Density       float64 // Arcs / (Nodes*(Nodes-1)); 0 when Nodes < 2
	MaxAbsCost    int64
	HasBoundedArc bool // at least one arc with Hi < the infinite-capacity sentinel
}

// Analyze inspects p without solving it. It is safe to call before either
// engine and does not mutate p.
func Analyze(p *Problem) ProblemProfile {
	n, m := p.Graph.NumNodes(), p.Graph.NumArcs()
	prof := ProblemProfile{Nodes: n, Arcs: m}

	denom := n * (n - 1)
	if denom > 0 {
		prof.Density = float64(m) / float64(denom)
	}

	for a := 0; a < m; a++ {
		if c := abs64(p.cost(a)); c > prof.MaxAbsCost {
			prof.MaxAbsCost = c
		}
		if p.hi(a) < infCap {
			prof.HasBoundedArc = true
		}
	}
	return prof
}

// AutoOptions picks an Options configuration from a ProblemProfile:
// BestEligible on small graphs (cheap full scans, fewest pivots),
// CachedReducedCost on sparse large graphs (amortizes well when few arcs
// are ever profitable at once), and BlockSearch otherwise.
func AutoOptions(prof ProblemProfile) Options {
	o := DefaultOptions()
	switch {
	case prof.Nodes <= 64:
		o.Rule = BestEligible
	case prof.Density < 0.05 && prof.Arcs > 5000:
		o.Rule = CachedReducedCost
		o.CacheCapacity = 256
	default:
		o.Rule = BlockSearch
	}
	return o
}
