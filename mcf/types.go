package mcf

// infCap is the effective-infinity capacity used for artificial arcs and
// for any real arc whose declared Hi is large enough to risk overflow in
// flow-augmentation arithmetic. Equal to math.MaxInt64/2 so that the sum
// of two such values never overflows (spec §7: represent "infinite"
// capacity as a saturating sentinel, not a true unbounded value).
const infCap = int64(1)<<62 - 1

// SupplyType distinguishes the two supply-conservation conventions a
// Problem may declare.
type SupplyType int

const (
	// GEQ (the default) is the standard convention: node conservation
	// must meet supply, i.e. net outflow >= supply for supply-positive
	// nodes and net inflow >= -supply for supply-negative nodes.
	GEQ SupplyType = iota

	// LEQ mirrors GEQ with the roles of non-negative and negative supply
	// swapped. Provisional: not exercised by the reference benchmarks
	// this engine was validated against (see DESIGN.md).
	LEQ
)

func (t SupplyType) String() string {
	switch t {
	case GEQ:
		return "GEQ"
	case LEQ:
		return "LEQ"
	default:
		return "SupplyType(invalid)"
	}
}

// arcState is the basis membership of a canonical arc.
type arcState int8

const (
	// lowerState: non-tree, flow pinned at its (shifted) lower bound 0.
	lowerState arcState = 1
	// treeState: arc belongs to the spanning tree (basic).
	treeState arcState = 0
	// upperState: non-tree, flow pinned at its upper bound hi.
	upperState arcState = -1
)

func (s arcState) String() string {
	switch s {
	case lowerState:
		return "LOWER"
	case treeState:
		return "TREE"
	case upperState:
		return "UPPER"
	default:
		return "UNKNOWN"
	}
}

// direction of a tree arc relative to its child endpoint.
type direction int8

const (
	down direction = -1 // arc points parent -> child
	up   direction = 1  // arc points child -> parent
)

// Status is the outcome of a Solve call.
type Status int

const (
	// NotSolved is the zero value: Solve has not yet returned for this Solution.
	NotSolved Status = iota
	// Optimal indicates a certified minimum-cost flow was found.
	Optimal
	// Infeasible indicates no flow satisfies the bounds and supply constraints,
	// or the iteration cap was exceeded before optimality could be certified.
	Infeasible
	// Unbounded indicates the objective is unbounded below (a negative-cost
	// cycle with unlimited residual capacity).
	Unbounded
	// Unbalanced indicates total supply and total demand could not be
	// reconciled by the cost-scaling engine's feasibility pre-check.
	Unbalanced
)

func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case Unbalanced:
		return "Unbalanced"
	default:
		return "Status(invalid)"
	}
}
