package mcf

// pivotResult summarizes what a single pivot changed, for logging and
// for the iteration-cap/degeneracy bookkeeping in simplex.go.
type pivotResult struct {
	enteringArc int
	leavingArc  int // == enteringArc for a bound flip (no tree change)
	delta       int64
	degenerate  bool
	unbounded   bool
}

// reducedCost returns cost[a] + pi[src(a)] - pi[dst(a)].
func (e *simplexEngine) reducedCost(a int) int64 {
	cp := e.cp
	return cp.cost[a] + e.tree.pi[cp.src[a]] - e.tree.pi[cp.dst[a]]
}

// violation returns how much total cost would improve per unit of flow
// moved on arc a, or 0/negative if a is not a profitable pivot candidate
// in its current state.
func (e *simplexEngine) violation(a int) int64 {
	if e.cp.state[a] == treeState {
		return 0
	}
	rc := e.reducedCost(a)
	if e.cp.state[a] == lowerState {
		return -rc
	}
	return rc
}

// cycleArc is one tree arc on the cycle formed by adding the entering
// arc, tagged with the sign of its flow change per unit of netDelta
// (positive netDelta meaning flow increases in the arc's own src->dst
// direction).
type cycleArc struct {
	arc  int
	sign int64
}

// pivot applies one simplex step for the given entering arc: finds the
// join node, walks both paths to build the cycle, determines the leaving
// arc (or a bound flip) by minimum residual capacity, updates flows, and
// — unless this was a bound flip — relinks the tree and recomputes
// potentials.
func (e *simplexEngine) pivot(enteringArc int) pivotResult {
	cp, tree := e.cp, e.tree
	u, v := cp.src[enteringArc], cp.dst[enteringArc]
	increase := cp.state[enteringArc] == lowerState

	join := tree.lca(u, v)

	var cycle []cycleArc
	// v-side: climbing toward join, sign = +1 if the arc points from
	// child to parent (up), i.e. along the climb, -1 if it points from
	// parent to child (down).
	for x := v; x != join; x = tree.parent[x] {
		s := int64(-1)
		if tree.predDir[x] == up {
			s = 1
		}
		cycle = append(cycle, cycleArc{tree.pred[x], s})
	}
	// u-side: mirror image of the v-side sign convention.
	uSideStart := len(cycle)
	for x := u; x != join; x = tree.parent[x] {
		s := int64(1)
		if tree.predDir[x] == up {
			s = -1
		}
		cycle = append(cycle, cycleArc{tree.pred[x], s})
	}

	netSign := int64(1)
	if !increase {
		netSign = -1
	}

	// Determine the maximum feasible delta >= 0 and which arc blocks it.
	// The v-side (first side) updates only on a strict improvement; the
	// u-side (second side) also updates on a tie, so among equal-headroom
	// candidates the one on the second side wins — the reference
	// anti-cycling tie-break.
	maxDelta := cp.hi[enteringArc]
	blockingIdx := -1 // -1 means the entering arc's own bound blocks first
	for i, ca := range cycle {
		eff := ca.sign * netSign
		var headroom int64
		if eff >= 0 {
			headroom = cp.hi[ca.arc] - cp.flow[ca.arc]
		} else {
			headroom = cp.flow[ca.arc]
		}
		if i < uSideStart {
			if headroom < maxDelta {
				maxDelta = headroom
				blockingIdx = i
			}
		} else {
			if headroom <= maxDelta {
				maxDelta = headroom
				blockingIdx = i
			}
		}
	}

	if maxDelta >= infCap {
		// No arc on the cycle, nor the entering arc itself, bounds the
		// flow increase: a negative reduced-cost cycle with unlimited
		// residual capacity, so the objective is unbounded below.
		return pivotResult{enteringArc: enteringArc, leavingArc: enteringArc, unbounded: true}
	}

	// Apply the flow change.
	netDelta := maxDelta * netSign
	cp.flow[enteringArc] += netDelta
	for _, ca := range cycle {
		cp.flow[ca.arc] += ca.sign * netDelta
	}

	if blockingIdx < 0 {
		// Bound flip: entering arc itself saturates; no tree change.
		if increase {
			cp.state[enteringArc] = upperState
		} else {
			cp.state[enteringArc] = lowerState
		}
		return pivotResult{enteringArc: enteringArc, leavingArc: enteringArc, delta: maxDelta, degenerate: maxDelta == 0}
	}

	leaving := cycle[blockingIdx]
	leavingArc := leaving.arc
	eff := leaving.sign * netSign
	if eff >= 0 {
		cp.state[leavingArc] = upperState
	} else {
		cp.state[leavingArc] = lowerState
	}
	cp.state[enteringArc] = treeState

	var w int // child-side endpoint of the leaving arc
	var inSub, outSub int
	if blockingIdx < uSideStart {
		// leaving arc is on the v-side path; w is the node whose pred is it
		w = pathNodeAt(tree, v, join, blockingIdx)
		inSub, outSub = v, u
	} else {
		w = pathNodeAt(tree, u, join, blockingIdx-uSideStart)
		inSub, outSub = u, v
	}

	relink(tree, w, inSub, outSub, enteringArc, cp)
	tree.rebuild(cp)

	return pivotResult{enteringArc: enteringArc, leavingArc: leavingArc, delta: maxDelta, degenerate: maxDelta == 0}
}

// pathNodeAt returns the i-th node visited while climbing from start
// toward (but not including) join, i.e. the child endpoint of the i-th
// arc on that climb.
func pathNodeAt(tree *spanningTree, start, join, i int) int {
	x := start
	for k := 0; k < i; k++ {
		x = tree.parent[x]
	}
	return x
}

// relink reverses the parent chain from inSub up to w (the leaving arc's
// child endpoint) so that w's side of the old tree re-roots at inSub,
// then attaches inSub to outSub via the entering arc. Depth/pi/thread are
// left stale; the caller must call tree.rebuild afterward.
func relink(tree *spanningTree, w, inSub, outSub, enteringArc int, cp *canonicalProblem) {
	if inSub == w {
		tree.parent[inSub] = outSub
		tree.pred[inSub] = enteringArc
		tree.predDir[inSub] = arcDirFrom(cp, enteringArc, inSub)
		return
	}

	// Collect the chain inSub -> ... -> w (exclusive of w's old parent).
	var chain []int
	for x := inSub; ; x = tree.parent[x] {
		chain = append(chain, x)
		if x == w {
			break
		}
	}

	// Reverse parent/pred/predDir along the chain: old parent(chain[i]) ==
	// chain[i+1]; after reversal chain[i+1]'s parent becomes chain[i].
	for i := 0; i < len(chain)-1; i++ {
		child, oldParent := chain[i], chain[i+1]
		oldPred, oldDir := tree.pred[child], tree.predDir[child]
		tree.parent[oldParent] = child
		tree.pred[oldParent] = oldPred
		tree.predDir[oldParent] = flipDir(oldDir)
	}

	tree.parent[inSub] = outSub
	tree.pred[inSub] = enteringArc
	tree.predDir[inSub] = arcDirFrom(cp, enteringArc, inSub)
}

func flipDir(d direction) direction {
	if d == up {
		return down
	}
	return up
}

// arcDirFrom reports the predDir of arc a as seen from child endpoint c:
// up if c is the arc's source, down if c is its destination.
func arcDirFrom(cp *canonicalProblem, a, c int) direction {
	if cp.src[a] == c {
		return up
	}
	return down
}
