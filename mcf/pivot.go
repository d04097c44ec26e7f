package mcf

// enteringRule picks the next candidate entering arc for a simplex pivot.
// next returns ok=false once no arc in the whole canonical arc list is
// eligible, which is the optimality certificate.
type enteringRule interface {
	next(e *simplexEngine) (arc int, ok bool)
}

// blockSearchRule scans fixed-size blocks of the canonical arc array,
// wrapping around, and returns the most-violating arc in the first block
// that contains any eligible arc. This is the Dantzig-block compromise
// between full pricing and naive first-fit: it bounds per-pivot work to
// BlockSize regardless of graph size while still preferring steep arcs.
type blockSearchRule struct {
	cursor int
}

func (r *blockSearchRule) next(e *simplexEngine) (int, bool) {
	total := e.searchArcNum
	if total == 0 {
		return 0, false
	}
	block := e.opts.BlockSize
	blocksScanned := 0
	maxBlocks := (total + block - 1) / block

	for blocksScanned <= maxBlocks {
		best, bestViol := -1, int64(0)
		for i := 0; i < block; i++ {
			idx := (r.cursor + i) % total
			if v := e.violation(idx); v > bestViol {
				best, bestViol = idx, v
			}
		}
		r.cursor = (r.cursor + block) % total
		blocksScanned++
		if best >= 0 {
			return best, true
		}
	}
	return 0, false
}

// firstEligibleRule returns the first eligible arc found scanning from a
// persistent cursor, wrapping once through the full arc list.
type firstEligibleRule struct {
	cursor int
}

func (r *firstEligibleRule) next(e *simplexEngine) (int, bool) {
	total := e.searchArcNum
	for i := 0; i < total; i++ {
		idx := (r.cursor + i) % total
		if e.violation(idx) > 0 {
			r.cursor = (idx + 1) % total
			return idx, true
		}
	}
	return 0, false
}

// bestEligibleRule scans every candidate arc and returns the single most
// violating one. Most expensive per pivot, fewest pivots overall.
type bestEligibleRule struct{}

func (r *bestEligibleRule) next(e *simplexEngine) (int, bool) {
	best, bestViol := -1, int64(0)
	for a := 0; a < e.searchArcNum; a++ {
		if v := e.violation(a); v > bestViol {
			best, bestViol = a, v
		}
	}
	return best, best >= 0
}

// cachedReducedCostRule keeps a small list of recently-discovered eligible
// arcs and serves pivots from it until every entry goes stale, at which
// point it refills with one full pass over the arc list; the block-search
// fallback runs only when that pass finds no eligible arc.
type cachedReducedCostRule struct {
	cache    []int
	fallback blockSearchRule
}

func (r *cachedReducedCostRule) next(e *simplexEngine) (int, bool) {
	for len(r.cache) > 0 {
		best, bestIdx, bestViol := -1, -1, int64(0)
		for i, a := range r.cache {
			if v := e.violation(a); v > bestViol {
				best, bestIdx, bestViol = a, i, v
			}
		}
		if best < 0 {
			r.cache = r.cache[:0]
			break
		}
		r.cache[bestIdx] = r.cache[len(r.cache)-1]
		r.cache = r.cache[:len(r.cache)-1]
		return best, true
	}

	r.refill(e)
	if len(r.cache) == 0 {
		return r.fallback.next(e)
	}
	a := r.cache[len(r.cache)-1]
	r.cache = r.cache[:len(r.cache)-1]
	return a, true
}

// refill does one full pass over the arc list, collecting up to
// CacheCapacity eligible arcs ranked by violation.
func (r *cachedReducedCostRule) refill(e *simplexEngine) {
	limit := e.opts.CacheCapacity
	if limit <= 0 {
		limit = 1
	}
	type cand struct {
		arc  int
		viol int64
	}
	var top []cand
	for a := 0; a < e.searchArcNum; a++ {
		v := e.violation(a)
		if v <= 0 {
			continue
		}
		top = append(top, cand{a, v})
	}
	// partial selection: keep the limit largest by violation
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if top[j].viol > top[i].viol {
				top[i], top[j] = top[j], top[i]
			}
		}
		if i+1 >= limit {
			break
		}
	}
	if len(top) > limit {
		top = top[:limit]
	}
	r.cache = r.cache[:0]
	for _, c := range top {
		r.cache = append(r.cache, c.arc)
	}
}

// newEnteringRule builds the configured rule implementation.
func newEnteringRule(opt EnteringRule) enteringRule {
	switch opt {
	case FirstEligible:
		return &firstEligibleRule{}
	case BestEligible:
		return &bestEligibleRule{}
	case CachedReducedCost:
		return &cachedReducedCostRule{}
	default:
		return &blockSearchRule{}
	}
}
