package mcf

import "log/slog"

// EnteringRule selects the strategy NetworkSimplex uses to pick the
// entering arc on each pivot.
type EnteringRule int

const (
	// BlockSearch scans successive fixed-size blocks of the arc list,
	// taking the first block that contains an eligible arc and picking
	// the most negative reduced cost within it. This is the default: it
	// amortizes well on graphs too large to scan every arc every pivot.
	BlockSearch EnteringRule = iota

	// FirstEligible takes the first arc found with negative reduced
	// cost, scanning from where the previous search left off. Cheap per
	// pivot, more pivots overall; best on small graphs.
	FirstEligible

	// BestEligible scans the entire arc list every pivot and takes the
	// most negative reduced cost. Fewest pivots, most work per pivot;
	// useful as a correctness oracle and on small graphs.
	BestEligible

	// CachedReducedCost maintains a sparse cache of recently-seen
	// negative reduced costs and refills it with a full scan of the arc
	// list when every cached entry is stale.
	CachedReducedCost
)

func (r EnteringRule) String() string {
	switch r {
	case BlockSearch:
		return "BlockSearch"
	case FirstEligible:
		return "FirstEligible"
	case BestEligible:
		return "BestEligible"
	case CachedReducedCost:
		return "CachedReducedCost"
	default:
		return "EnteringRule(invalid)"
	}
}

// Options configures NetworkSimplex and CostScaling. Construct with
// DefaultOptions and override via the With* functions.
type Options struct {
	// Rule selects the entering-arc strategy for NetworkSimplex. Ignored
	// by CostScaling.
	Rule EnteringRule

	// BlockSize is the block-search scan width. Zero means auto-size to
	// ceil(sqrt(searchArcNum)) at solve time, clamped to [1, searchArcNum].
	BlockSize int

	// MaxIterations caps simplex pivots and cost-scaling relabel/push
	// rounds. Zero means auto-size from problem dimensions.
	MaxIterations int

	// CacheCapacity bounds the CachedReducedCost rule's candidate list.
	// Ignored by other rules. Zero means a small built-in default.
	CacheCapacity int

	// ScaleFactor is the cost-scaling engine's epsilon divisor per outer
	// round (alpha in the scaling literature, independent of the engine's
	// internal (n+1) cost multiplier used for integer exactness). Zero
	// means the default of 8; any value is clamped to [4, 16].
	ScaleFactor int64

	// Logger receives structured diagnostics (iteration-cap hits,
	// infeasibility detection, optional per-pivot tracing). A nil
	// Logger disables logging entirely.
	Logger *slog.Logger

	// Verbose enables per-pivot / per-round trace logging at slog.LevelDebug.
	Verbose bool
}

// Option mutates an Options value under construction.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: block-search entering
// rule, auto block size, auto iteration cap, scale factor 8, and a
// discard logger.
func DefaultOptions() Options {
	return Options{
		Rule:          BlockSearch,
		BlockSize:     0,
		MaxIterations: 0,
		CacheCapacity: 64,
		ScaleFactor:   8,
		Logger:        slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
}

// WithRule overrides the entering-arc strategy.
func WithRule(r EnteringRule) Option {
	return func(o *Options) { o.Rule = r }
}

// WithBlockSize overrides the block-search scan width.
func WithBlockSize(size int) Option {
	return func(o *Options) { o.BlockSize = size }
}

// WithMaxIterations overrides the pivot/round cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithCacheCapacity overrides the CachedReducedCost candidate list size.
func WithCacheCapacity(n int) Option {
	return func(o *Options) { o.CacheCapacity = n }
}

// WithScaleFactor overrides the cost-scaling epsilon divisor.
func WithScaleFactor(k int64) Option {
	return func(o *Options) { o.ScaleFactor = k }
}

// WithLogger overrides the diagnostic logger. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithVerbose enables per-pivot / per-round debug tracing.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// apply folds a list of Options onto DefaultOptions.
func apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// resolve fills in the zero-valued auto fields against problem dimensions
// n (nodes) and m (real arcs); searchArcNum is the canonical arc count
// the entering rule scans over (m + n, the real arcs plus the primary
// artificial arcs; the companion artificial arcs are never pivot
// candidates and sit outside this window).
func (o Options) resolve(n, m, searchArcNum int) Options {
	if o.BlockSize <= 0 {
		o.BlockSize = ceilSqrt(searchArcNum)
	}
	if o.BlockSize < 1 {
		o.BlockSize = 1
	}
	if o.BlockSize > searchArcNum {
		o.BlockSize = searchArcNum
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = defaultIterationCap(n, m)
	}
	switch {
	case o.ScaleFactor <= 0:
		o.ScaleFactor = 8
	case o.ScaleFactor < 4:
		o.ScaleFactor = 4
	case o.ScaleFactor > 16:
		o.ScaleFactor = 16
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}
	return o
}

// defaultIterationCap is the pivot/round cap: generous enough that
// legitimate problems never hit it, tight enough that a cycling bug
// fails fast in tests.
func defaultIterationCap(n, m int) int {
	cap := n * m
	if cap < 1_000_000 {
		cap = 1_000_000
	}
	return cap
}

func ceilSqrt(x int) int {
	if x <= 1 {
		return 1
	}
	r := 1
	for r*r < x {
		r++
	}
	return r
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
