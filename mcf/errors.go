package mcf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by package mcf. Each is wrapped with a
// package-qualified message via fmt.Errorf so callers can still match
// with errors.Is against the unwrapped sentinel.
var (
	// ErrNilGraph indicates a nil Problem or GraphView was passed to an
	// engine or Validate, or a nil *core.Graph to FromCoreGraph.
	ErrNilGraph = errors.New("graph is nil")

	// ErrDimensionMismatch indicates a Problem's Lo/Hi/Cost/Supply slice
	// length does not match the graph's arc or node count.
	ErrDimensionMismatch = errors.New("slice length does not match graph dimensions")

	// ErrInvalidArc indicates an arc endpoint index is out of [0,NumNodes) range.
	ErrInvalidArc = errors.New("arc endpoint out of range")

	// ErrInvalidBounds indicates hi[a] < lo[a] for some arc a.
	ErrInvalidBounds = errors.New("arc upper bound below lower bound")

	// ErrBadSupplyType indicates an unrecognized SupplyType value.
	ErrBadSupplyType = errors.New("unrecognized supply type")

	// ErrNotOptimal indicates Flow/Potential/TotalCost was queried before
	// Status == Optimal (the state-violation case from the error taxonomy).
	ErrNotOptimal = errors.New("solution accessed before optimal status")

	// ErrIterationCap indicates an engine hit its iteration cap. It is
	// written to Options.Logger only; the caller receives an Infeasible
	// Solution, not this error and not a distinct status.
	ErrIterationCap = errors.New("iteration cap exceeded")
)

func wrap(prefix string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("mcf: %s: %w", prefix, err)
}
