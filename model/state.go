package model

import "github.com/bobonovski/goplsa/matrix"

// State tracks a fitting session through its lifecycle. A session
// starts Uninitialized, becomes Initialized once the count matrix and
// probability tables are built, moves to Iterating while the EM loop
// runs and ends in exactly one of Converged, BudgetExhausted or
// Failed.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateIterating
	StateConverged
	StateBudgetExhausted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateBudgetExhausted:
		return "budget exhausted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// FitResult carries the learned distributions of a finished fitting
// run. BudgetExhausted is a valid terminal state whose tables are
// simply not guaranteed converged; a Failed run returns an error
// instead of a result.
type FitResult struct {
	Theta       *matrix.Float64Matrix
	Phi         *matrix.Float64Matrix
	Likelihoods []float64
	State       State
}
