package lp2d

import "errors"

// Sentinel errors returned alongside a StatusError Result, so callers that
// only check the error (idiomatic Go) still get a specific cause.
var (
	// ErrCapacity is returned when n exceeds the State's configured
	// capacity.
	ErrCapacity = errors.New("lp2d: n exceeds state capacity")
	// ErrNilState is returned when Solve is called on a nil *State.
	ErrNilState = errors.New("lp2d: nil state")
	// ErrDegenerateObjective is returned when the objective gradient
	// (c_x, c_y) is the zero vector.
	ErrDegenerateObjective = errors.New("lp2d: objective gradient is zero")
	// ErrStorageUnavailable is returned by NewStateIn when the
	// caller-provided storage is smaller than MemSize(capacity). SolveSimple
	// allocates its State with NewState and never returns it.
	ErrStorageUnavailable = errors.New("lp2d: insufficient storage")
)
