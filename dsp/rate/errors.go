package rate

import "errors"

var (
	// ErrInvalidRate indicates a non-positive or non-finite conversion factor.
	ErrInvalidRate = errors.New("rate: invalid input/output rate")
	// ErrInvalidInterpOrder indicates an interpolation order outside [-1,3].
	ErrInvalidInterpOrder = errors.New("rate: interpolation order must be in [-1,3]")
	// ErrOddTapsRequired indicates a half-band prototype with an even tap count.
	ErrOddTapsRequired = errors.New("rate: half-band prototype must have an odd tap count")
	// ErrZeroSumFilter indicates a designed filter with zero DC gain.
	ErrZeroSumFilter = errors.New("rate: designed filter has zero DC gain")
	// ErrClosed indicates an operation on a pipeline that has already been closed.
	ErrClosed = errors.New("rate: pipeline is closed")
)
