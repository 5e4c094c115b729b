package matrix

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("matrix: index out of range")
	ErrInvalidDistribution = errors.New("matrix: row sums to zero, cannot normalize")
)
