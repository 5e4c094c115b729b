package model

import "errors"

var (
	// non-positive topic count or iteration budget, or negative epsilon
	ErrInvalidArgument = errors.New("model: invalid argument")
	// every topic assigns zero mass to some document/word pair
	ErrDegenerateEStep = errors.New("model: zero topic mass in expectation step")
	// the topic mixture probability of some document/word pair is zero
	ErrDegenerateLikelihood = errors.New("model: zero mixture probability in likelihood")
)
