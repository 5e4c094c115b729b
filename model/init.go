package model

import (
	"github.com/pkg/errors"

	"github.com/bobonovski/goplsa/matrix"
)

// initialization strategy for the probability tables
type InitMode int

const (
	// every entry drawn independently from [0, 1) before row
	// normalization; the default for production fitting
	InitRandom InitMode = iota
	// every entry equal before row normalization, so theta is 1/K and
	// phi is 1/V everywhere. Deterministic, used for testing. Uniform
	// tables are a fixed point of the EM recurrence: the posterior
	// comes out 1/K for every topic and the subsequent updates leave
	// theta uniform, so the likelihood trace is constant.
	InitUniform
)

// initialize allocates theta and phi, fills them according to the
// configured strategy and row normalizes both
func (this *PLSA) initialize() error {
	this.theta = matrix.NewFloat64Matrix(this.data.DocNum(), this.topicNum)
	this.phi = matrix.NewFloat64Matrix(this.topicNum, this.data.VocabSize())

	switch this.mode {
	case InitUniform:
		this.theta.Fill(1)
		this.phi.Fill(1)
	default:
		this.fillRandom(this.theta)
		this.fillRandom(this.phi)
	}

	if err := matrix.NormalizeRows(this.theta); err != nil {
		return errors.Wrap(err, "document-topic init")
	}
	if err := matrix.NormalizeRows(this.phi); err != nil {
		return errors.Wrap(err, "topic-word init")
	}
	return nil
}

func (this *PLSA) fillRandom(m *matrix.Float64Matrix) {
	nrow, ncol := m.Shape()
	for r := uint32(0); r < nrow; r += 1 {
		for c := uint32(0); c < ncol; c += 1 {
			m.Set(r, c, this.rng.Float64())
		}
	}
}
