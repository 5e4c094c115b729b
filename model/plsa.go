package model

import (
	"math"
	"math/rand"
	"sort"
	"time"

	log "github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/bobonovski/goplsa/corpus"
	"github.com/bobonovski/goplsa/matrix"
)

func init() {
	Register("plsa", NewPLSA)
}

// PLSA fits a probabilistic latent semantic analysis model with the
// EM algorithm. A single instance owns one fitting session: the
// term-document counts, both probability tables, the topic posterior
// and the likelihood trace all live here and nothing outside the
// session reads them mid iteration.
type PLSA struct {
	data     *corpus.Corpus
	topicNum uint32
	mode     InitMode
	rng      *rand.Rand

	td        *matrix.CountMatrix   // term-document counts
	theta     *matrix.Float64Matrix // P(z|d), document-topic
	phi       *matrix.Float64Matrix // P(w|z), topic-word
	posterior *matrix.Float64Tensor // P(z|d,w), rebuilt every E-step

	likelihoods []float64
	state       State
}

// NewPLSA creates a PLSA instance fitted with the EM algorithm
func NewPLSA(dat *corpus.Corpus, topicNum uint32, mode InitMode) Model {
	return &PLSA{
		data:     dat,
		topicNum: topicNum,
		mode:     mode,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		state:    StateUninitialized,
	}
}

// Fit runs the EM loop for at most maxIter iterations. Each iteration
// is a strict E-step, M-step, likelihood sequence; from the second
// iteration on the run converges once the absolute change in log
// likelihood drops below epsilon, otherwise it stops when the budget
// runs out. Degenerate probabilities abort the run with a Failed
// state and an error instead of terminating the process.
func (this *PLSA) Fit(maxIter int, epsilon float64) (*FitResult, error) {
	if this.topicNum < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "topic number %d", this.topicNum)
	}
	if maxIter < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "iteration budget %d", maxIter)
	}
	if epsilon < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "epsilon %g", epsilon)
	}

	this.td = this.data.TermDocMatrix()
	this.posterior = matrix.NewFloat64Tensor(
		this.data.DocNum(), this.topicNum, this.data.VocabSize())
	this.likelihoods = nil
	if err := this.initialize(); err != nil {
		this.state = StateFailed
		return nil, err
	}
	this.state = StateInitialized

	log.Infof("EM iteration begins")
	this.state = StateIterating
	for iter := 0; iter < maxIter; iter += 1 {
		if err := this.expectationStep(iter); err != nil {
			this.state = StateFailed
			return nil, err
		}
		if err := this.maximizationStep(iter); err != nil {
			this.state = StateFailed
			return nil, err
		}
		if err := this.calculateLikelihood(iter); err != nil {
			this.state = StateFailed
			return nil, err
		}
		log.Infof("iter %5d, likelihood %f", iter, this.likelihoods[iter])

		if iter >= 1 &&
			math.Abs(this.likelihoods[iter]-this.likelihoods[iter-1]) < epsilon {
			this.state = StateConverged
			break
		}
	}
	if this.state != StateConverged {
		this.state = StateBudgetExhausted
	}

	return &FitResult{
		Theta:       this.theta,
		Phi:         this.phi,
		Likelihoods: this.likelihoods,
		State:       this.state,
	}, nil
}

// expectationStep recomputes the topic posterior P(z|d,w) from the
// current tables. For every document d and term w the unnormalized
// topic weights theta[d][k]*phi[k][w] are renormalized over topics,
// so each posterior column sums to one. A pair whose weights are all
// zero means no topic explains that word occurrence at all, which is
// unrecoverable for the run.
func (this *PLSA) expectationStep(iter int) error {
	docNum := this.data.DocNum()
	vocabSize := this.data.VocabSize()

	u := make([]float64, this.topicNum)
	for d := uint32(0); d < docNum; d += 1 {
		for w := uint32(0); w < vocabSize; w += 1 {
			for k := uint32(0); k < this.topicNum; k += 1 {
				u[k] = this.theta.Get(d, k) * this.phi.Get(k, w)
			}
			sum := floats.Sum(u)
			if sum == 0 {
				return errors.Wrapf(ErrDegenerateEStep,
					"iter %d, doc %d, word %d", iter, d, w)
			}
			for k := uint32(0); k < this.topicNum; k += 1 {
				this.posterior.Set(d, k, w, u[k]/sum)
			}
		}
	}
	return nil
}

// maximizationStep re-estimates phi and then theta from the counts
// and the posterior of the most recent E-step. Both halves read the
// same posterior snapshot; neither reads the other's output.
func (this *PLSA) maximizationStep(iter int) error {
	docNum := this.data.DocNum()
	vocabSize := this.data.VocabSize()

	// topic-word re-estimation
	for k := uint32(0); k < this.topicNum; k += 1 {
		for w := uint32(0); w < vocabSize; w += 1 {
			sum := float64(0)
			for d := uint32(0); d < docNum; d += 1 {
				sum += float64(this.td.Get(d, w)) * this.posterior.At(d, k, w)
			}
			this.phi.Set(k, w, sum)
		}
	}
	if err := matrix.NormalizeRows(this.phi); err != nil {
		return errors.Wrapf(err, "iter %d, topic-word", iter)
	}

	// document-topic re-estimation
	for d := uint32(0); d < docNum; d += 1 {
		for k := uint32(0); k < this.topicNum; k += 1 {
			sum := float64(0)
			for w := uint32(0); w < vocabSize; w += 1 {
				sum += float64(this.td.Get(d, w)) * this.posterior.At(d, k, w)
			}
			this.theta.Set(d, k, sum)
		}
	}
	if err := matrix.NormalizeRows(this.theta); err != nil {
		return errors.Wrapf(err, "iter %d, document-topic", iter)
	}
	return nil
}

// calculateLikelihood computes the corpus log likelihood under the
// current tables and appends it to the trace. The logarithm base is 2
// throughout; the base is arbitrary but has to stay fixed for the
// convergence threshold to be meaningful.
func (this *PLSA) calculateLikelihood(iter int) error {
	docNum := this.data.DocNum()
	vocabSize := this.data.VocabSize()

	total := float64(0)
	for d := uint32(0); d < docNum; d += 1 {
		for w := uint32(0); w < vocabSize; w += 1 {
			mix := float64(0)
			for k := uint32(0); k < this.topicNum; k += 1 {
				mix += this.theta.Get(d, k) * this.phi.Get(k, w)
			}
			if mix == 0 {
				return errors.Wrapf(ErrDegenerateLikelihood,
					"iter %d, doc %d, word %d", iter, d, w)
			}
			total += float64(this.td.Get(d, w)) * math.Log2(mix)
		}
	}
	this.likelihoods = append(this.likelihoods, total)
	return nil
}

// get the document-topic distribution
func (this *PLSA) Theta() *matrix.Float64Matrix {
	return this.theta
}

// get the topic-word distribution
func (this *PLSA) Phi() *matrix.Float64Matrix {
	return this.phi
}

// get the per iteration log likelihood trace
func (this *PLSA) Likelihoods() []float64 {
	return this.likelihoods
}

// get the state of the fitting session
func (this *PLSA) State() State {
	return this.state
}

// TopWords returns the n most probable vocabulary terms of a topic in
// descending probability order, fewer if the vocabulary is smaller.
// It returns nil before the tables exist or for an out of range topic.
func (this *PLSA) TopWords(topic uint32, n int) []string {
	if this.phi == nil || topic >= this.topicNum || n <= 0 {
		return nil
	}

	vocabSize := this.data.VocabSize()
	order := make([]uint32, vocabSize)
	for w := uint32(0); w < vocabSize; w += 1 {
		order[w] = w
	}
	sort.Slice(order, func(i, j int) bool {
		return this.phi.Get(topic, order[i]) > this.phi.Get(topic, order[j])
	})

	if n > len(order) {
		n = len(order)
	}
	words := make([]string, 0, n)
	for _, w := range order[:n] {
		words = append(words, this.data.Vocabulary[w])
	}
	return words
}
