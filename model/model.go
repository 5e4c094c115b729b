package model

import (
	"fmt"

	"github.com/bobonovski/goplsa/corpus"
	"github.com/bobonovski/goplsa/matrix"
)

var constructors = make(map[string]ModelCtor)

// the common interface topic model fitters should follow
type Model interface {
	// run the EM loop for at most maxIter iterations, stopping early
	// once the log likelihood change between consecutive iterations
	// drops below epsilon
	Fit(maxIter int, epsilon float64) (*FitResult, error)
	// get the document-topic distribution
	Theta() *matrix.Float64Matrix
	// get the topic-word distribution
	Phi() *matrix.Float64Matrix
	// get the per iteration log likelihood trace
	Likelihoods() []float64
	// get the state of the fitting session
	State() State
	// get the n most probable vocabulary terms of a topic
	TopWords(topic uint32, n int) []string
}

// new model fitters should register themselves using this function
func Register(modelType string, m ModelCtor) {
	constructors[modelType] = m
}

type ModelCtor func(dat *corpus.Corpus, topicNum uint32, mode InitMode) Model

func GetModel(modelType string) (ModelCtor, error) {
	if _, ok := constructors[modelType]; !ok {
		return nil, fmt.Errorf("model %s not registered", modelType)
	}
	return constructors[modelType], nil
}
