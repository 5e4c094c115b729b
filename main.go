package main

import (
	"flag"

	log "github.com/golang/glog"

	"github.com/bobonovski/goplsa/corpus"
	"github.com/bobonovski/goplsa/model"
)

var (
	input      = flag.String("input_file", "", "input training file, one document per line")
	topicModel = flag.String("model", "plsa", "model type")
	topicNum   = flag.Uint("k", 2, "number of topics")
	iteration  = flag.Int("iter", 50, "maximum number of EM iterations")
	epsilon    = flag.Float64("epsilon", 0.001, "log likelihood convergence threshold")
	initMode   = flag.String("init", "random", "probability table initialization, random or uniform")
	topWords   = flag.Int("top_words", 10, "number of words to report per topic")
)

func main() {
	flag.Parse()

	// read training data
	data := &corpus.Corpus{}
	if err := data.Load(*input); err != nil {
		log.Exitf("load corpus: %v", err)
	}
	log.V(1).Infof("vocabulary %v", data.Vocabulary)

	mode := model.InitRandom
	if *initMode == "uniform" {
		mode = model.InitUniform
	}

	ctor, err := model.GetModel(*topicModel)
	if err != nil {
		log.Exitf("resolve model: %v", err)
	}
	m := ctor(data, uint32(*topicNum), mode)

	result, err := m.Fit(*iteration, *epsilon)
	if err != nil {
		log.Exitf("fit: %v", err)
	}

	trace := result.Likelihoods
	log.Infof("finished in state %s after %d iterations, likelihood %f",
		result.State, len(trace), trace[len(trace)-1])
	for k := uint32(0); k < uint32(*topicNum); k += 1 {
		log.Infof("topic %d: %v", k, m.TopWords(k, *topWords))
	}
}
