package corpus

import (
	"bufio"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/bobonovski/goplsa/matrix"
)

// A Corpus is an ordered collection of tokenized documents together
// with the vocabulary of unique terms seen across them. The position
// of a term in Vocabulary is its column index in every matrix built
// from the corpus. Both fields are built once and treated as read only
// during model fitting.
type Corpus struct {
	Docs       [][]string
	Vocabulary []string
}

// New builds a corpus from documents that are already tokenized
func New(docs [][]string) *Corpus {
	c := &Corpus{Docs: docs}
	c.buildVocabulary()
	return c
}

// Load reads training documents from a text file, one document per
// line, tokens separated by whitespace. An empty line yields an empty
// document; fitting a model over an empty document fails when its
// topic mixture is re-estimated, since no term count supports it.
func (this *Corpus) Load(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return errors.Wrapf(err, "corpus: open %s", fn)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		this.Docs = append(this.Docs, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "corpus: read %s", fn)
	}
	this.buildVocabulary()

	log.Infof("number of documents %d", this.DocNum())
	log.Infof("vocabulary size %d", this.VocabSize())
	return nil
}

// vocabulary terms are kept in first seen order so that matrix columns
// are stable across runs
func (this *Corpus) buildVocabulary() {
	seen := make(map[string]bool)
	this.Vocabulary = this.Vocabulary[:0]
	for _, doc := range this.Docs {
		for _, w := range doc {
			if !seen[w] {
				seen[w] = true
				this.Vocabulary = append(this.Vocabulary, w)
			}
		}
	}
}

// number of documents in the corpus
func (this *Corpus) DocNum() uint32 {
	return uint32(len(this.Docs))
}

// number of unique terms in the corpus
func (this *Corpus) VocabSize() uint32 {
	return uint32(len(this.Vocabulary))
}

// TermDocMatrix builds the term-document count matrix where the
// [d, w]-th element is the occurrence count of vocabulary term w in
// document d. Counting goes through a term index map so the cost is
// linear in the total token count. An empty vocabulary yields a
// matrix with DocNum rows and zero columns.
func (this *Corpus) TermDocMatrix() *matrix.CountMatrix {
	termIdx := make(map[string]uint32, len(this.Vocabulary))
	for i, w := range this.Vocabulary {
		termIdx[w] = uint32(i)
	}

	m := matrix.NewCountMatrix(this.DocNum(), this.VocabSize())
	for d, doc := range this.Docs {
		for _, w := range doc {
			m.Incr(uint32(d), termIdx[w], uint32(1))
		}
	}
	return m
}
