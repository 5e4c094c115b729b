package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildsVocabularyInFirstSeenOrder(t *testing.T) {
	c := New([][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "sat"},
	})

	assert.Equal(t, []string{"the", "cat", "sat", "dog"}, c.Vocabulary)
	assert.Equal(t, uint32(2), c.DocNum())
	assert.Equal(t, uint32(4), c.VocabSize())
}

func TestTermDocMatrix(t *testing.T) {
	c := New([][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "sat"},
	})

	m := c.TermDocMatrix()

	r, col := m.Shape()
	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(4), col)
	assert.Equal(t, []uint32{1, 1, 1, 0}, m.GetRow(0))
	assert.Equal(t, []uint32{1, 0, 1, 1}, m.GetRow(1))
}

func TestTermDocMatrixCountsDuplicates(t *testing.T) {
	c := New([][]string{
		{"rain", "rain", "rain", "sun"},
	})

	m := c.TermDocMatrix()

	assert.Equal(t, []uint32{3, 1}, m.GetRow(0))
}

func TestTermDocMatrixEmptyVocabulary(t *testing.T) {
	c := New([][]string{{}, {}})

	m := c.TermDocMatrix()

	r, col := m.Shape()
	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(0), col)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "docs.txt")
	err := os.WriteFile(fn, []byte("the cat sat\nthe dog sat\n"), 0644)
	assert.NoError(t, err)

	c := &Corpus{}
	err = c.Load(fn)

	assert.NoError(t, err)
	assert.Equal(t, uint32(2), c.DocNum())
	assert.Equal(t, []string{"the", "cat", "sat"}, c.Docs[0])
	assert.Equal(t, []string{"the", "dog", "sat"}, c.Docs[1])
	assert.Equal(t, []string{"the", "cat", "sat", "dog"}, c.Vocabulary)
}

func TestLoadKeepsEmptyLinesAsEmptyDocuments(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "docs.txt")
	err := os.WriteFile(fn, []byte("a b\n\nc\n"), 0644)
	assert.NoError(t, err)

	c := &Corpus{}
	err = c.Load(fn)

	assert.NoError(t, err)
	assert.Equal(t, uint32(3), c.DocNum())
	assert.Empty(t, c.Docs[1])
}

func TestLoadMissingFile(t *testing.T) {
	c := &Corpus{}
	err := c.Load(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}
