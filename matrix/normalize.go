package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// NormalizeRows scales every row of m in place so that it sums to one,
// turning each row into a probability distribution. A row summing to
// zero cannot be normalized and yields ErrInvalidDistribution wrapped
// with the offending row index.
func NormalizeRows(m *Float64Matrix) error {
	nrow, _ := m.Shape()
	for r := uint32(0); r < nrow; r += 1 {
		row := m.Row(r)
		sum := floats.Sum(row)
		if sum == 0 {
			return errors.Wrapf(ErrInvalidDistribution, "row %d", r)
		}
		floats.Scale(1/sum, row)
	}
	return nil
}
