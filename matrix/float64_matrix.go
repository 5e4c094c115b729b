package matrix

// internal float64 matrix representation, used for the probability tables
type Float64Matrix struct {
	nrow uint32
	ncol uint32
	data []float64
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns.
// A float64 slice is used as the underlying storage and the data layout
// is in row major order, i.e. the (i*c + j)-th element in the data slice
// is the [i, j]-th element in the matrix. Zero dimensions are allowed
// and yield a matrix with no elements.
func NewFloat64Matrix(r, c uint32) *Float64Matrix {
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: make([]float64, r*c),
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float64Matrix) Get(r, c uint32) float64 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// Row returns the r-th row of the matrix as a slice sharing the
// underlying storage, so writes through the slice mutate the matrix.
func (m *Float64Matrix) Row(r uint32) []float64 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol : (r+1)*m.ncol]
}

// set every element of the matrix to val
func (m *Float64Matrix) Fill(val float64) {
	for i := range m.data {
		m.data[i] = val
	}
}
