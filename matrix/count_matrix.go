package matrix

// internal count matrix representation
type CountMatrix struct {
	nrow uint32
	ncol uint32
	data []uint32
}

// NewCountMatrix creates a new CountMatrix with r rows and c columns.
// A uint32 slice is used as the underlying storage and the data layout
// is in row major order, i.e. the (i*c + j)-th element in the data slice
// is the [i, j]-th element in the matrix. Zero dimensions are allowed
// and yield a matrix with no elements.
func NewCountMatrix(r, c uint32) *CountMatrix {
	return &CountMatrix{
		nrow: r,
		ncol: c,
		data: make([]uint32, r*c),
	}
}

// get the shape of the matrix
func (m *CountMatrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *CountMatrix) Get(r, c uint32) uint32 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// get the r-th row of the matrix
func (m *CountMatrix) GetRow(r uint32) []uint32 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}

	var row []uint32
	for c := uint32(0); c < m.ncol; c += 1 {
		row = append(row, m.Get(r, c))
	}
	return row
}

// set val to the [r, c]-th element of the matrix
func (m *CountMatrix) Set(r, c uint32, val uint32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *CountMatrix) Incr(r, c uint32, val uint32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] += val
}
