package matrix

// internal dense rank three tensor representation, used for the
// per document topic posterior
type Float64Tensor struct {
	dim1 uint32
	dim2 uint32
	dim3 uint32
	data []float64
}

// NewFloat64Tensor creates a new Float64Tensor with the given dimensions.
// The storage is a flat float64 slice laid out with the third index
// varying fastest. Zero dimensions are allowed and yield a tensor with
// no elements.
func NewFloat64Tensor(d1, d2, d3 uint32) *Float64Tensor {
	return &Float64Tensor{
		dim1: d1,
		dim2: d2,
		dim3: d3,
		data: make([]float64, d1*d2*d3),
	}
}

// get the shape of the tensor
func (t *Float64Tensor) Shape() (uint32, uint32, uint32) {
	return t.dim1, t.dim2, t.dim3
}

// get the [i, j, k]-th element of the tensor
func (t *Float64Tensor) At(i, j, k uint32) float64 {
	if i >= t.dim1 || j >= t.dim2 || k >= t.dim3 {
		panic(ErrIndexOutOfRange)
	}
	return t.data[(i*t.dim2+j)*t.dim3+k]
}

// set val to the [i, j, k]-th element of the tensor
func (t *Float64Tensor) Set(i, j, k uint32, val float64) {
	if i >= t.dim1 || j >= t.dim2 || k >= t.dim3 {
		panic(ErrIndexOutOfRange)
	}
	t.data[(i*t.dim2+j)*t.dim3+k] = val
}
