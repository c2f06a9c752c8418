package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrIndexOutOfRange = errors.New("matrix index out of range")
	ErrShapeMismatch   = errors.New("matrix shape mismatch")
)

// Matrix is a rows x cols grid of reals addressed (row, col), 0-indexed.
//
// A matrix with a non-positive dimension is empty: Size is 0 and Has is
// always false.
type Matrix struct {
	rows, cols int
	d          *mat.Dense
}

// NewMatrix returns a rows x cols matrix. An optional fill value sets every cell.
func NewMatrix(rows, cols int, fill ...float64) *Matrix {
	if rows <= 0 || cols <= 0 {
		return &Matrix{}
	}
	m := &Matrix{rows: rows, cols: cols, d: mat.NewDense(rows, cols, nil)}
	if len(fill) > 0 && fill[0] != 0 {
		v := fill[0]
		m.d.Apply(func(_, _ int, _ float64) float64 { return v }, m.d)
	}
	return m
}

// Identity returns the n x n identity.
//
// Identity(n, d) puts d on the diagonal; Identity(n, d, f) additionally fills
// every off-diagonal cell with f. Identity(3, 2, 1) is Identity(3) plus a 3x3
// matrix of ones.
func Identity(n int, opts ...float64) *Matrix {
	diag, fill := 1.0, 0.0
	if len(opts) > 0 {
		diag = opts[0]
	}
	if len(opts) > 1 {
		fill = opts[1]
	}
	m := NewMatrix(n, n, fill)
	for i := 0; i < n; i++ {
		m.d.Set(i, i, diag)
	}
	return m
}

func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }
func (m *Matrix) Size() int              { return m.rows * m.cols }

// Has reports whether (r, c) addresses a cell of m.
func (m *Matrix) Has(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

func (m *Matrix) Get(r, c int) (float64, error) {
	if !m.Has(r, c) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, r, c, m.rows, m.cols)
	}
	return m.d.At(r, c), nil
}

// Set stores v at (r, c) and returns the stored value.
func (m *Matrix) Set(r, c int, v float64) (float64, error) {
	if !m.Has(r, c) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, r, c, m.rows, m.cols)
	}
	m.d.Set(r, c, v)
	return v, nil
}

// SetAll fills m in row-major order. Fewer values than cells leave the
// remaining cells untouched; more values than cells is an error.
func (m *Matrix) SetAll(vals ...float64) error {
	if len(vals) > m.Size() {
		return fmt.Errorf("%w: %d values for %dx%d", ErrShapeMismatch, len(vals), m.rows, m.cols)
	}
	for i, v := range vals {
		m.d.Set(i/m.cols, i%m.cols, v)
	}
	return nil
}

// Add returns the element-wise sum of m and o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrShapeMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	if m.Size() == 0 {
		return &Matrix{}, nil
	}
	out := NewMatrix(m.rows, m.cols)
	out.d.Add(m.d, o.d)
	return out, nil
}

// Mul returns the matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows || m.Size() == 0 || o.Size() == 0 {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrShapeMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := NewMatrix(m.rows, o.cols)
	out.d.Mul(m.d, o.d)
	return out, nil
}

// EqualsTo reports exact equality of shape and cells.
func (m *Matrix) EqualsTo(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	if m.Size() == 0 {
		return true
	}
	return mat.Equal(m.d, o.d)
}

// Cp returns an independent copy of m.
func (m *Matrix) Cp() *Matrix {
	if m.Size() == 0 {
		return &Matrix{}
	}
	return &Matrix{rows: m.rows, cols: m.cols, d: mat.DenseCopyOf(m.d)}
}

func (m *Matrix) String() string {
	if m.Size() == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(m.d, mat.Squeeze()))
}
