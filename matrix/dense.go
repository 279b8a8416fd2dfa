// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the scalar constraint of Dense.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Zero returns the n×n zero matrix.
func Zero[T Number](n int) (*Dense[T], error) { return NewDense[T](n, n) }

// Identity returns the n×n identity matrix.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// FromRows copies a rectangular [][]T into a Dense.
// Stage 1 (Validate): at least one non-empty row, all rows equal length.
// Stage 2 (Execute): copy row by row into the flat buffer.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	m, err := NewDense[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// RowsCopy returns the matrix as a fresh [][]T.
func (m *Dense[T]) RowsCopy() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}
	return out
}

// String renders the matrix as [[a b] [c d]].
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, m.data[i*m.c+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
