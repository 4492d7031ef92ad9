// SPDX-License-Identifier: MIT

// Package tableau - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package tableau

import (
	"strings"

	"github.com/katalvlaran/pivotlab/rational"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxCol  = "Col"
	ctxRows = "MatrixFromRows"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a row-major grid of exact rationals.
//   - r,c hold dimensions (both ≥ 1 for public constructors).
//   - data has length r*c; offset of (i,j) is i*c + j.
//
// The zero Rational is a valid cell value, so a fresh Matrix is all zeros.
type Matrix struct {
	r, c int
	data []rational.Rational
}

// NewMatrix creates an r×c zero matrix.
// Errors: ErrBadShape when rows < 1 or cols < 1.
// Complexity: O(r*c).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{r: rows, c: cols, data: make([]rational.Rational, rows*cols)}, nil
}

// MatrixFromRows copies a slice of equal-length rows into a new Matrix.
//
// Errors:
//   - ErrBadShape when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity: O(r*c).
func MatrixFromRows(rows [][]rational.Rational) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, tableauErrorf(ctxRows, ErrBadShape)
	}
	m, err := NewMatrix(len(rows), len(rows[0]))
	if err != nil {
		return nil, tableauErrorf(ctxRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, cellErrorf(ctxRows, i, len(row), ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfBounds
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfBounds.
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return rational.Rational{}, cellErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds.
func (m *Matrix) Set(row, col int, v rational.Rational) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, cellErrorf(ctxRow, i, 0, ErrOutOfBounds)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]rational.Rational, error) {
	if j < 0 || j >= m.c {
		return nil, cellErrorf(ctxCol, 0, j, ErrOutOfBounds)
	}
	out := make([]rational.Rational, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the matrix as freshly allocated rows.
func (m *Matrix) ToRows() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy. Rationals are immutable, so copying the slice
// of values is enough to make the clone independent.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	buf := make([]rational.Rational, len(m.data))
	copy(buf, m.data)

	return &Matrix{r: m.r, c: m.c, data: buf}
}

// Equal reports exact element-wise equality (same shape required).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// Strings returns every cell in display form, row by row.
func (m *Matrix) Strings() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]string, m.c)
		for j := 0; j < m.c; j++ {
			row[j] = m.data[i*m.c+j].String()
		}
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
