// SPDX-License-Identifier: MIT
// Package: tableau
//
// Purpose:
//   - Private row kernels shared by Pivot and the structural edits.
//   - Operate on the flat buffer directly; callers have already validated
//     indices and lengths, so these never fail.
//
// Determinism:
//   - Fixed j = 0..c-1 order; no allocation except where a shape changes.

package tableau

import "github.com/katalvlaran/pivotlab/rational"

// scaleRow multiplies row i by k in place.
func (m *Matrix) scaleRow(i int, k rational.Rational) {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = m.data[base+j].Mul(k)
	}
}

// subScaledRow computes row[dst] -= k * row[src] in place.
// Zero entries of the source row are skipped; they contribute nothing.
func (m *Matrix) subScaledRow(dst, src int, k rational.Rational) {
	db, sb := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		s := m.data[sb+j]
		if s.IsZero() {
			continue
		}
		m.data[db+j] = m.data[db+j].Sub(k.Mul(s))
	}
}

// appendRow grows the matrix by one row. len(row) == m.c is the caller's contract.
func (m *Matrix) appendRow(row []rational.Rational) {
	m.data = append(m.data, row...)
	m.r++
}

// insertCol inserts col (len == m.r) at column index at, shifting later columns right.
// Complexity: O(r*c), one reallocation.
func (m *Matrix) insertCol(at int, col []rational.Rational) {
	nc := m.c + 1
	buf := make([]rational.Rational, m.r*nc)
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := buf[i*nc : (i+1)*nc]
		copy(dst[:at], src[:at])
		dst[at] = col[i]
		copy(dst[at+1:], src[at:])
	}
	m.data = buf
	m.c = nc
}
