// SPDX-License-Identifier: MIT

package matrix

import "iter"

// All returns a lazy sequence of the entries of m in row-major order:
// row 0 left to right, then row 1, and so on. The sequence is finite and
// restartable; each range over it starts again from (0, 0).
//
//	for v := range m.All() {
//		sum += v
//	}
//
// Values are read at iteration time, so writes made between steps are seen.
func (m *Dense) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for idx := 0; idx < len(m.data); idx++ {
			if !yield(m.data[idx]) {
				return
			}
		}
	}
}

// Entries is All with coordinates attached.
func (m *Dense) Entries() iter.Seq2[Index, float64] {
	return func(yield func(Index, float64) bool) {
		var i, j, base int
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				if !yield(Index{Row: i, Col: j}, m.data[base+j]) {
					return
				}
			}
		}
	}
}

// RowValues yields a copy of each row in order. Mutating a yielded slice
// does not affect m.
func (m *Dense) RowValues() iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for i := 0; i < m.r; i++ {
			row := make([]float64, m.c)
			copy(row, m.data[i*m.c:(i+1)*m.c])
			if !yield(row) {
				return
			}
		}
	}
}
