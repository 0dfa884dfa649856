// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"slices"
	"strings"
)

// Walk reconstructs one optimal alignment from a filled matrix.
//
// Algorithm:
//  1. Start at (rows-1, cols-1).
//  2. Follow the cell's Origin:
//     Diagonal → emit (seq1[col-1], seq2[row-1]); move to (row-1, col-1)
//     Up       → emit (seq1[col-1], '-');        move to (row,   col-1)
//     Left     → emit ('-', seq2[row-1]);        move to (row-1, col)
//  3. Stop at (0,0).
//  4. Pairs were collected terminal → origin; reverse once for reading order.
//
// Walk reads the matrix only; it advances the phase from PhaseFilled to
// PhaseTraced and cannot be repeated on the same matrix.
//
// Errors:
//   - ErrInvalidInput for a nil matrix.
//   - ErrOutOfOrder unless the matrix is in PhaseFilled.
//   - ErrCorruptState if the walk exceeds rows+cols-2 steps, meets a cell
//     without a usable Origin, or would step outside the grid.
//
// Complexity: O(rows+cols) time and memory.
func Walk(m *Matrix) (Trace, error) {
	if m == nil {
		return Trace{}, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	if m.phase != PhaseFilled {
		return Trace{}, fmt.Errorf("%w: Walk in phase %s", ErrOutOfOrder, m.phase)
	}

	limit := m.rows + m.cols - 2
	pairs := make([]Pair, 0, limit)
	path := make([]Coord, 0, limit+1)

	row, col := m.rows-1, m.cols-1
	path = append(path, Coord{Row: row, Col: col})
	for row != 0 || col != 0 {
		if len(pairs) >= limit {
			return Trace{}, fmt.Errorf("%w: walk exceeded %d steps at (%d,%d)", ErrCorruptState, limit, row, col)
		}

		origin := m.cells[m.idx(row, col)].Origin
		switch {
		case origin == OriginDiagonal && row > 0 && col > 0:
			pairs = append(pairs, Pair{A: m.seq1[col-1], B: m.seq2[row-1]})
			row, col = row-1, col-1
		case origin == OriginUp && col > 0:
			pairs = append(pairs, Pair{A: m.seq1[col-1], B: GapSymbol})
			col--
		case origin == OriginLeft && row > 0:
			pairs = append(pairs, Pair{A: GapSymbol, B: m.seq2[row-1]})
			row--
		default:
			return Trace{}, fmt.Errorf("%w: origin %s at (%d,%d)", ErrCorruptState, origin, row, col)
		}
		path = append(path, Coord{Row: row, Col: col})
	}

	slices.Reverse(pairs)
	slices.Reverse(path)
	m.phase = PhaseTraced

	return Trace{Pairs: pairs, Path: path}, nil
}

// Split turns the aligned columns into the two aligned sequences.
// Both outputs have len(t.Pairs) runes.
func (t Trace) Split() (alignedSeq1, alignedSeq2 string) {
	var a, b strings.Builder
	a.Grow(len(t.Pairs))
	b.Grow(len(t.Pairs))
	for _, p := range t.Pairs {
		a.WriteRune(p.A)
		b.WriteRune(p.B)
	}

	return a.String(), b.String()
}
