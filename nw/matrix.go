// SPDX-License-Identifier: MIT

package nw

import (
	"context"
	"fmt"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of an anti-diagonal handed to one goroutine.
// Shorter diagonals are filled inline by the scheduling goroutine.
const minChunk = 64

// Matrix is the (len(seq2)+1) × (len(seq1)+1) table of cumulative optimal
// scores plus the chosen predecessor direction of every cell.
//
// A Matrix is owned by exactly one run. It is written only by
// InitializeBorders and the fill methods, and is read-only afterwards.
// It is not safe for concurrent use by multiple callers.
type Matrix struct {
	seq1, seq2 []rune
	policy     ScoringPolicy

	rows, cols int
	cells      []Cell // row-major, len = rows*cols
	filled     []bool // interior bookkeeping for FillCell
	pending    int    // interior cells not yet filled via FillCell

	phase Phase
}

// NewMatrix validates both sequences and allocates an uninitialized matrix.
// Only WithAlphabet is relevant here; other options are ignored.
//
// Errors:
//   - ErrInvalidInput if a sequence is empty, is not valid UTF-8, contains
//     GapSymbol, or has a symbol outside the configured alphabet.
func NewMatrix(seq1, seq2 string, policy ScoringPolicy, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if !utf8.ValidString(seq1) {
		return nil, fmt.Errorf("%w: seq1 is not valid UTF-8", ErrInvalidInput)
	}
	if !utf8.ValidString(seq2) {
		return nil, fmt.Errorf("%w: seq2 is not valid UTF-8", ErrInvalidInput)
	}

	s1, s2 := []rune(seq1), []rune(seq2)
	if err := o.alphabet.Validate("seq1", s1); err != nil {
		return nil, err
	}
	if err := o.alphabet.Validate("seq2", s2); err != nil {
		return nil, err
	}

	rows, cols := len(s2)+1, len(s1)+1
	m := &Matrix{
		seq1:    s1,
		seq2:    s2,
		policy:  policy,
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, rows*cols),
		filled:  make([]bool, rows*cols),
		pending: (rows - 1) * (cols - 1),
		phase:   PhaseUninitialized,
	}

	return m, nil
}

// Rows returns len(seq2)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns len(seq1)+1.
func (m *Matrix) Cols() int { return m.cols }

// Seq1 returns the sequence laid out along the columns.
func (m *Matrix) Seq1() string { return string(m.seq1) }

// Seq2 returns the sequence laid out along the rows.
func (m *Matrix) Seq2() string { return string(m.seq2) }

// Policy returns the weights of this run.
func (m *Matrix) Policy() ScoringPolicy { return m.policy }

// Phase returns the current lifecycle state.
func (m *Matrix) Phase() Phase { return m.phase }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) (Cell, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}

	return m.cells[m.idx(i, j)], nil
}

// Score returns the terminal cell's score, or 0 while the matrix has not
// reached PhaseFilled (including the zero Matrix).
func (m *Matrix) Score() int {
	if m.phase < PhaseFilled || m.rows == 0 {
		return 0
	}

	return m.cells[m.idx(m.rows-1, m.cols-1)].Score
}

// Scores copies the score grid into a fresh [][]int (rows × cols).
func (m *Matrix) Scores() [][]int {
	out := make([][]int, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]int, m.cols)
		for j := 0; j < m.cols; j++ {
			out[i][j] = m.cells[m.idx(i, j)].Score
		}
	}

	return out
}

// InitializeBorders sets row 0 and column 0:
//
//	[0][0] = {0, None}
//	[0][j] = {j*gap, Up}  : step (0,j) → (0,j-1), seq1 symbol against a gap
//	[i][0] = {i*gap, Left}: step (i,0) → (i-1,0), seq2 symbol against a gap
//
// Errors:
//   - ErrInvalidInput if either sequence is empty.
//   - ErrOutOfOrder if the borders were already set.
func (m *Matrix) InitializeBorders() error {
	if m.rows < 2 || m.cols < 2 {
		return fmt.Errorf("%w: both sequences must be non-empty", ErrInvalidInput)
	}
	if m.phase != PhaseUninitialized {
		return fmt.Errorf("%w: InitializeBorders in phase %s", ErrOutOfOrder, m.phase)
	}

	gap := m.policy.Gap
	m.cells[0] = Cell{Score: 0, Origin: OriginNone}
	m.filled[0] = true
	for j := 1; j < m.cols; j++ {
		k := m.idx(0, j)
		m.cells[k] = Cell{Score: j * gap, Origin: OriginUp, Row: 0, Col: j}
		m.filled[k] = true
	}
	for i := 1; i < m.rows; i++ {
		k := m.idx(i, 0)
		m.cells[k] = Cell{Score: i * gap, Origin: OriginLeft, Row: i, Col: 0}
		m.filled[k] = true
	}
	m.phase = PhaseBordersSet

	return nil
}

// FillCell computes the interior cell (i, j):
//
//	up   = [i][j-1] + gap
//	left = [i-1][j] + gap
//	diag = [i-1][j-1] + (match if seq1[j-1]==seq2[i-1] else mismatch)
//
// The cell keeps max(up, left, diag). Ties resolve Diagonal > Left > Up, so a
// substitution is preferred over a gap and a seq2-gap step over a seq1-gap step.
//
// FillCell lets callers drive any dependency-respecting order. Once every
// interior cell has been filled the matrix moves to PhaseFilled.
//
// Errors:
//   - ErrOutOfRange for a border or out-of-grid index.
//   - ErrOutOfOrder outside PhaseBordersSet or when a neighbour is not filled.
func (m *Matrix) FillCell(i, j int) error {
	if m.phase != PhaseBordersSet {
		return fmt.Errorf("%w: FillCell in phase %s", ErrOutOfOrder, m.phase)
	}
	if i < 1 || i >= m.rows || j < 1 || j >= m.cols {
		return fmt.Errorf("%w: interior cell (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	if !m.filled[m.idx(i, j-1)] || !m.filled[m.idx(i-1, j)] || !m.filled[m.idx(i-1, j-1)] {
		return fmt.Errorf("%w: neighbours of (%d,%d) not filled", ErrOutOfOrder, i, j)
	}

	k := m.idx(i, j)
	fresh := !m.filled[k]
	m.fillCell(i, j)
	if fresh {
		m.pending--
		if m.pending == 0 {
			m.phase = PhaseFilled
		}
	}

	return nil
}

// Fill computes every interior cell in row-major order. Row-major order
// guarantees that the up, left and diagonal neighbours of (i, j) are done.
//
// Errors:
//   - ErrOutOfOrder unless the matrix is in PhaseBordersSet.
func (m *Matrix) Fill() error {
	if m.phase != PhaseBordersSet {
		return fmt.Errorf("%w: Fill in phase %s", ErrOutOfOrder, m.phase)
	}
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			m.fillCell(i, j)
		}
	}
	m.markFilled()

	return nil
}

// FillParallel computes every interior cell along anti-diagonals i+j == k
// for increasing k. Cells on one anti-diagonal only depend on smaller k, so
// they are split into chunks and filled concurrently by at most workers
// goroutines; diagonal k+1 starts after diagonal k is complete.
//
// workers <= 0 uses runtime.GOMAXPROCS(0). ctx is checked between
// diagonals and before each chunk. On cancellation the interior is marked
// unfilled again, the matrix stays in PhaseBordersSet and the context error
// is returned; FillCell, Fill or FillParallel may then start over.
//
// The resulting matrix is identical to the one produced by Fill.
func (m *Matrix) FillParallel(ctx context.Context, workers int) error {
	if m.phase != PhaseBordersSet {
		return fmt.Errorf("%w: FillParallel in phase %s", ErrOutOfOrder, m.phase)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	lastK := (m.rows - 1) + (m.cols - 1)
	for k := 2; k <= lastK; k++ {
		if err := ctx.Err(); err != nil {
			m.resetInterior()

			return fmt.Errorf("nw: fill interrupted at diagonal %d: %w", k, err)
		}

		lo := max(1, k-(m.cols-1))
		hi := min(m.rows-1, k-1)
		n := hi - lo + 1
		if workers == 1 || n < 2*minChunk {
			m.fillDiagonal(k, lo, hi)
			continue
		}

		chunk := max(minChunk, (n+workers-1)/workers)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for start := lo; start <= hi; start += chunk {
			start := start
			end := min(hi, start+chunk-1)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				m.fillDiagonal(k, start, end)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			m.resetInterior()

			return fmt.Errorf("nw: fill interrupted at diagonal %d: %w", k, err)
		}
	}
	m.markFilled()

	return nil
}

// fillDiagonal fills cells (i, k-i) for i in [lo, hi].
func (m *Matrix) fillDiagonal(k, lo, hi int) {
	for i := lo; i <= hi; i++ {
		m.fillCell(i, k-i)
	}
}

// fillCell applies the recurrence and marks the cell filled; pending is left
// to the caller. Concurrent calls are safe as long as they target distinct
// cells whose neighbours are complete.
func (m *Matrix) fillCell(i, j int) {
	gap := m.policy.Gap
	up := m.cells[m.idx(i, j-1)].Score + gap
	left := m.cells[m.idx(i-1, j)].Score + gap
	diag := m.cells[m.idx(i-1, j-1)].Score + m.policy.Substitution(m.seq1[j-1], m.seq2[i-1])

	best, origin := diag, OriginDiagonal
	if left > best {
		best, origin = left, OriginLeft
	}
	if up > best {
		best, origin = up, OriginUp
	}

	k := m.idx(i, j)
	m.cells[k] = Cell{Score: best, Origin: origin, Row: i, Col: j}
	m.filled[k] = true
}

// resetInterior drops the fill bookkeeping of every interior cell.
func (m *Matrix) resetInterior() {
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			m.filled[m.idx(i, j)] = false
		}
	}
	m.pending = (m.rows - 1) * (m.cols - 1)
}

func (m *Matrix) markFilled() {
	m.pending = 0
	m.phase = PhaseFilled
}

func (m *Matrix) idx(i, j int) int { return i*m.cols + j }
