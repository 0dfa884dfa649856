// SPDX-License-Identifier: MIT

package nw

// GapSymbol is emitted in an aligned sequence wherever the other sequence
// contributes a symbol that has no partner. It is never a valid input symbol.
const GapSymbol = '-'

// Default weights of DefaultPolicy.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultGap      = -2
)

// ScoringPolicy holds the three weights used by every cell computation.
// It is fixed for the lifetime of one alignment run.
type ScoringPolicy struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Gap      int `yaml:"gap"`
}

// DefaultPolicy returns match=1, mismatch=-1, gap=-2.
func DefaultPolicy() ScoringPolicy {
	return ScoringPolicy{
		Match:    DefaultMatch,
		Mismatch: DefaultMismatch,
		Gap:      DefaultGap,
	}
}

// Substitution returns the diagonal-step weight for aligning a against b.
func (p ScoringPolicy) Substitution(a, b rune) int {
	if a == b {
		return p.Match
	}

	return p.Mismatch
}

// Origin records which recurrence term produced a cell's score. Each value
// also fixes the traceback step taken out of the cell:
//
//   - OriginDiagonal: pair (seq1[col-1], seq2[row-1]), step to (row-1, col-1).
//   - OriginUp      : pair (seq1[col-1], '-'),        step to (row,   col-1).
//   - OriginLeft    : pair ('-', seq2[row-1]),        step to (row-1, col).
//   - OriginNone    : only the (0,0) cell; the walk stops there.
type Origin uint8

const (
	// OriginNone marks the origin cell (0,0).
	OriginNone Origin = iota
	// OriginUp consumes a symbol of seq1 against a gap.
	OriginUp
	// OriginDiagonal consumes one symbol of each sequence.
	OriginDiagonal
	// OriginLeft consumes a symbol of seq2 against a gap.
	OriginLeft
)

// String returns a short human-readable name.
func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginUp:
		return "up"
	case OriginDiagonal:
		return "diagonal"
	case OriginLeft:
		return "left"
	default:
		return "invalid"
	}
}

// Arrow returns a one-character glyph for matrix renderings.
func (o Origin) Arrow() string {
	switch o {
	case OriginUp:
		return "←"
	case OriginDiagonal:
		return "↖"
	case OriginLeft:
		return "↑"
	default:
		return "·"
	}
}

// Cell is one entry of the alignment matrix.
type Cell struct {
	Score  int
	Origin Origin
	Row    int
	Col    int
}

// Coord addresses a matrix cell.
type Coord struct {
	Row, Col int
}

// Pair is one column of an alignment: A comes from seq1, B from seq2.
// Either side may be GapSymbol, never both.
type Pair struct {
	A, B rune
}

// Phase is the lifecycle state of a Matrix.
//
//	Uninitialized → BordersSet → Filled → Traced → Done
//
// No transition is reentrant; a new run requires a fresh Matrix.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseBordersSet
	PhaseFilled
	PhaseTraced
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseBordersSet:
		return "borders-set"
	case PhaseFilled:
		return "filled"
	case PhaseTraced:
		return "traced"
	case PhaseDone:
		return "done"
	default:
		return "invalid"
	}
}

// Trace is the output of Walk, in reading order (origin → terminal).
//
// Pairs holds one aligned column per step. Path holds the visited cells,
// starting at (0,0) and ending at (rows-1, cols-1); len(Path) == len(Pairs)+1.
type Trace struct {
	Pairs []Pair
	Path  []Coord
}

// Result is the outcome of one alignment run.
type Result struct {
	// Score is matrix[rows-1][cols-1].score.
	Score int `yaml:"score"`

	// AlignedSeq1 and AlignedSeq2 have equal rune length. Removing every
	// GapSymbol from either reproduces the corresponding input.
	AlignedSeq1 string `yaml:"aligned_seq1"`
	AlignedSeq2 string `yaml:"aligned_seq2"`

	// Path lists the traceback cells from (0,0) to (rows-1, cols-1).
	Path []Coord `yaml:"-"`
}

// Stats summarizes an alignment column by column.
type Stats struct {
	Length     int     `yaml:"length"`
	Matches    int     `yaml:"matches"`
	Mismatches int     `yaml:"mismatches"`
	Gaps       int     `yaml:"gaps"`
	Identity   float64 `yaml:"identity"`
}
