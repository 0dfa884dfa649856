// SPDX-License-Identifier: MIT

package nw

import "errors"

// Every message is prefixed with "nw: ". Callers match with errors.Is; the
// package wraps these sentinels with fmt.Errorf("...: %w", ErrX) when the
// position or symbol is useful context.
var (
	// ErrInvalidInput indicates an empty or non-UTF-8 sequence, a symbol outside the
	// configured alphabet, the reserved gap symbol inside an input sequence,
	// or a non-positive length requested from RandomSequence.
	ErrInvalidInput = errors.New("nw: invalid input")

	// ErrCorruptState signals that the traceback could not reach the origin
	// cell within rows+cols-2 steps, met a cell without provenance, or
	// stepped outside the grid. It is never expected under a correct fill.
	ErrCorruptState = errors.New("nw: corrupt traceback state")

	// ErrOutOfRange indicates that a row or column index passed to At or
	// FillCell is outside the matrix, or addresses a border cell where an
	// interior cell is required.
	ErrOutOfRange = errors.New("nw: index out of range")

	// ErrOutOfOrder indicates that a matrix lifecycle step was invoked in the
	// wrong phase (e.g., Fill before InitializeBorders, or a second Fill).
	ErrOutOfOrder = errors.New("nw: operation out of order")
)
