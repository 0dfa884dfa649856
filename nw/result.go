// SPDX-License-Identifier: MIT

package nw

import "strings"

// Midline returns the line printed between the two aligned sequences:
// '|' under a match, ' ' under a mismatch or a gap.
func (r Result) Midline() string {
	a, b := []rune(r.AlignedSeq1), []rune(r.AlignedSeq2)
	var sb strings.Builder
	sb.Grow(len(a))
	for i := range a {
		if i < len(b) && a[i] == b[i] && a[i] != GapSymbol {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// Stats counts matches, mismatches and gap columns.
// Identity is Matches/Length, or 0 for an empty alignment.
func (r Result) Stats() Stats {
	a, b := []rune(r.AlignedSeq1), []rune(r.AlignedSeq2)
	var s Stats
	s.Length = len(a)
	for i := range a {
		if i >= len(b) {
			break
		}
		switch {
		case a[i] == GapSymbol || b[i] == GapSymbol:
			s.Gaps++
		case a[i] == b[i]:
			s.Matches++
		default:
			s.Mismatches++
		}
	}
	if s.Length > 0 {
		s.Identity = float64(s.Matches) / float64(s.Length)
	}

	return s
}
