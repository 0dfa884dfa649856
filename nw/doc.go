// SPDX-License-Identifier: MIT

// Package nw computes optimal global alignments between two symbol
// sequences with the Needleman–Wunsch dynamic-programming algorithm.
//
// 🚀 What is global alignment?
//
//	A global alignment accounts for both sequences end to end. Every symbol
//	of seq1 and seq2 appears exactly once in the output, either paired with
//	a symbol of the other sequence (match / mismatch) or with a gap '-'.
//	It is the classic tool for:
//	  • DNA / RNA / protein comparison
//	  • edit-distance style diffs over short tokens
//	  • teaching dynamic programming with provenance
//
// ✨ Key features:
//   - linear gap scoring with three integer weights (match, mismatch, gap)
//   - fixed, documented tie-break: Diagonal > Left > Up
//   - per-cell provenance (Origin enum) instead of predecessor pointers
//   - row-major fill or anti-diagonal wavefront fill (WithParallelFill)
//   - optional alphabet constraint (DNA, RNA, IUPAC, Protein)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/nw"
//
//	res, err := nw.Align("GATTACA", "GCATGCU", nw.DefaultPolicy())
//	if err != nil {
//	  // handle nw.ErrInvalidInput
//	}
//	fmt.Println(res.AlignedSeq1)
//	fmt.Println(res.Midline())
//	fmt.Println(res.AlignedSeq2)
//
// Matrix orientation:
//
//	rows = len(seq2)+1 (row index advances over seq2)
//	cols = len(seq1)+1 (column index advances over seq1)
//
//	          -   s1[0] s1[1] ...
//	   -      0    g     2g
//	  s2[0]   g    .     .
//	  s2[1]   2g   .     .
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (the full matrix is required for traceback)
//
// See example_test.go for runnable walkthroughs.
package nw
