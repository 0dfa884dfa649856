// SPDX-License-Identifier: MIT

// Package seqalign is a small toolkit for global pairwise sequence
// alignment: the Needleman–Wunsch algorithm with a linear gap penalty,
// an inspectable scoring matrix and a command-line front end.
//
// 🚀 What is inside?
//
//	nw/           - scoring policy, alphabets, matrix lifecycle, traceback,
//	                one-call Align / Aligner, wavefront parallel fill
//	cmd/nwalign/  - CLI: align inline or FASTA input, random demo runs,
//	                YAML configuration
//	examples/     - a runnable walkthrough of the library API
//
// Quick ASCII example (match=+1, mismatch=-1, gap=-2):
//
//	seq1  ACGT
//	      | ||
//	seq2  A-GT      score 1
//
//	go get github.com/katalvlaran/seqalign/nw
package seqalign
