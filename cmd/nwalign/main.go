// SPDX-License-Identifier: MIT

// Command nwalign computes Needleman–Wunsch global alignments from the
// command line.
//
//	nwalign align GATTACA GCATGCU --matrix
//	nwalign align --seq1-file a.fasta --seq2-file b.fasta --format yaml
//	nwalign random --len1 34 --len2 32 --seed 7
//	nwalign config init
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
