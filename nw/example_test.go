package nw_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/seqalign/nw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	seq1 = ACGT, seq2 = AGT with match=1, mismatch=-1, gap=-2.
//	The best alignment deletes C: three matches and one gap ⇒ 3·1 − 2 = 1.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	res, err := nw.Align("ACGT", "AGT", nw.DefaultPolicy())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.AlignedSeq1)
	fmt.Println(res.Midline())
	fmt.Println(res.AlignedSeq2)
	fmt.Printf("score=%d identity=%.2f\n", res.Score, res.Stats().Identity)
	// Output:
	// ACGT
	// | ||
	// A-GT
	// score=1 identity=0.75
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAligner_AlignWithMatrix
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Keep the filled matrix to print it next to the traceback path.
//	Rows follow seq2, columns follow seq1.
func ExampleAligner_AlignWithMatrix() {
	a := nw.NewAligner(nw.DefaultPolicy(), nw.WithAlphabet(nw.DNA))
	res, m, err := a.AlignWithMatrix(context.Background(), "AC", "AC")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range m.Scores() {
		fmt.Println(row)
	}
	fmt.Println("path:", res.Path)
	// Output:
	// [0 -2 -4]
	// [-2 1 -1]
	// [-4 -1 2]
	// path: [{0 0} {1 1} {2 2}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_tieBreak
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A mismatch of -5 makes both gap directions tie at the last cell.
//	Left (gap in seq1) wins over Up (gap in seq2), so the result is stable.
func ExampleAlign_tieBreak() {
	p := nw.ScoringPolicy{Match: 1, Mismatch: -5, Gap: -2}
	res, _ := nw.Align("AC", "CA", p)
	fmt.Printf("%s\n%s\nscore=%d\n", res.AlignedSeq1, res.AlignedSeq2, res.Score)
	// Output:
	// AC-
	// -CA
	// score=-3
}

// ExampleRandomSequence shows reproducible random inputs.
func ExampleRandomSequence() {
	a, _ := nw.RandomSequence(nw.NewRand(5), nw.DNA, 12)
	b, _ := nw.RandomSequence(nw.NewRand(5), nw.DNA, 12)
	fmt.Println(len(a), a == b)
	// Output:
	// 12 true
}
