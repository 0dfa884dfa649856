// SPDX-License-Identifier: MIT

package nw

import "context"

// Aligner runs global alignments with a fixed policy and option set.
// Each call owns a fresh Matrix, so an Aligner is safe for concurrent use.
type Aligner struct {
	policy ScoringPolicy
	opts   []Option
	cfg    options
}

// NewAligner returns an Aligner for policy. Options are resolved once.
func NewAligner(policy ScoringPolicy, opts ...Option) *Aligner {
	return &Aligner{
		policy: policy,
		opts:   opts,
		cfg:    gatherOptions(opts...),
	}
}

// Policy returns the weights used by every run.
func (a *Aligner) Policy() ScoringPolicy { return a.policy }

// Align computes the optimal global alignment of seq1 against seq2.
func (a *Aligner) Align(seq1, seq2 string) (Result, error) {
	res, _, err := a.run(context.Background(), seq1, seq2)

	return res, err
}

// AlignContext is Align with a context for the parallel fill.
func (a *Aligner) AlignContext(ctx context.Context, seq1, seq2 string) (Result, error) {
	res, _, err := a.run(ctx, seq1, seq2)

	return res, err
}

// AlignWithMatrix is Align that also returns the filled, read-only matrix
// (in PhaseDone), e.g. for rendering.
func (a *Aligner) AlignWithMatrix(ctx context.Context, seq1, seq2 string) (Result, *Matrix, error) {
	return a.run(ctx, seq1, seq2)
}

// run executes one run:
//
//	validate → NewMatrix → InitializeBorders → Fill → score → Walk → split
//
// Errors from each stage propagate unchanged; there is no partial result.
func (a *Aligner) run(ctx context.Context, seq1, seq2 string) (Result, *Matrix, error) {
	m, err := NewMatrix(seq1, seq2, a.policy, a.opts...)
	if err != nil {
		return Result{}, nil, err
	}
	if err = m.InitializeBorders(); err != nil {
		return Result{}, nil, err
	}

	if a.cfg.parallel {
		err = m.FillParallel(ctx, a.cfg.workers)
	} else {
		err = m.Fill()
	}
	if err != nil {
		return Result{}, nil, err
	}

	score := m.Score()
	trace, err := Walk(m)
	if err != nil {
		return Result{}, nil, err
	}
	aligned1, aligned2 := trace.Split()
	m.phase = PhaseDone

	return Result{
		Score:       score,
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Path:        trace.Path,
	}, m, nil
}

// Align is the one-shot entry point: NewAligner(policy, opts...).Align(seq1, seq2).
//
// Example:
//
//	res, err := nw.Align("AC", "AC", nw.DefaultPolicy())
//	// res.Score == 2, res.AlignedSeq1 == "AC", res.AlignedSeq2 == "AC"
func Align(seq1, seq2 string, policy ScoringPolicy, opts ...Option) (Result, error) {
	return NewAligner(policy, opts...).Align(seq1, seq2)
}

// AlignContext is Align with a context for the parallel fill.
func AlignContext(ctx context.Context, seq1, seq2 string, policy ScoringPolicy, opts ...Option) (Result, error) {
	return NewAligner(policy, opts...).AlignContext(ctx, seq1, seq2)
}
