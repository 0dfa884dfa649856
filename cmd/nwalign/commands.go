// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/cmd/nwalign/config"
	"github.com/katalvlaran/seqalign/nw"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg config.Config
	log *slog.Logger
}

// newRootCmd builds a fresh command tree; tests construct one per case.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nwalign",
		Short: "Global sequence alignment with the Needleman–Wunsch algorithm",
		Long: `nwalign aligns two symbol sequences end to end with a linear gap penalty
and prints one optimal alignment, its score and, optionally, the full
scoring matrix with the traceback path.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newAlignCmd(a), newRandomCmd(a), newConfigCmd(a))

	return root
}

// setup loads the configuration and applies global flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = "never"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	a.log.Debug("configuration loaded", "path", a.configPath, "alphabet", cfg.Alphabet)

	return nil
}

// alignFlags are the per-run overrides shared by align and random.
type alignFlags struct {
	match, mismatch, gap int
	alphabet             string
	workers              int
	matrix               bool
	format               string
	width                int
}

func (f *alignFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.match, "match", nw.DefaultMatch, "score for aligning two equal symbols")
	fs.IntVar(&f.mismatch, "mismatch", nw.DefaultMismatch, "score for aligning two different symbols")
	fs.IntVar(&f.gap, "gap", nw.DefaultGap, "score for aligning a symbol against a gap")
	fs.StringVar(&f.alphabet, "alphabet", "", "restrict input symbols: any, dna, rna, iupac, protein")
	fs.IntVar(&f.workers, "workers", 0, "fill anti-diagonals in parallel with N workers (0 = GOMAXPROCS)")
	fs.BoolVar(&f.matrix, "matrix", false, "print the scoring matrix with the traceback path")
	fs.StringVar(&f.format, "format", "", "output format: text or yaml")
	fs.IntVar(&f.width, "width", 0, "wrap text alignments every N columns (0 = config default)")
}

// apply copies explicitly set flags over cfg and re-validates it.
func (f *alignFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("match") {
		cfg.Scoring.Match = f.match
	}
	if fs.Changed("mismatch") {
		cfg.Scoring.Mismatch = f.mismatch
	}
	if fs.Changed("gap") {
		cfg.Scoring.Gap = f.gap
	}
	if fs.Changed("alphabet") {
		cfg.Alphabet = f.alphabet
	}
	if fs.Changed("workers") {
		cfg.Fill.Parallel = true
		cfg.Fill.Workers = f.workers
	}
	if fs.Changed("matrix") {
		cfg.Output.Matrix = f.matrix
	}
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("width") {
		cfg.Output.Width = f.width
	}

	return cfg.Validate()
}

// run aligns seq1 against seq2 under cfg and renders the report.
func (a *app) run(cmd *cobra.Command, cfg config.Config, seq1, seq2 string) error {
	opts, err := cfg.AlignOptions()
	if err != nil {
		return err
	}
	aligner := nw.NewAligner(cfg.Scoring, opts...)

	a.log.Debug("aligning",
		"len1", len([]rune(seq1)),
		"len2", len([]rune(seq2)),
		"policy", fmt.Sprintf("%+v", cfg.Scoring),
		"parallel", cfg.Fill.Parallel,
		"workers", cfg.Fill.Workers)

	start := time.Now()
	res, m, err := aligner.AlignWithMatrix(cmd.Context(), seq1, seq2)
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}
	a.log.Info("alignment complete",
		"score", res.Score,
		"columns", len([]rune(res.AlignedSeq1)),
		"elapsed", time.Since(start))

	return render(cmd.OutOrStdout(), cfg.Output, res, m)
}
