// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSequenceArgs = errors.New("need two sequences: pass SEQ1 SEQ2, or --seq1-file / --seq2-file for the missing ones")

func newAlignCmd(a *app) *cobra.Command {
	var (
		flags              alignFlags
		seq1File, seq2File string
		keepCase           bool
	)
	cmd := &cobra.Command{
		Use:   "align [SEQ1] [SEQ2]",
		Short: "Align two sequences given inline or as plain-text / FASTA files",
		Example: `  nwalign align GATTACA GCATGCU
  nwalign align --seq1-file query.fa --seq2-file ref.fa --alphabet dna --matrix
  nwalign align ACGT --seq2-file ref.txt --format yaml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("keep-case") {
				cfg.Output.KeepCase = keepCase
			}

			seq1, seq2, err := collectSequences(args, seq1File, seq2File)
			if err != nil {
				return err
			}
			seq1 = normalize(seq1, cfg.Output.KeepCase)
			seq2 = normalize(seq2, cfg.Output.KeepCase)

			return a.run(cmd, cfg, seq1, seq2)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&seq1File, "seq1-file", "", "read seq1 from a plain-text or FASTA file")
	cmd.Flags().StringVar(&seq2File, "seq2-file", "", "read seq2 from a plain-text or FASTA file")
	cmd.Flags().BoolVar(&keepCase, "keep-case", false, "do not upper-case the input sequences")

	return cmd
}

// collectSequences reads file-backed sequences and fills the remaining
// ones from positional arguments in order.
func collectSequences(args []string, seq1File, seq2File string) (string, string, error) {
	var seqs [2]string
	files := [2]string{seq1File, seq2File}
	next := 0
	for i, path := range files {
		if path != "" {
			s, err := readSequence(path)
			if err != nil {
				return "", "", err
			}
			seqs[i] = s
			continue
		}
		if next >= len(args) {
			return "", "", errSequenceArgs
		}
		seqs[i] = args[next]
		next++
	}
	if next != len(args) {
		return "", "", fmt.Errorf("%w (got %d extra argument(s))", errSequenceArgs, len(args)-next)
	}

	return seqs[0], seqs[1], nil
}
