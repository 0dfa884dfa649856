// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/cmd/nwalign/config"
	"github.com/katalvlaran/seqalign/nw"
)

// execute runs a fresh command tree with args and returns stdout, stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestAlign_TextReport(t *testing.T) {
	out, _, err := execute(t, "align", "--no-color", "ACGT", "agt")
	require.NoError(t, err)

	want := "seq1  ACGT\n" +
		"      | ||\n" +
		"seq2  A-GT\n" +
		"\n" +
		"score     1\n" +
		"length 4  matches 3  mismatches 0  gaps 1  identity 75.0%\n"
	assert.Equal(t, want, out)
}

func TestAlign_KeepCase(t *testing.T) {
	out, _, err := execute(t, "align", "--no-color", "--keep-case", "ac", "AC")
	require.NoError(t, err)
	assert.Contains(t, out, "seq1  ac\n")
	assert.Contains(t, out, "score     -2\n")
}

func TestAlign_MatrixTable(t *testing.T) {
	out, _, err := execute(t, "align", "--no-color", "--matrix", "ACGT", "AGT")
	require.NoError(t, err)

	table := "    -   A   C   G   T\n" +
		"-   0* -2  -4  -6  -8\n" +
		"A  -2   1* -1* -3  -5\n" +
		"G  -4  -1   0   0* -2\n" +
		"T  -6  -3  -2  -1   1*\n"
	assert.True(t, strings.HasPrefix(out, table+"\n"), "got:\n%s", out)
	assert.Contains(t, out, "seq2  A-GT\n")
}

func TestAlign_ScoringFlags(t *testing.T) {
	out, _, err := execute(t, "align", "--no-color", "--match", "1", "--mismatch", "-5", "--gap", "-2", "AC", "CA")
	require.NoError(t, err)
	assert.Contains(t, out, "seq1  AC-\n")
	assert.Contains(t, out, "seq2  -CA\n")
	assert.Contains(t, out, "score     -3\n")
}

func TestAlign_ParallelMatchesSerial(t *testing.T) {
	rng := nw.NewRand(11)
	s1, err := nw.RandomSequence(rng, nw.DNA, 300)
	require.NoError(t, err)
	s2, err := nw.RandomSequence(rng, nw.DNA, 280)
	require.NoError(t, err)

	serial, _, err := execute(t, "align", "--no-color", s1, s2)
	require.NoError(t, err)
	parallel, _, err := execute(t, "align", "--no-color", "--workers", "4", s1, s2)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestAlign_YAMLReport(t *testing.T) {
	out, _, err := execute(t, "align", "--format", "yaml", "--matrix", "ACGT", "AGT")
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "ACGT", rep.Seq1)
	assert.Equal(t, "AGT", rep.Seq2)
	assert.Equal(t, nw.DefaultPolicy(), rep.Policy)
	assert.Equal(t, 1, rep.Score)
	assert.Equal(t, "ACGT", rep.AlignedSeq1)
	assert.Equal(t, "| ||", rep.Midline)
	assert.Equal(t, "A-GT", rep.AlignedSeq2)
	assert.Equal(t, nw.Stats{Length: 4, Matches: 3, Gaps: 1, Identity: 0.75}, rep.Stats)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {3, 4}}, rep.Path)
	assert.Equal(t, [][]int{
		{0, -2, -4, -6, -8},
		{-2, 1, -1, -3, -5},
		{-4, -1, 0, 0, -2},
		{-6, -3, -2, -1, 1},
	}, rep.Matrix)
}

func TestAlign_SequenceFiles(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "a.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">query\nAC\nGT\n>second\nTTTT\n"), 0o644))

	out, _, err := execute(t, "align", "--no-color", "--seq1-file", fa, "AGT")
	require.NoError(t, err)
	assert.Contains(t, out, "seq1  ACGT\n")
	assert.Contains(t, out, "seq2  A-GT\n")

	txt := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(txt, []byte("a g\nt\n"), 0o644))
	out, _, err = execute(t, "align", "--no-color", "--seq1-file", fa, "--seq2-file", txt)
	require.NoError(t, err)
	assert.Contains(t, out, "score     1\n")
}

func TestAlign_Errors(t *testing.T) {
	_, _, err := execute(t, "align", "ACGT")
	assert.ErrorIs(t, err, errSequenceArgs)

	_, _, err = execute(t, "align", "--seq1-file", filepath.Join(t.TempDir(), "none.fa"), "A", "C")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "align", "--alphabet", "dna", "ACGU", "ACGT")
	assert.ErrorIs(t, err, nw.ErrInvalidInput)

	_, _, err = execute(t, "align", "--alphabet", "klingon", "A", "C")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "align", "--format", "json", "A", "C")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "align", "--workers", "-1", "A", "C")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "align", "A-C", "AC")
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
}

func TestAlign_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nwalign.yaml")
	body := "scoring:\n  match: 1\n  mismatch: -5\n  gap: -2\noutput:\n  color: never\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, _, err := execute(t, "--config", path, "align", "AC", "CA")
	require.NoError(t, err)
	assert.Contains(t, out, "score     -3\n")

	// Explicit flags win over the file.
	out, _, err = execute(t, "--config", path, "align", "--mismatch", "-1", "AC", "CA")
	require.NoError(t, err)
	assert.Contains(t, out, "score     -2\n")
}

func TestAlign_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "align", "--no-color", "A", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=aligning")
	assert.Contains(t, stderr, "msg=\"alignment complete\"")

	_, stderr, err = execute(t, "align", "--no-color", "A", "A")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	first, _, err := execute(t, "random", "--no-color", "--seed", "7", "--len1", "20", "--len2", "18")
	require.NoError(t, err)
	second, _, err := execute(t, "random", "--no-color", "--seed", "7", "--len1", "20", "--len2", "18")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(first, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "seed  7", lines[0])
	assert.Len(t, strings.TrimPrefix(lines[1], "in1   "), 20)
	assert.Len(t, strings.TrimPrefix(lines[2], "in2   "), 18)
	assert.Contains(t, first, "score     ")
}

func TestRandom_YAMLUsesAlphabet(t *testing.T) {
	out, _, err := execute(t, "random", "--format", "yaml", "--seed", "3", "--alphabet", "rna", "--len1", "40", "--len2", "35")
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Seq1, 40)
	assert.Len(t, rep.Seq2, 35)
	for _, r := range rep.Seq1 + rep.Seq2 {
		assert.True(t, nw.RNA.Contains(r), "symbol %q outside RNA", r)
	}
	assert.Equal(t, len(rep.AlignedSeq1), len(rep.AlignedSeq2))
}

func TestRandom_InvalidLength(t *testing.T) {
	_, _, err := execute(t, "random", "--len1", "0")
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
}

func TestConfig_InitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "nwalign.yaml")

	out, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	_, _, err = execute(t, "config", "init", path)
	assert.ErrorIs(t, err, os.ErrExist)

	_, _, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	out, _, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.Default(), got)

	out, _, err = execute(t, "--config", path, "--log-level", "error", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "level: error")
}
