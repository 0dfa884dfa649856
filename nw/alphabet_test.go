package nw_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/nw"
)

// TestParseAlphabet maps names to predefined alphabets.
func TestParseAlphabet(t *testing.T) {
	cases := []struct {
		name string
		want nw.Alphabet
	}{
		{"", nil},
		{"any", nil},
		{"DNA", nw.DNA},
		{" rna ", nw.RNA},
		{"iupac", nw.IUPACNucleotide},
		{"protein", nw.Protein},
	}
	for _, tc := range cases {
		got, err := nw.ParseAlphabet(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := nw.ParseAlphabet("klingon")
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
}

// TestAlphabet_Contains never accepts the gap symbol.
func TestAlphabet_Contains(t *testing.T) {
	var open nw.Alphabet
	assert.True(t, open.Contains('x'))
	assert.False(t, open.Contains(nw.GapSymbol))
	assert.True(t, nw.DNA.Contains('G'))
	assert.False(t, nw.DNA.Contains('U'))
	assert.False(t, nw.DNA.Contains('g'))
}

// TestAlphabet_ValidateMessage reports the offending position.
func TestAlphabet_ValidateMessage(t *testing.T) {
	err := nw.DNA.Validate("seq1", []rune("ACNT"))
	require.ErrorIs(t, err, nw.ErrInvalidInput)
	assert.Contains(t, err.Error(), "position 2")
}

// TestRandomSequence covers determinism, alphabet membership and errors.
func TestRandomSequence(t *testing.T) {
	s, err := nw.RandomSequence(nw.NewRand(9), nw.Protein, 64)
	require.NoError(t, err)
	assert.Len(t, []rune(s), 64)
	for _, r := range s {
		assert.True(t, nw.Protein.Contains(r), "symbol %q", r)
	}

	again, err := nw.RandomSequence(nw.NewRand(9), nw.Protein, 64)
	require.NoError(t, err)
	assert.Equal(t, s, again)

	dna, err := nw.RandomSequence(nw.NewRand(0), nil, 40)
	require.NoError(t, err)
	assert.Empty(t, strings.Trim(dna, "ACGT"), "nil alphabet draws DNA")

	_, err = nw.RandomSequence(nw.NewRand(1), nw.DNA, 0)
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
	_, err = nw.RandomSequence(nil, nw.DNA, 3)
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
}
