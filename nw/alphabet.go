// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"strings"
)

// Alphabet constrains the symbols an input sequence may contain.
// A nil Alphabet accepts any symbol except GapSymbol.
type Alphabet []rune

// Predefined alphabets. Matching is case-sensitive.
var (
	// DNA is the four canonical nucleotides.
	DNA = Alphabet("ACGT")

	// RNA replaces thymine with uracil.
	RNA = Alphabet("ACGU")

	// IUPACNucleotide adds the ambiguity codes to DNA and RNA.
	IUPACNucleotide = Alphabet("ACGTURYSWKMBDHVN")

	// Protein is the 20 standard amino acids plus B, Z, X and the stop '*'.
	Protein = Alphabet("ACDEFGHIKLMNPQRSTVWYBZX*")
)

// AlphabetNames lists the names accepted by ParseAlphabet.
var AlphabetNames = []string{"any", "dna", "rna", "iupac", "protein"}

// ParseAlphabet maps a name to a predefined Alphabet. "any" and the empty
// string return nil (unconstrained).
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any":
		return nil, nil
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "iupac":
		return IUPACNucleotide, nil
	case "protein":
		return Protein, nil
	default:
		return nil, fmt.Errorf("%w: unknown alphabet %q (want one of %s)",
			ErrInvalidInput, name, strings.Join(AlphabetNames, ", "))
	}
}

// Contains reports whether r belongs to the alphabet. A nil alphabet
// contains every rune except GapSymbol.
func (a Alphabet) Contains(r rune) bool {
	if r == GapSymbol {
		return false
	}
	if a == nil {
		return true
	}
	for _, s := range a {
		if s == r {
			return true
		}
	}

	return false
}

// Validate checks a decoded sequence. name labels the sequence in the error.
func (a Alphabet) Validate(name string, seq []rune) error {
	if len(seq) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	for i, r := range seq {
		if !a.Contains(r) {
			return fmt.Errorf("%w: %s has symbol %q at position %d", ErrInvalidInput, name, r, i)
		}
	}

	return nil
}
