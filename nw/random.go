// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed == 0 to NewRand.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. seed == 0 maps to a fixed
// default so that "no seed" is still reproducible.
//
// math/rand.Rand is not goroutine-safe; do not share one across goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomSequence draws n symbols uniformly from alphabet. A nil alphabet
// draws from DNA.
//
// Errors:
//   - ErrInvalidInput if n <= 0 or rng is nil.
func RandomSequence(rng *rand.Rand, alphabet Alphabet, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: random sequence length %d", ErrInvalidInput, n)
	}
	if rng == nil {
		return "", fmt.Errorf("%w: nil random source", ErrInvalidInput)
	}
	if len(alphabet) == 0 {
		alphabet = DNA
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(out), nil
}
