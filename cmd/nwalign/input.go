// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// errNoSequence is returned when an input yields no symbols.
var errNoSequence = errors.New("no sequence data")

// maxLineBytes bounds a single input line (unwrapped FASTA can be long).
const maxLineBytes = 64 << 20

// readSequence loads the first record of a FASTA file, or the whole file
// when it has no '>' header. Comment lines (';') are skipped.
func readSequence(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open sequence file: %w", err)
	}
	defer f.Close()

	seq, err := parseSequence(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return seq, nil
}

// parseSequence implements readSequence over any reader.
func parseSequence(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		sb     strings.Builder
		header bool
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			if header {
				return finish(sb.String())
			}
			header = true
			continue
		}
		sb.WriteString(stripSpace(line))
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return finish(sb.String())
}

func finish(seq string) (string, error) {
	if seq == "" {
		return "", errNoSequence
	}

	return seq, nil
}

// normalize removes whitespace and upper-cases unless keepCase is set.
func normalize(seq string, keepCase bool) string {
	seq = stripSpace(seq)
	if !keepCase {
		seq = strings.ToUpper(seq)
	}

	return seq
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
