// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/cmd/nwalign/config"
	"github.com/katalvlaran/seqalign/nw"
)

// Palette.
var (
	colorTeal       = lipgloss.Color("#20B9B4")
	colorTealBright = lipgloss.Color("#2CD7C7")
	colorSlate      = lipgloss.Color("#5C7A84")
	colorWarning    = lipgloss.Color("#F4D03F")
)

// styles renders report fragments. When disabled every fragment is
// returned verbatim, so plain output is byte-stable.
type styles struct {
	enabled bool
	label   lipgloss.Style
	header  lipgloss.Style
	match   lipgloss.Style
	score   lipgloss.Style
	path    lipgloss.Style
	gap     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		enabled: color,
		label:   r.NewStyle().Foreground(colorSlate),
		header:  r.NewStyle().Bold(true),
		match:   r.NewStyle().Foreground(colorTeal),
		score:   r.NewStyle().Bold(true).Foreground(colorTealBright),
		path:    r.NewStyle().Bold(true).Foreground(colorTealBright),
		gap:     r.NewStyle().Foreground(colorWarning),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}

// useColor resolves auto / always / never against the output stream.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// report is the YAML document emitted by --format yaml.
type report struct {
	Seq1        string           `yaml:"seq1"`
	Seq2        string           `yaml:"seq2"`
	Policy      nw.ScoringPolicy `yaml:"policy"`
	Score       int              `yaml:"score"`
	AlignedSeq1 string           `yaml:"aligned_seq1"`
	Midline     string           `yaml:"midline"`
	AlignedSeq2 string           `yaml:"aligned_seq2"`
	Stats       nw.Stats         `yaml:"stats"`
	Path        [][2]int         `yaml:"path,flow,omitempty"`
	Matrix      [][]int          `yaml:"matrix,omitempty"`
}

// render writes res (and optionally m) to w in the configured format.
func render(w io.Writer, out config.OutputConfig, res nw.Result, m *nw.Matrix) error {
	switch out.Format {
	case "yaml":
		return renderYAML(w, out, res, m)
	default:
		st := newStyles(w, useColor(w, out.Color))
		if out.Matrix {
			if _, err := io.WriteString(w, renderMatrix(st, m, res.Path)+"\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, renderAlignment(st, res, out.Width))

		return err
	}
}

func renderYAML(w io.Writer, out config.OutputConfig, res nw.Result, m *nw.Matrix) error {
	rep := report{
		Seq1:        m.Seq1(),
		Seq2:        m.Seq2(),
		Policy:      m.Policy(),
		Score:       res.Score,
		AlignedSeq1: res.AlignedSeq1,
		Midline:     res.Midline(),
		AlignedSeq2: res.AlignedSeq2,
		Stats:       res.Stats(),
	}
	if out.Matrix {
		rep.Matrix = m.Scores()
		rep.Path = make([][2]int, len(res.Path))
		for i, c := range res.Path {
			rep.Path[i] = [2]int{c.Row, c.Col}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

// renderAlignment prints seq1, midline and seq2 in blocks of width columns,
// followed by the score and the column statistics.
func renderAlignment(st styles, res nw.Result, width int) string {
	a1, a2 := []rune(res.AlignedSeq1), []rune(res.AlignedSeq2)
	mid := []rune(res.Midline())
	n := len(a1)
	if width <= 0 || width > n {
		width = n
	}

	var sb strings.Builder
	for off := 0; off < n; off += width {
		end := min(n, off+width)
		if off > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(st.render(st.label, "seq1  ") + colorize(st, a1[off:end], mid[off:end]) + "\n")
		sb.WriteString("      " + st.render(st.match, string(mid[off:end])) + "\n")
		sb.WriteString(st.render(st.label, "seq2  ") + colorize(st, a2[off:end], mid[off:end]) + "\n")
	}

	s := res.Stats()
	sb.WriteByte('\n')
	sb.WriteString(st.render(st.label, "score     ") + st.render(st.score, strconv.Itoa(res.Score)) + "\n")
	fmt.Fprintf(&sb, "length %d  matches %d  mismatches %d  gaps %d  identity %.1f%%\n",
		s.Length, s.Matches, s.Mismatches, s.Gaps, 100*s.Identity)

	return sb.String()
}

// colorize styles matching columns and gaps of one aligned row.
func colorize(st styles, row, mid []rune) string {
	if !st.enabled {
		return string(row)
	}
	var sb strings.Builder
	for i, r := range row {
		switch {
		case r == nw.GapSymbol:
			sb.WriteString(st.gap.Render(string(r)))
		case mid[i] == '|':
			sb.WriteString(st.match.Render(string(r)))
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// renderMatrix prints the score grid with seq1 across and seq2 down.
// Cells on the traceback path are highlighted, or suffixed with '*' when
// colour is off.
func renderMatrix(st styles, m *nw.Matrix, path []nw.Coord) string {
	scores := m.Scores()
	onPath := make(map[nw.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	cw := 1
	for _, row := range scores {
		for _, v := range row {
			cw = max(cw, len(strconv.Itoa(v)))
		}
	}

	seq1, seq2 := []rune(m.Seq1()), []rune(m.Seq2())
	lines := make([]string, 0, len(scores)+1)

	var sb strings.Builder
	sb.WriteString("   " + pad(string(nw.GapSymbol), cw) + " ")
	for _, r := range seq1 {
		sb.WriteString(" " + st.render(st.header, pad(string(r), cw)) + " ")
	}
	lines = append(lines, sb.String())

	for i, row := range scores {
		sb.Reset()
		label := string(nw.GapSymbol)
		if i > 0 {
			label = string(seq2[i-1])
		}
		sb.WriteString(st.render(st.header, label) + " ")
		for j, v := range row {
			cell := pad(strconv.Itoa(v), cw)
			switch {
			case onPath[nw.Coord{Row: i, Col: j}] && st.enabled:
				sb.WriteString(" " + st.render(st.path, cell) + " ")
			case onPath[nw.Coord{Row: i, Col: j}]:
				sb.WriteString(" " + cell + "*")
			default:
				sb.WriteString(" " + cell + " ")
			}
		}
		lines = append(lines, sb.String())
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	return strings.Join(lines, "\n") + "\n"
}

// pad right-aligns s in a field of width w.
func pad(s string, w int) string {
	if n := len([]rune(s)); n < w {
		return strings.Repeat(" ", w-n) + s
	}

	return s
}
