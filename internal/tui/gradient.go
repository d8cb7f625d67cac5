package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// span is a run of single-width runes drawn over a gradient.
type span struct {
	text  string
	style lipgloss.Style
}

// gradientColors returns n colours blended linearly in RGB from one hex
// colour to the other, endpoints included.
func gradientColors(from, to string, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	a := mustHex(from)
	b := mustHex(to)
	if n == 1 {
		return []lipgloss.Color{lipgloss.Color(a.Hex())}
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
	}
	return out
}

// mustHex parses a palette colour. Palette colours are constants, so a bad
// one is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("tui: bad palette colour %q: %v", s, err))
	}
	return c
}

// gradientBlock paints a width-wide horizontal gradient with one line per
// row, overlaying each row's spans from the left edge. Runes past width are
// dropped.
func gradientBlock(width int, from, to string, rows [][]span) string {
	cols := gradientColors(from, to, width)
	fill := lipgloss.NewStyle()

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for _, sp := range row {
			for _, r := range sp.text {
				if x >= width {
					break
				}
				b.WriteString(sp.style.Background(cols[x]).Render(string(r)))
				x++
			}
		}
		for ; x < width; x++ {
			b.WriteString(fill.Background(cols[x]).Render(" "))
		}
	}
	return b.String()
}

// blankRows returns n empty gradient rows.
func blankRows(n int) [][]span {
	return make([][]span, n)
}
