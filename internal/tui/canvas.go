package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// noRegion marks a cell that does not react to the pointer.
const noRegion = -1

// rect is a cell-space rectangle, x/y of the top-left corner.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// mark places a hit-region relative to the block it is added with.
type mark struct {
	id int
	r  rect
}

// cell is one column of a row.
type cell struct {
	id      int
	content string
}

func static(s string) cell { return cell{id: noRegion, content: s} }

func spacer(w int) cell { return static(strings.Repeat(" ", max(0, w))) }

// canvas stacks rendered blocks top to bottom and remembers where each
// interactive element landed.
type canvas struct {
	margin  int
	lines   []string
	regions map[int]rect
}

func newCanvas(margin int) *canvas {
	return &canvas{margin: margin, regions: make(map[int]rect)}
}

// add appends content below everything added so far.
func (c *canvas) add(content string, marks ...mark) {
	top := len(c.lines)
	pad := strings.Repeat(" ", c.margin)
	for _, l := range strings.Split(content, "\n") {
		c.lines = append(c.lines, pad+l)
	}
	for _, m := range marks {
		r := m.r
		r.x += c.margin
		r.y += top
		c.regions[m.id] = r
	}
}

// region appends content as a single hit-region.
func (c *canvas) region(id int, content string) {
	c.add(content, mark{id: id, r: rect{w: lipgloss.Width(content), h: lipgloss.Height(content)}})
}

// row joins cells left to right, top-aligned.
func (c *canvas) row(cells ...cell) {
	parts := make([]string, len(cells))
	var marks []mark
	x := 0
	for i, cl := range cells {
		parts[i] = cl.content
		w := lipgloss.Width(cl.content)
		if cl.id != noRegion {
			marks = append(marks, mark{id: cl.id, r: rect{x: x, w: w, h: lipgloss.Height(cl.content)}})
		}
		x += w
	}
	c.add(lipgloss.JoinHorizontal(lipgloss.Top, parts...), marks...)
}

// gap appends n blank lines.
func (c *canvas) gap(n int) {
	for i := 0; i < n; i++ {
		c.lines = append(c.lines, "")
	}
}

// hit returns the region under (x, y).
func (c *canvas) hit(x, y int) (int, bool) {
	for id, r := range c.regions {
		if r.contains(x, y) {
			return id, true
		}
	}
	return noRegion, false
}

func (c *canvas) bounds(id int) (rect, bool) {
	r, ok := c.regions[id]
	return r, ok
}

// paint renders the frame on a bg page width columns wide. Short lines are
// padded so the page reads as one block.
func (c *canvas) paint(bg lipgloss.Color, width int) string {
	page := lipgloss.NewStyle().Background(bg)
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		if pad := width - lipgloss.Width(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		out[i] = page.Render(l)
	}
	return strings.Join(out, "\n")
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
