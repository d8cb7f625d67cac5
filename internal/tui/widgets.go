package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// newInput builds a text field that fits a frame width wide. Every field,
// the password one included, echoes what is typed.
func newInput(label, prompt string, width int, p palette) *textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = label
	ti.TextStyle = lipgloss.NewStyle().Foreground(p.fieldText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.fieldLabel).Faint(true)
	// frame (2) + padding (2) + prompt + cursor cell
	ti.Width = width - 4 - lipgloss.Width(prompt) - 1
	return &ti
}

func renderField(e *element, on bool, width int, p palette) string {
	edge := p.fieldEdge
	if on {
		edge = p.focus
	}
	st := box(edge).Width(width-2).Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(p.fieldLabel).Bold(on).Render(e.label)
	return st.Render(label + "\n" + e.input.View())
}

// renderButton draws a framed button.
func renderButton(text string, st lipgloss.Style, on bool, p palette) string {
	return focused(st, on, p).Render(text)
}

// renderLink draws a full-width centred text link.
func renderLink(text string, on bool, p palette) string {
	st := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Foreground(p.link).
		Bold(true)
	if on {
		st = st.Underline(true).Foreground(p.focus)
	}
	return st.Render(text)
}

// renderTitle draws a screen heading.
func renderTitle(text string, p palette) string {
	return lipgloss.NewStyle().
		Foreground(p.title).
		Background(p.background).
		Bold(true).
		Render(text)
}

// headerArt is the decorative strip at the top of the form screens.
func headerArt(p palette) string {
	return gradientBlock(contentWidth, p.headerFrom, p.headerTo, blankRows(3))
}

// submitArrow is the inert round arrow button under the fields.
func submitArrow(on bool, p palette) string {
	st := box(p.title).Foreground(p.title).Bold(true).Padding(0, 3)
	return renderButton("→", st, on, p)
}
