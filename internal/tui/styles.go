package tui

import "github.com/charmbracelet/lipgloss"

// ─────────────────────────────────────────────────────────────────────────────
// Geometry
// ─────────────────────────────────────────────────────────────────────────────

// contentWidth is the width of the phone-sized column every screen renders.
const contentWidth = 56

// pageMargin is the blank gutter left of the column.
const pageMargin = 2

// ─────────────────────────────────────────────────────────────────────────────
// Palettes
// ─────────────────────────────────────────────────────────────────────────────

// palette is the colour set of one screen.
type palette struct {
	// background fills the dashboard page and backs the form screen titles.
	background lipgloss.Color
	title      lipgloss.Color
	fieldText  lipgloss.Color
	fieldLabel lipgloss.Color
	fieldEdge  lipgloss.Color
	link       lipgloss.Color
	focus      lipgloss.Color

	// Hex endpoints of the header gradient.
	headerFrom string
	headerTo   string
}

var dashboardPalette = palette{
	background: lipgloss.Color("#f8eeec"), // blush
	title:      lipgloss.Color("#ffffff"), // white on the header gradient
	fieldText:  lipgloss.Color("#5e5e5e"), // graphite
	fieldLabel: lipgloss.Color("#5e5e5e"),
	fieldEdge:  lipgloss.Color("#d9cfcd"), // dusty rose
	link:       lipgloss.Color("#2e3d6d"), // ink blue (icon labels)
	focus:      lipgloss.Color("#EA6D35"), // tangerine
	headerFrom: "#EA6D35",
	headerTo:   "#3b608c",
}

var loginPalette = palette{
	background: lipgloss.Color("#f8eeec"),
	title:      lipgloss.Color("#Ea6d36"),
	fieldText:  lipgloss.Color("#5e5e5e"),
	fieldLabel: lipgloss.Color("#5e5e5e"),
	fieldEdge:  lipgloss.Color("#d9cfcd"),
	link:       lipgloss.Color("#3b608c"),
	focus:      lipgloss.Color("#Ea6d36"),
	headerFrom: "#f8eeec",
	headerTo:   "#Ea6d36",
}

var signUpPalette = palette{
	background: lipgloss.Color("#f8eeec"),
	title:      lipgloss.Color("#3b608c"),
	fieldText:  lipgloss.Color("#5e5e5e"),
	fieldLabel: lipgloss.Color("#5e5e5e"),
	fieldEdge:  lipgloss.Color("#d9cfcd"),
	link:       lipgloss.Color("#3b608c"),
	focus:      lipgloss.Color("#3b608c"),
	headerFrom: "#f8eeec",
	headerTo:   "#3b608c",
}

// Dashboard tiles and banners.
var (
	colTile      = lipgloss.Color("#ffe0c8") // peach   (top tile fill)
	colTileLabel = lipgloss.Color("#c77710") // ochre   (top tile label)
	colWhite     = lipgloss.Color("#ffffff") // white   (icon wells, promo text)
	colSocial    = lipgloss.Color("#2f4f86") // navy    (social button text)
	colSocialRim = lipgloss.Color("#4d4d4d") // charcoal (social button frame)

	promoFrom = "#4c6184" // slate blue
	promoTo   = "#f9c177" // sand
)

// ─────────────────────────────────────────────────────────────────────────────
// Status bar
// ─────────────────────────────────────────────────────────────────────────────

var (
	colMuted  = lipgloss.Color("#6B7280") // gray
	colBorder = lipgloss.Color("#374151") // dark gray (key chip bg)
	colKey    = lipgloss.Color("#A78BFA") // violet light
)

var (
	StyleMuted = lipgloss.NewStyle().Foreground(colMuted)
	StyleError = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// ─────────────────────────────────────────────────────────────────────────────
// Frames
// ─────────────────────────────────────────────────────────────────────────────

// box is the rounded frame shared by fields and buttons.
func box(edge lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(edge)
}

// focused decorates st when the element holds keyboard focus. It never
// changes the rendered size, so hit-regions stay put.
func focused(st lipgloss.Style, on bool, p palette) lipgloss.Style {
	if !on {
		return st
	}
	return st.BorderForeground(p.focus).Bold(true).Underline(true)
}

// Key renders a keyboard hint.
func Key(key, label string) string {
	k := lipgloss.NewStyle().
		Background(colBorder).Foreground(colKey).Bold(true).Padding(0, 1).
		Render(key)
	l := StyleMuted.Render(" " + label)
	return k + l
}
