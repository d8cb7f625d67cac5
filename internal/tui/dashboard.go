package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kemilad/dashapp/internal/nav"
)

// Dashboard focus ring.
const (
	dashAvatar = iota
	dashSearch
	dashSearchIcon
)

const (
	avatarWidth = 8
	avatarX     = contentWidth - 2 - avatarWidth
	searchWidth = contentWidth - 7
)

var avatarArt = []string{
	"╭──────╮",
	"│ ◕  ◕ │",
	"│  ──  │",
	"╰──────╯",
}

type iconSpec struct {
	glyph string
	label string
}

var topIcons = []iconSpec{
	{"▶", "Video Call"},
	{"◉", "Notification"},
	{"☏", "Voice Call"},
}

var bottomIcons = [][]iconSpec{
	{{"✉", "Inbox"}, {"⚑", "Maps"}, {"✎", "Chats"}, {"☰", "Report"}},
	{{"▦", "Calendar"}, {"☼", "Tips"}, {"⚙", "Settings"}, {"⋯", "More"}},
}

// DashboardScreen is the home view. Only the avatar navigates.
type DashboardScreen struct {
	form *form
	pal  palette
}

var _ Screen = (*DashboardScreen)(nil)

// NewDashboard mounts a dashboard with an empty search field.
func NewDashboard(navigate Navigate) *DashboardScreen {
	p := dashboardPalette
	return &DashboardScreen{
		pal: p,
		form: newForm(nav.Dashboard,
			&element{label: "Profile", tap: func() tea.Cmd {
				to, _ := nav.Transition(nav.Dashboard, nav.AvatarTap)
				return navigate(to)
			}},
			&element{label: "Searching for...", input: newInput("Searching for...", "", searchWidth, p)},
			&element{label: "Search"},
		),
	}
}

func (s *DashboardScreen) ID() nav.Screen { return nav.Dashboard }

func (s *DashboardScreen) Init() tea.Cmd { return s.form.init() }

func (s *DashboardScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.update(msg, s.layout)
}

func (s *DashboardScreen) View() string {
	return s.layout().paint(s.pal.background, pageMargin+contentWidth)
}

func (s *DashboardScreen) FocusBounds() (int, int) {
	return focusBounds(s.layout(), s.form.focus)
}

// Query returns the search field contents.
func (s *DashboardScreen) Query() string { return s.form.value(dashSearch) }

func (s *DashboardScreen) layout() *canvas {
	c := newCanvas(pageMargin)
	s.header(c)
	c.gap(1)
	s.topTiles(c)
	c.gap(1)

	f := s.form
	icon := focused(box(s.pal.fieldEdge), f.isFocused(dashSearchIcon), s.pal).
		Width(3).Height(2).Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.pal.fieldText)
	c.row(
		cell{id: dashSearch, content: renderField(f.elems[dashSearch], f.isFocused(dashSearch), searchWidth, s.pal)},
		spacer(2),
		cell{id: dashSearchIcon, content: icon.Render("⌕")},
	)
	c.gap(1)
	s.promo(c)
	for _, row := range bottomIcons {
		c.gap(1)
		s.iconRow(c, row)
	}
	c.gap(1)
	return c
}

func (s *DashboardScreen) header(c *canvas) {
	text := lipgloss.NewStyle().Foreground(s.pal.title)
	name := text.Bold(true)
	art := text
	if s.form.isFocused(dashAvatar) {
		art = lipgloss.NewStyle().Foreground(colTile).Bold(true)
	}
	line := func(left string, st lipgloss.Style, i int) []span {
		gap := avatarX - 2 - utf8.RuneCountInString(left)
		return []span{
			{text: "  " + left, style: st},
			{text: strings.Repeat(" ", gap), style: st},
			{text: avatarArt[i], style: art},
		}
	}
	rows := [][]span{
		nil,
		line("Hello", text, 0),
		line("", text, 1),
		line("David Friedman", name, 2),
		line("", text, 3),
		nil,
	}
	block := gradientBlock(contentWidth, s.pal.headerFrom, s.pal.headerTo, rows)
	c.add(block, mark{id: dashAvatar, r: rect{x: avatarX, y: 1, w: avatarWidth, h: len(avatarArt)}})
}

func (s *DashboardScreen) topTiles(c *canvas) {
	tile := lipgloss.NewStyle().
		Background(colTile).
		Foreground(colTileLabel).
		Bold(true).
		Italic(true).
		Width(16).
		Align(lipgloss.Center).
		Padding(1, 0)
	cells := []cell{spacer(2)}
	for _, ic := range topIcons {
		cells = append(cells, static(tile.Render(ic.glyph+"\n"+ic.label)), spacer(2))
	}
	c.row(cells[:len(cells)-1]...)
}

func (s *DashboardScreen) promo(c *canvas) {
	white := lipgloss.NewStyle().Foreground(colWhite).Bold(true)
	line := func(text, logo string) []span {
		gap := contentWidth - 4 - utf8.RuneCountInString(text) - utf8.RuneCountInString(logo)
		return []span{{text: "  " + text + strings.Repeat(" ", max(0, gap)) + logo, style: white}}
	}
	rows := [][]span{
		nil,
		line("For unlimited access", ""),
		line("", "★"),
		line("Upgrade your account", ""),
		nil,
	}
	c.add(gradientBlock(contentWidth, promoFrom, promoTo, rows))
}

func (s *DashboardScreen) iconRow(c *canvas, icons []iconSpec) {
	glyph := lipgloss.NewStyle().Background(colWhite).Foreground(s.pal.link).Padding(1, 3)
	label := lipgloss.NewStyle().Foreground(s.pal.link).Bold(true)
	col := lipgloss.NewStyle().Width(contentWidth / len(icons)).Align(lipgloss.Center)
	cells := make([]cell, len(icons))
	for i, ic := range icons {
		cells[i] = static(col.Render(lipgloss.JoinVertical(lipgloss.Center, glyph.Render(ic.glyph), label.Render(ic.label))))
	}
	c.row(cells...)
}
