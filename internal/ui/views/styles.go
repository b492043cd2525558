package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	StatusLoading lipgloss.Style
	Empty         lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardURL      lipgloss.Style
	CardMeta     lipgloss.Style
	CardTag      lipgloss.Style
	CardTagMatch lipgloss.Style
	Stars        lipgloss.Style

	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipCursor   lipgloss.Style
	ChipKey      lipgloss.Style

	Dropdown       lipgloss.Style
	DropdownCursor lipgloss.Style
	HelpBox        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Search:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Empty: lipgloss.NewStyle().
			Faint(true).
			Italic(true).
			PaddingLeft(2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1).
			PaddingRight(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			PaddingLeft(1).
			PaddingRight(1),
		CardURL:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		CardMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CardTag:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		CardTagMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true).Underline(true),
		Stars:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		Chip: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")),
		ChipSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("63")),
		ChipCursor: lipgloss.NewStyle().Underline(true),
		ChipKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DropdownCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}
