package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tagscope/internal/domain"
)

// HeaderLines is the number of lines above the card list: title, search,
// chips and a gap.
const HeaderLines = 4

// FooterLines is the number of lines below the card list
const FooterLines = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Loading bool
	Source  string
	Total   int

	Projects       []domain.Project
	CardCursor     int
	ViewportOffset int
	ViewportHeight int
	Compact        bool

	SearchTerm   string
	SearchActive bool
	SearchInput  string // rendered text input while searching

	Chips         []Chip
	ChipCursor    int
	ExtraSelected []string // selected tags that are not ranked chips
	SelectedTags  map[string]bool

	DropdownOpen   bool
	DropdownItems  []DropdownItem
	DropdownCursor int

	ShowHelp      bool
	HelpContent   string
	StatusMessage string
	HelpLine      string // short key help for the footer
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showReleased bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles, showReleased),
	}
}

// Styles exposes the style set for other renderers such as the help page
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding

	lines := []string{
		r.renderTitle(state, innerWidth),
		r.renderSearch(state),
		r.renderChips(state),
		"",
	}

	lines = append(lines, r.renderCards(state, innerWidth))

	content := strings.Join(lines, "\n")

	// Push the footer to the bottom
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	currentLines := strings.Count(content, "\n") + 1
	if pad := availableLines - currentLines - FooterLines; pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	content += "\n\n" + r.renderFooter(state)

	if state.DropdownOpen {
		// Directly under the chip bar
		content = overlayAt(content, r.renderDropdown(state), 0, 3)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content)

	if state.ShowHelp && state.HelpContent != "" {
		return overlayCenter(finalContent, r.styles.HelpBox.Render(state.HelpContent), termWidth, state.Height)
	}

	return finalContent
}

// renderTitle renders the logo with the result count or loading indicator right-aligned
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("tagscope")

	var right string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading %s", spinner[frame], state.Source))
	} else {
		right = r.styles.Status.Render(CountLine(len(state.Projects), state.Total))
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// CountLine formats the visible and total project counts
func CountLine(visible, total int) string {
	noun := "projects"
	if total == 1 {
		noun = "project"
	}
	return fmt.Sprintf("%d of %d %s", visible, total, noun)
}

func (r *Renderer) renderSearch(state ViewState) string {
	if state.SearchActive {
		return r.styles.Search.Render("/") + " " + state.SearchInput
	}
	if state.SearchTerm != "" {
		return r.styles.Search.Render("/ "+state.SearchTerm) + r.styles.Dim.Render("  (esc to clear)")
	}
	return r.styles.Dim.Render("/ search url, org or tag")
}

// renderCards renders the window of cards that fits the viewport
func (r *Renderer) renderCards(state ViewState, width int) string {
	if len(state.Projects) == 0 {
		if state.Loading {
			return r.styles.Empty.Render("Loading catalog...")
		}
		return r.styles.Empty.Render("No projects found")
	}

	perPage := CardsPerPage(state.ViewportHeight, state.Compact)

	start := min(state.ViewportOffset, len(state.Projects)-1)
	end := min(start+perPage, len(state.Projects))

	var out []string
	if start > 0 {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		p := state.Projects[i]
		selected := i == state.CardCursor
		if state.Compact {
			out = append(out, r.cardRender.RenderCompact(p, selected, state.SearchTerm, state.SelectedTags, width))
		} else {
			out = append(out, r.cardRender.RenderCard(p, selected, state.SearchTerm, state.SelectedTags, width))
		}
	}
	if end < len(state.Projects) {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Projects)-end)))
	}
	return strings.Join(out, "\n")
}

// CardsPerPage returns how many cards fit in height lines
func CardsPerPage(height int, compact bool) int {
	return max(height/CardHeight(compact), 1)
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	return r.styles.Help.Render(state.HelpLine)
}
