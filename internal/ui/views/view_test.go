package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tagscope/internal/domain"
)

func testProjects() []domain.Project {
	return []domain.Project{
		{URL: "github.com/acme/foo", Org: "acme", Stars: 12, Released: "2023-04-01", Tags: []string{"ml", "infra"}},
		{URL: "github.com/beta/bar", Org: "beta", Stars: 3, Tags: []string{}},
	}
}

func TestCountLine(t *testing.T) {
	assert.Equal(t, "2 of 5 projects", CountLine(2, 5))
	assert.Equal(t, "1 of 1 project", CountLine(1, 1))
	assert.Equal(t, "0 of 0 projects", CountLine(0, 0))
}

func TestCardsPerPage(t *testing.T) {
	assert.Equal(t, 4, CardsPerPage(20, false))
	assert.Equal(t, 20, CardsPerPage(20, true))
	assert.Equal(t, 1, CardsPerPage(0, false))
}

func TestRenderEmptyState(t *testing.T) {
	out := NewRenderer(true).Render(ViewState{Width: 80, Height: 24, ViewportHeight: 10})
	assert.Contains(t, out, "No projects found")
	assert.Contains(t, out, "0 of 0 projects")
}

func TestRenderCards(t *testing.T) {
	r := NewRenderer(true)
	out := r.Render(ViewState{
		Width:          100,
		Height:         30,
		Total:          5,
		Projects:       testProjects(),
		ViewportHeight: 20,
		Chips:          []Chip{{Tag: "ml", Count: 3, Selected: true}, {Tag: "infra", Count: 2}},
		SelectedTags:   map[string]bool{"ml": true},
	})

	assert.Contains(t, out, "2 of 5 projects")
	assert.Contains(t, out, "github.com/acme/foo")
	assert.Contains(t, out, "★ 12")
	assert.Contains(t, out, "2023-04-01")
	assert.Contains(t, out, "#ml #infra")
	assert.Contains(t, out, "no tags")
	assert.Contains(t, out, "ml (3)")
	assert.Contains(t, out, "infra (2)")
}

func TestRenderHidesReleasedWhenDisabled(t *testing.T) {
	out := NewRenderer(false).Render(ViewState{
		Width: 100, Height: 30, Projects: testProjects(), ViewportHeight: 20,
	})
	assert.NotContains(t, out, "2023-04-01")
}

func TestRenderCompactScrollIndicators(t *testing.T) {
	projects := make([]domain.Project, 10)
	for i := range projects {
		projects[i] = domain.Project{URL: "example.com/p", Tags: []string{}}
	}
	out := NewRenderer(true).Render(ViewState{
		Width: 80, Height: 30, Projects: projects, Total: 10,
		Compact: true, ViewportHeight: 4, ViewportOffset: 2, CardCursor: 3,
	})
	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 4 more below ↓")
}

func TestRenderSearchLine(t *testing.T) {
	r := NewRenderer(true)
	out := r.Render(ViewState{Width: 80, Height: 24, SearchTerm: "acme"})
	assert.Contains(t, out, "/ acme")

	out = r.Render(ViewState{Width: 80, Height: 24, SearchActive: true, SearchInput: "ac"})
	assert.Contains(t, out, "/ ac")
}

func TestRenderDropdownWindow(t *testing.T) {
	items := make([]DropdownItem, 15)
	for i := range items {
		items[i] = DropdownItem{Tag: string(rune('a' + i)), Count: 1}
	}
	items[12].Selected = true

	out := NewRenderer(true).Render(ViewState{
		Width: 80, Height: 30, DropdownOpen: true, DropdownItems: items, DropdownCursor: 12,
	})
	assert.Contains(t, out, "[x] m (1)")
	assert.Contains(t, out, "↑ 3 more")
	assert.Contains(t, out, "↓ 2 more")
	assert.NotContains(t, out, "[ ] a (1)")
}

func TestHighlightMatch(t *testing.T) {
	c := NewCardRenderer(NewStyles(), true)
	s := NewStyles()
	// Plain rendering keeps the text intact
	out := c.highlightMatch("github.com/Acme/foo", "acme", s.Highlight, s.CardURL)
	assert.Equal(t, "github.com/Acme/foo", stripANSI(out))
	assert.Equal(t, "x", stripANSI(c.highlightMatch("x", "", s.Highlight, s.CardURL)))
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"
	out := overlayAt(base, "XY\nZW", 2, 1)
	lines := strings.Split(stripANSI(out), "\n")
	assert.Equal(t, []string{"aaaaaa", "bbXYbb", "ccZWcc"}, lines)

	// the popup may extend past the base
	out = overlayAt("ab", "XY\nZW", 1, 0)
	lines = strings.Split(stripANSI(out), "\n")
	assert.Equal(t, []string{"aXY", " ZW"}, lines)
}

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
