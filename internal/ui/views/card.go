package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagscope/internal/domain"
)

const (
	cardHeight        = 5 // border, url, meta, tags, border
	compactCardHeight = 1
)

// CardHeight returns the height of one card in lines
func CardHeight(compact bool) int {
	if compact {
		return compactCardHeight
	}
	return cardHeight
}

// CardRenderer handles rendering of project cards
type CardRenderer struct {
	styles       *Styles
	showReleased bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showReleased bool) *CardRenderer {
	return &CardRenderer{
		styles:       styles,
		showReleased: showReleased,
	}
}

// RenderCard renders a bordered project card
func (c *CardRenderer) RenderCard(p domain.Project, isSelected bool, searchTerm string, selectedTags map[string]bool, width int) string {
	url := c.highlightMatch(p.URL, searchTerm, c.styles.Highlight, c.styles.CardURL)

	meta := []string{c.highlightMatch(p.Org, searchTerm, c.styles.Highlight, c.styles.CardMeta)}
	meta = append(meta, c.styles.Stars.Render(fmt.Sprintf("★ %d", p.Stars)))
	if c.showReleased && p.Released != "" {
		meta = append(meta, c.styles.CardMeta.Render(p.Released))
	}

	body := strings.Join([]string{
		url,
		strings.Join(meta, c.styles.CardMeta.Render(" · ")),
		c.renderTags(p.Tags, selectedTags),
	}, "\n")

	style := c.styles.Card
	if isSelected {
		style = c.styles.CardSelected
	}
	if width > 4 {
		// Width excludes the border
		style = style.Width(width - 2)
	}
	return style.Render(body)
}

// RenderCompact renders a project on a single line
func (c *CardRenderer) RenderCompact(p domain.Project, isSelected bool, searchTerm string, selectedTags map[string]bool, width int) string {
	cursor := "  "
	if isSelected {
		cursor = c.styles.Highlight.Render("▸ ")
	}
	parts := []string{
		cursor + c.highlightMatch(p.URL, searchTerm, c.styles.Highlight, c.styles.CardURL),
		c.styles.CardMeta.Render(p.Org),
		c.styles.Stars.Render(fmt.Sprintf("★%d", p.Stars)),
		c.renderTags(p.Tags, selectedTags),
	}
	line := strings.Join(parts, "  ")
	if width > 0 && lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

func (c *CardRenderer) renderTags(tags []string, selectedTags map[string]bool) string {
	if len(tags) == 0 {
		return c.styles.Dim.Render("no tags")
	}
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		if selectedTags[tag] {
			rendered[i] = c.styles.CardTagMatch.Render("#" + tag)
		} else {
			rendered[i] = c.styles.CardTag.Render("#" + tag)
		}
	}
	return strings.Join(rendered, " ")
}

// highlightMatch highlights the first case-insensitive match of query
func (c *CardRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths outside ASCII
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
