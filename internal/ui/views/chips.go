package views

import (
	"fmt"
	"strings"
)

// Chip is one ranked tag in the chip bar
type Chip struct {
	Tag      string
	Count    int
	Selected bool
}

// DropdownItem is one tag in the full tag list
type DropdownItem struct {
	Tag      string
	Count    int
	Selected bool
}

const dropdownRows = 10

// renderChips renders the ranked chips followed by any other selected tags
func (r *Renderer) renderChips(state ViewState) string {
	if len(state.Chips) == 0 && len(state.ExtraSelected) == 0 {
		if state.Loading {
			return r.styles.Dim.Render("tags will appear once the catalog loads")
		}
		return r.styles.Dim.Render("no tags")
	}

	parts := make([]string, 0, len(state.Chips)+2)
	for i, chip := range state.Chips {
		style := r.styles.Chip
		if chip.Selected {
			style = r.styles.ChipSelected
		}
		label := fmt.Sprintf("%s (%d)", chip.Tag, chip.Count)
		if i == state.ChipCursor && !state.DropdownOpen && !state.SearchActive {
			style = style.Inherit(r.styles.ChipCursor)
		}
		key := ""
		if i < 9 {
			key = r.styles.ChipKey.Render(fmt.Sprintf("%d", i+1))
		}
		parts = append(parts, key+style.Render(label))
	}
	for _, tag := range state.ExtraSelected {
		parts = append(parts, r.styles.ChipSelected.Render(tag))
	}

	arrow := "▾"
	if state.DropdownOpen {
		arrow = "▴"
	}
	parts = append(parts, r.styles.Dim.Render("t all tags "+arrow))
	return strings.Join(parts, " ")
}

// renderDropdown renders a window of the alphabetical tag list around the cursor
func (r *Renderer) renderDropdown(state ViewState) string {
	items := state.DropdownItems
	if len(items) == 0 {
		return r.styles.Dropdown.Render(r.styles.Dim.Render("no tags"))
	}

	start := 0
	if state.DropdownCursor >= dropdownRows {
		start = state.DropdownCursor - dropdownRows + 1
	}
	end := min(start+dropdownRows, len(items))

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		item := items[i]
		mark := "[ ]"
		if item.Selected {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s (%d)", mark, item.Tag, item.Count)
		if i == state.DropdownCursor {
			line = r.styles.DropdownCursor.Render(line)
		}
		lines = append(lines, line)
	}
	if end < len(items) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(items)-end)))
	}
	return r.styles.Dropdown.Render(strings.Join(lines, "\n"))
}
