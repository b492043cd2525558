package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"tagscope/internal/ui/input/types"
)

// SearchMode edits the free-text search term. Every keystroke is applied
// immediately; enter keeps the term and esc clears it.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "SEARCH", ti),
	}
}

// Enter resumes editing the current term instead of starting empty
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.SearchTerm())
		m.textInput.CursorEnd()
	}
	return actions
}
