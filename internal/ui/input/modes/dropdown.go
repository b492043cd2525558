package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"tagscope/internal/ui/input/types"
)

// DropdownMode drives the full tag list. Choosing a tag toggles it and
// closes the list.
type DropdownMode struct{}

func NewDropdownMode() *DropdownMode {
	return &DropdownMode{}
}

func (m *DropdownMode) Name() string {
	return "TAGS"
}

func (m *DropdownMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetDropdownAction{Open: true}}
}

func (m *DropdownMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.SetDropdownAction{Open: false}}
}

func (m *DropdownMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "t", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.DropdownNavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.DropdownNavigateAction{Direction: "down"}}, true
	case "home", "g":
		return []types.Action{types.DropdownNavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.DropdownNavigateAction{Direction: "end"}}, true
	case "enter", " ":
		if ctx.DropdownLen() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.ToggleDropdownTagAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Swallow everything else while the list is open
	return nil, true
}
