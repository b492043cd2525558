package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"tagscope/internal/ui/input/types"
)

// NormalMode handles input in normal navigation mode
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "NORMAL"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case tea.KeyTab:
		return []types.Action{types.MoveChipCursorAction{Delta: 1}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.MoveChipCursorAction{Delta: -1}}, true
	case tea.KeyEnter, tea.KeySpace:
		if ctx.ChipCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleChipAction{Index: -1}}, true
	case tea.KeyEsc:
		if ctx.SearchTerm() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true
	}

	key := msg.String()
	switch key {
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "ctrl+u":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case "ctrl+d":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "t":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDropdown}}, true
	case "c":
		if !ctx.HasSelectedTags() {
			return nil, true
		}
		return []types.Action{types.ClearTagsAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Number keys toggle the ranked chip at that position
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < ctx.ChipCount() {
			return []types.Action{types.ToggleChipAction{Index: idx}}, true
		}
		return nil, true
	}

	return nil, false
}
