package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Tag chip actions
type ToggleChipAction struct {
	Index int // -1 for the chip under the cursor
}

func (a ToggleChipAction) Type() string { return "toggle_chip" }

type MoveChipCursorAction struct {
	Delta int
}

func (a MoveChipCursorAction) Type() string { return "move_chip_cursor" }

type ClearTagsAction struct{}

func (a ClearTagsAction) Type() string { return "clear_tags" }

// Dropdown actions
type SetDropdownAction struct {
	Open bool
}

func (a SetDropdownAction) Type() string { return "set_dropdown" }

type DropdownNavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a DropdownNavigateAction) Type() string { return "dropdown_navigate" }

type ToggleDropdownTagAction struct{}

func (a ToggleDropdownTagAction) Type() string { return "toggle_dropdown_tag" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
