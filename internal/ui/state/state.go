package state

// AppState contains the UI-only state. Dataset, search term and selected
// tags live in the catalog engine.
type AppState struct {
	// Loading state
	Loading bool   // a fetch is in flight
	Source  string // where the catalog comes from

	// Card list
	CardCursor     int // index into the visible projects
	ViewportOffset int // first visible card
	ViewportHeight int // available height for the card list, in lines

	// Tag chips
	ChipCursor int // focused ranked chip

	// Dropdown
	DropdownOpen   bool
	DropdownCursor int // index into the alphabetical tag list

	// UI state
	ShowHelp      bool
	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// ClampCards keeps the card cursor and offset inside a list of n cards,
// showing perPage cards at a time.
func (s *AppState) ClampCards(n, perPage int) {
	if perPage < 1 {
		perPage = 1
	}
	if n == 0 {
		s.CardCursor = 0
		s.ViewportOffset = 0
		return
	}
	s.CardCursor = clamp(s.CardCursor, 0, n-1)

	if s.CardCursor < s.ViewportOffset {
		s.ViewportOffset = s.CardCursor
	}
	if s.CardCursor >= s.ViewportOffset+perPage {
		s.ViewportOffset = s.CardCursor - perPage + 1
	}
	s.ViewportOffset = clamp(s.ViewportOffset, 0, max(n-perPage, 0))
}

// MoveCards moves the card cursor by delta
func (s *AppState) MoveCards(delta, n, perPage int) {
	s.CardCursor += delta
	s.ClampCards(n, perPage)
}

// ClampChips keeps the chip cursor inside n chips
func (s *AppState) ClampChips(n int) {
	if n == 0 {
		s.ChipCursor = 0
		return
	}
	s.ChipCursor = clamp(s.ChipCursor, 0, n-1)
}

// MoveChipCursor moves the chip focus, wrapping at both ends
func (s *AppState) MoveChipCursor(delta, n int) {
	if n == 0 {
		s.ChipCursor = 0
		return
	}
	s.ChipCursor = ((s.ChipCursor+delta)%n + n) % n
}

// MoveDropdown moves the dropdown cursor inside n tags
func (s *AppState) MoveDropdown(delta, n int) {
	if n == 0 {
		s.DropdownCursor = 0
		return
	}
	s.DropdownCursor = clamp(s.DropdownCursor+delta, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
