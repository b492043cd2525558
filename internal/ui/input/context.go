package input

import (
	"tagscope/internal/catalog"
	"tagscope/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Engine *catalog.Engine
}

// ChipCount returns the number of ranked tag chips
func (c *ModelContext) ChipCount() int {
	return len(c.Engine.TopTags())
}

// DropdownLen returns the number of tags in the full list
func (c *ModelContext) DropdownLen() int {
	return len(c.Engine.AllTags())
}

// VisibleCount returns the number of projects passing the filters
func (c *ModelContext) VisibleCount() int {
	return c.Engine.VisibleLen()
}

func (c *ModelContext) SearchTerm() string {
	return c.Engine.SearchTerm()
}

func (c *ModelContext) HasSelectedTags() bool {
	return len(c.Engine.SelectedTags()) > 0
}
