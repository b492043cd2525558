package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampCards(t *testing.T) {
	s := NewAppState()
	s.CardCursor = 7
	s.ClampCards(5, 2)
	assert.Equal(t, 4, s.CardCursor)
	assert.Equal(t, 3, s.ViewportOffset)

	s.ClampCards(0, 2)
	assert.Equal(t, 0, s.CardCursor)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestMoveCardsScrollsViewport(t *testing.T) {
	s := NewAppState()
	for i := 0; i < 3; i++ {
		s.MoveCards(1, 10, 2)
	}
	assert.Equal(t, 3, s.CardCursor)
	assert.Equal(t, 2, s.ViewportOffset)

	s.MoveCards(-10, 10, 2)
	assert.Equal(t, 0, s.CardCursor)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestMoveChipCursorWraps(t *testing.T) {
	s := NewAppState()
	s.MoveChipCursor(-1, 5)
	assert.Equal(t, 4, s.ChipCursor)
	s.MoveChipCursor(1, 5)
	assert.Equal(t, 0, s.ChipCursor)
	s.MoveChipCursor(1, 0)
	assert.Equal(t, 0, s.ChipCursor)
}

func TestMoveDropdownClamps(t *testing.T) {
	s := NewAppState()
	s.MoveDropdown(-1, 3)
	assert.Equal(t, 0, s.DropdownCursor)
	s.MoveDropdown(10, 3)
	assert.Equal(t, 2, s.DropdownCursor)
}
