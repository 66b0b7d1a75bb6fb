package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubState struct {
	done bool
}

func (that stubState) IsDone() bool {
	return that.done
}

func TestIsKnownGame(t *testing.T) {
	t.Run("Every listed game is known", func(t *testing.T) {
		for _, name := range GameTypes {
			assert.True(t, IsKnownGame(name))
		}
	})

	t.Run("Other names are not", func(t *testing.T) {
		assert.False(t, IsKnownGame("tictactoe"))
		assert.False(t, IsKnownGame(""))
	})
}

func TestSession(t *testing.T) {
	t.Run("IsDone follows the game state", func(t *testing.T) {
		// Given: a session over an unfinished game
		session := NewSession(1, GameCheckers, stubState{})

		// Then: it is not done
		assert.False(t, session.IsDone())

		// When: the state reports done
		session.State = stubState{done: true}

		// Then: the session is done
		assert.True(t, session.IsDone())
	})

	t.Run("Session without state is not done", func(t *testing.T) {
		session := NewSession(2, GameMastermind, nil)

		assert.False(t, session.IsDone())
	})

	t.Run("Summary carries id, type and done", func(t *testing.T) {
		session := NewSession(3, GameMinesweeper, stubState{done: true})

		assert.Equal(t, Summary{ID: 3, Type: GameMinesweeper, Done: true}, session.Summary())
	})
}
