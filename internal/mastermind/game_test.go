package mastermind

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	t.Run("Hidden sequence has distinct digits", func(t *testing.T) {
		for seed := range uint64(50) {
			// Given: a seeded generator
			rng := rand.New(rand.NewPCG(seed, seed+1))

			// When: starting a game
			game := NewGame(rng)

			// Then: the hidden sequence is valid
			require.NoError(t, game.hidden.Validate())
			assert.False(t, game.IsDone())
			assert.Empty(t, game.Guesses())
		}
	})

	t.Run("Rejects invalid sequences", func(t *testing.T) {
		_, err := NewGameWithSequence(Sequence{1, 1, 2, 3})
		require.ErrorIs(t, err, apperror.ErrInvalidRequest)

		_, err = NewGameWithSequence(Sequence{0, 1, 2, 10})
		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})
}

func TestScore(t *testing.T) {
	hidden := Sequence{1, 2, 3, 4}

	testCases := []struct {
		name  string
		guess Sequence
		cows  int
		bulls int
	}{
		{name: "Exact match", guess: Sequence{1, 2, 3, 4}, cows: 0, bulls: 4},
		{name: "All digits misplaced", guess: Sequence{4, 3, 2, 1}, cows: 4, bulls: 0},
		{name: "Nothing in common", guess: Sequence{5, 6, 7, 8}, cows: 0, bulls: 0},
		{name: "Mixed", guess: Sequence{1, 3, 0, 9}, cows: 1, bulls: 1},
		{name: "Zero is a digit", guess: Sequence{0, 2, 4, 5}, cows: 1, bulls: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cows, bulls := Score(hidden, tc.guess)

			assert.Equal(t, tc.cows, cows)
			assert.Equal(t, tc.bulls, bulls)
		})
	}
}

func TestGame_Guess(t *testing.T) {
	t.Run("History grows and four bulls finish the game", func(t *testing.T) {
		// Given: a game with a known sequence
		game, err := NewGameWithSequence(Sequence{0, 1, 2, 3})
		require.NoError(t, err)

		// When: guessing twice
		first, err := game.Guess(Sequence{3, 2, 1, 0})
		require.NoError(t, err)
		second, err := game.Guess(Sequence{0, 1, 2, 3})
		require.NoError(t, err)

		// Then: both guesses are scored in order and the game is done
		assert.Equal(t, Guess{Sequence: Sequence{3, 2, 1, 0}, Cows: 4, Bulls: 0}, first)
		assert.Equal(t, Guess{Sequence: Sequence{0, 1, 2, 3}, Cows: 0, Bulls: 4}, second)
		assert.Equal(t, []Guess{first, second}, game.Guesses())
		assert.True(t, game.IsDone())

		// When: guessing after the game ended
		_, err = game.Guess(Sequence{0, 1, 2, 3})

		// Then: it is refused and the history is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Len(t, game.Guesses(), 2)
	})

	t.Run("Invalid guess is not recorded", func(t *testing.T) {
		game, err := NewGameWithSequence(Sequence{0, 1, 2, 3})
		require.NoError(t, err)

		_, err = game.Guess(Sequence{-1, 1, 2, 3})
		require.ErrorIs(t, err, apperror.ErrInvalidRequest)

		_, err = game.Guess(Sequence{4, 4, 5, 6})
		require.ErrorIs(t, err, apperror.ErrInvalidRequest)

		assert.Empty(t, game.Guesses())
		assert.False(t, game.IsDone())
	})

	t.Run("Returned history is a copy", func(t *testing.T) {
		game, err := NewGameWithSequence(Sequence{0, 1, 2, 3})
		require.NoError(t, err)
		_, err = game.Guess(Sequence{5, 6, 7, 8})
		require.NoError(t, err)

		history := game.Guesses()
		history[0].Bulls = 4

		assert.Equal(t, 0, game.Guesses()[0].Bulls)
	})
}
