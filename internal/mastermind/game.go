package mastermind

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const (
	SequenceLength = 4
	maxDigit       = 9
)

// Sequence is an ordered set of distinct digits.
type Sequence [SequenceLength]int

// Guess is one scored attempt. Bulls are right digits in the right slot,
// cows are right digits in the wrong slot.
type Guess struct {
	Sequence Sequence `json:"guess"`
	Cows     int      `json:"cows"`
	Bulls    int      `json:"bulls"`
}

// Game holds the hidden sequence and every guess made against it.
type Game struct {
	hidden  Sequence
	guesses []Guess
	done    bool
}

// NewGame draws a hidden sequence of distinct digits from rng.
func NewGame(rng *rand.Rand) *Game {
	var hidden Sequence
	copy(hidden[:], rng.Perm(maxDigit + 1)[:SequenceLength])

	return &Game{hidden: hidden}
}

func NewGameWithSequence(hidden Sequence) (*Game, error) {
	if err := hidden.Validate(); err != nil {
		return nil, err
	}

	return &Game{hidden: hidden}, nil
}

// Validate checks that every digit lies in 0..9 and no digit repeats.
func (that Sequence) Validate() error {
	seen := make(map[int]struct{}, SequenceLength)

	for _, digit := range that {
		if digit < 0 || digit > maxDigit {
			return fmt.Errorf("%w: digit %d is outside 0..%d", apperror.ErrInvalidRequest, digit, maxDigit)
		}

		if _, ok := seen[digit]; ok {
			return fmt.Errorf("%w: digit %d repeats", apperror.ErrInvalidRequest, digit)
		}
		seen[digit] = struct{}{}
	}

	return nil
}

// Score compares guess against hidden.
func Score(hidden, guess Sequence) (cows, bulls int) {
	for i, digit := range guess {
		if hidden[i] == digit {
			bulls++
			continue
		}

		for _, other := range hidden {
			if other == digit {
				cows++
				break
			}
		}
	}

	return cows, bulls
}

// Guess scores an attempt, appends it to the history and finishes the game on four bulls.
func (that *Game) Guess(sequence Sequence) (Guess, error) {
	if that.done {
		return Guess{}, apperror.ErrGameFinished
	}

	if err := sequence.Validate(); err != nil {
		return Guess{}, err
	}

	cows, bulls := Score(that.hidden, sequence)
	guess := Guess{Sequence: sequence, Cows: cows, Bulls: bulls}

	that.guesses = append(that.guesses, guess)
	if bulls == SequenceLength {
		that.done = true
	}

	return guess, nil
}

// Guesses returns a copy of the history, oldest first.
func (that *Game) Guesses() []Guess {
	return append([]Guess{}, that.guesses...)
}

func (that *Game) IsDone() bool {
	return that.done
}
