package entity

import (
	"slices"
	"sync"
)

const (
	GameCheckers    = "checkers"
	GameMastermind  = "mastermind"
	GameMinesweeper = "minesweeper"
)

// GameTypes lists every game the arcade can host, in menu order.
var GameTypes = []string{GameMastermind, GameCheckers, GameMinesweeper}

func IsKnownGame(name string) bool {
	return slices.Contains(GameTypes, name)
}

// State is the game-specific part of a session.
type State interface {
	IsDone() bool
}

// Session is one running game. Callers hold the session lock for the whole of a read or update,
// so operations on one session run one at a time.
type Session struct {
	ID    int64  `json:"session_id"`
	Type  string `json:"game"`
	State State  `json:"-"`

	mu sync.Mutex
}

func NewSession(id int64, gameType string, state State) *Session {
	return &Session{
		ID:    id,
		Type:  gameType,
		State: state,
	}
}

func (that *Session) Lock() {
	that.mu.Lock()
}

func (that *Session) Unlock() {
	that.mu.Unlock()
}

func (that *Session) IsDone() bool {
	return that.State != nil && that.State.IsDone()
}

// Summary is the listing form of a session.
type Summary struct {
	ID   int64  `json:"session_id"`
	Type string `json:"game"`
	Done bool   `json:"done"`
}

// Summary must be called with the session locked.
func (that *Session) Summary() Summary {
	return Summary{ID: that.ID, Type: that.Type, Done: that.IsDone()}
}
