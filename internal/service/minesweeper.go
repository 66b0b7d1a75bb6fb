package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/minesweeper"
)

type MinesweeperReply struct {
	SessionID int64    `json:"session_id"`
	Board     []string `json:"board"`
	Mines     int      `json:"mines"`
	Flags     int      `json:"flags"`
	Done      bool     `json:"done"`
	Won       bool     `json:"won"`
}

type minesweeperAction struct {
	Reveal []int `json:"reveal"`
	Flag   []int `json:"flag"`
}

type minesweeperService struct {
	sessionRepo sessionRepo
	size        int
	mines       int
	random      func() *rand.Rand
}

// NewMinesweeperService builds boards of size x size with the given number of mines.
func NewMinesweeperService(sessionRepo sessionRepo, size, mines int) GameService {
	return &minesweeperService{
		sessionRepo: sessionRepo,
		size:        size,
		mines:       mines,
		random:      newRand,
	}
}

func (that *minesweeperService) Name() string {
	return entity.GameMinesweeper
}

func (that *minesweeperService) Create(ctx context.Context) (*entity.Session, error) {
	board, err := minesweeper.NewBoard(that.size, that.mines, that.random())
	if err != nil {
		return nil, fmt.Errorf("failed to build minesweeper board: %w", err)
	}

	session, err := that.sessionRepo.CreateSession(ctx, entity.GameMinesweeper, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create minesweeper session: %w", err)
	}

	return session, nil
}

func (that *minesweeperService) Read(session *entity.Session) (any, error) {
	board, err := stateOf[*minesweeper.Board](session)
	if err != nil {
		return nil, err
	}

	return MinesweeperReply{
		SessionID: session.ID,
		Board:     board.Render(),
		Mines:     board.Mines(),
		Flags:     board.FlagsLeft(),
		Done:      board.IsDone(),
		Won:       board.IsWon(),
	}, nil
}

func (that *minesweeperService) Update(session *entity.Session, payload json.RawMessage) (any, error) {
	board, err := stateOf[*minesweeper.Board](session)
	if err != nil {
		return nil, err
	}

	var request minesweeperAction
	if err = decodePayload(payload, &request); err != nil {
		return nil, err
	}

	switch {
	case request.Reveal != nil && request.Flag != nil:
		return nil, fmt.Errorf("%w: reveal and flag are exclusive", apperror.ErrInvalidRequest)
	case request.Reveal != nil:
		row, col, err := pair(request.Reveal, "reveal")
		if err != nil {
			return nil, err
		}

		if err = board.Reveal(minesweeper.Position{Row: row, Col: col}); err != nil {
			return nil, fmt.Errorf("failed to reveal %d,%d: %w", row, col, err)
		}
	case request.Flag != nil:
		row, col, err := pair(request.Flag, "flag")
		if err != nil {
			return nil, err
		}

		if err = board.ToggleFlag(minesweeper.Position{Row: row, Col: col}); err != nil {
			return nil, fmt.Errorf("failed to flag %d,%d: %w", row, col, err)
		}
	default:
		return nil, fmt.Errorf("%w: either reveal or flag is required", apperror.ErrInvalidRequest)
	}

	return that.Read(session)
}
