package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/checkers"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

type CheckersReply struct {
	SessionID int64             `json:"session_id"`
	Done      bool              `json:"done"`
	Game      checkers.Snapshot `json:"game"`
}

// LegalMove is one destination reachable from a square with the squares captured on the way.
type LegalMove struct {
	To       checkers.Square   `json:"to"`
	Captures []checkers.Square `json:"captures"`
}

type checkersMove struct {
	Move [][]int `json:"move"`
}

type checkersService struct {
	sessionRepo sessionRepo
}

func NewCheckersService(sessionRepo sessionRepo) GameService {
	return &checkersService{
		sessionRepo: sessionRepo,
	}
}

func (that *checkersService) Name() string {
	return entity.GameCheckers
}

func (that *checkersService) Create(ctx context.Context) (*entity.Session, error) {
	session, err := that.sessionRepo.CreateSession(ctx, entity.GameCheckers, checkers.NewGame())
	if err != nil {
		return nil, fmt.Errorf("failed to create checkers session: %w", err)
	}

	return session, nil
}

func (that *checkersService) Read(session *entity.Session) (any, error) {
	game, err := stateOf[*checkers.Game](session)
	if err != nil {
		return nil, err
	}

	return CheckersReply{
		SessionID: session.ID,
		Done:      game.IsDone(),
		Game:      game.Board().Snapshot(),
	}, nil
}

func (that *checkersService) Update(session *entity.Session, payload json.RawMessage) (any, error) {
	game, err := stateOf[*checkers.Game](session)
	if err != nil {
		return nil, err
	}

	origin, dest, err := parseCheckersMove(payload)
	if err != nil {
		return nil, err
	}

	snapshot, err := game.ApplyMove(origin, dest)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move %s -> %s: %w", origin, dest, err)
	}

	return CheckersReply{
		SessionID: session.ID,
		Done:      game.IsDone(),
		Game:      snapshot,
	}, nil
}

// LegalMoves lists the destinations of the piece on from, sorted by row then column.
func LegalMoves(session *entity.Session, from checkers.Square) ([]LegalMove, error) {
	game, err := stateOf[*checkers.Game](session)
	if err != nil {
		return nil, err
	}

	if !from.InPlayableRange() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, from)
	}

	moves, err := game.Board().LegalDestinations(from)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal moves from %s: %w", from, err)
	}

	out := make([]LegalMove, 0, len(moves))
	for dest, captured := range moves {
		captures := make([]checkers.Square, 0, len(captured))
		for _, piece := range captured {
			captures = append(captures, piece.Square())
		}
		out = append(out, LegalMove{To: dest, Captures: captures})
	}

	slices.SortFunc(out, func(a, b LegalMove) int {
		return cmp.Or(cmp.Compare(a.To.Row, b.To.Row), cmp.Compare(a.To.Col, b.To.Col))
	})

	return out, nil
}

func parseCheckersMove(payload json.RawMessage) (checkers.Square, checkers.Square, error) {
	var request checkersMove
	if err := decodePayload(payload, &request); err != nil {
		return checkers.Square{}, checkers.Square{}, err
	}

	if len(request.Move) != 2 {
		return checkers.Square{}, checkers.Square{}, fmt.Errorf("%w: move needs an origin and a destination", apperror.ErrInvalidRequest)
	}

	originRow, originCol, err := pair(request.Move[0], "origin")
	if err != nil {
		return checkers.Square{}, checkers.Square{}, err
	}

	destRow, destCol, err := pair(request.Move[1], "destination")
	if err != nil {
		return checkers.Square{}, checkers.Square{}, err
	}

	return checkers.Square{Row: originRow, Col: originCol}, checkers.Square{Row: destRow, Col: destCol}, nil
}
