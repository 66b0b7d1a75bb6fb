package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/checkers"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

// ArcadeUseCase is what the transports call: one entry point per operation, the game picked by name.
type ArcadeUseCase interface {
	Games() []string

	Create(ctx context.Context, game string) (int64, error)
	Read(ctx context.Context, game string, id int64) (any, error)
	Update(ctx context.Context, game string, id int64, payload json.RawMessage) (any, error)
	Delete(ctx context.Context, game string, id int64) (int64, error)
	List(ctx context.Context, game string) ([]entity.Summary, error)

	LegalMoves(ctx context.Context, id int64, from checkers.Square) ([]service.LegalMove, error)
}

type sessionRepoDep interface {
	GetSession(ctx context.Context, id int64) (*entity.Session, error)
	DeleteSession(ctx context.Context, id int64) (int64, error)
	ListByType(ctx context.Context, gameType string) ([]*entity.Session, error)
}

type gameServiceDep interface {
	Name() string
	Create(ctx context.Context) (*entity.Session, error)
	Read(session *entity.Session) (any, error)
	Update(session *entity.Session, payload json.RawMessage) (any, error)
}

type arcadeUseCase struct {
	logger      *slog.Logger
	sessionRepo sessionRepoDep
	services    map[string]gameServiceDep
	names       []string
}

func NewArcadeUseCase(logger *slog.Logger, sessionRepo sessionRepoDep, services ...gameServiceDep) ArcadeUseCase {
	useCase := &arcadeUseCase{
		logger:      logger.With("component", "arcade"),
		sessionRepo: sessionRepo,
		services:    make(map[string]gameServiceDep, len(services)),
	}

	for _, svc := range services {
		name := svc.Name()
		useCase.services[name] = svc
		useCase.names = append(useCase.names, name)
	}

	return useCase
}

func (that *arcadeUseCase) Games() []string {
	return append([]string{}, that.names...)
}

func (that *arcadeUseCase) Create(ctx context.Context, game string) (int64, error) {
	log := that.logger.With("method", "Create", "game", game)

	svc, err := that.service(game)
	if err != nil {
		return 0, err
	}

	session, err := svc.Create(ctx)
	if err != nil {
		log.Error("failed to create session", "error", err)
		return 0, fmt.Errorf("failed to create %s session: %w", game, err)
	}

	log.Info("session created", "session_id", session.ID)

	return session.ID, nil
}

func (that *arcadeUseCase) Read(ctx context.Context, game string, id int64) (any, error) {
	svc, session, err := that.lookup(ctx, game, id)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	reply, err := svc.Read(session)
	if err != nil {
		return nil, fmt.Errorf("failed to read session %d: %w", id, err)
	}

	return reply, nil
}

func (that *arcadeUseCase) Update(ctx context.Context, game string, id int64, payload json.RawMessage) (any, error) {
	log := that.logger.With("method", "Update", "game", game, "session_id", id)

	svc, session, err := that.lookup(ctx, game, id)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	reply, err := svc.Update(session, payload)
	if err != nil {
		log.Debug("update rejected", "error", err)
		return nil, fmt.Errorf("failed to update session %d: %w", id, err)
	}

	if session.IsDone() {
		log.Info("game finished")
	}

	return reply, nil
}

func (that *arcadeUseCase) Delete(ctx context.Context, game string, id int64) (int64, error) {
	if _, _, err := that.lookup(ctx, game, id); err != nil {
		return 0, err
	}

	deleted, err := that.sessionRepo.DeleteSession(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete session %d: %w", id, err)
	}

	that.logger.Info("session deleted", "method", "Delete", "game", game, "session_id", id)

	return deleted, nil
}

func (that *arcadeUseCase) List(ctx context.Context, game string) ([]entity.Summary, error) {
	if _, err := that.service(game); err != nil {
		return nil, err
	}

	sessions, err := that.sessionRepo.ListByType(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s sessions: %w", game, err)
	}

	summaries := make([]entity.Summary, 0, len(sessions))
	for _, session := range sessions {
		session.Lock()
		summaries = append(summaries, session.Summary())
		session.Unlock()
	}

	return summaries, nil
}

func (that *arcadeUseCase) LegalMoves(ctx context.Context, id int64, from checkers.Square) ([]service.LegalMove, error) {
	_, session, err := that.lookup(ctx, entity.GameCheckers, id)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	moves, err := service.LegalMoves(session, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal moves of session %d: %w", id, err)
	}

	return moves, nil
}

func (that *arcadeUseCase) service(game string) (gameServiceDep, error) {
	svc, ok := that.services[game]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, game)
	}

	return svc, nil
}

// lookup resolves the game service and the session; a session of another game counts as not found.
func (that *arcadeUseCase) lookup(ctx context.Context, game string, id int64) (gameServiceDep, *entity.Session, error) {
	svc, err := that.service(game)
	if err != nil {
		return nil, nil, err
	}

	session, err := that.sessionRepo.GetSession(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Type != game {
		return nil, nil, fmt.Errorf("%w: session %d is a %s game", apperror.ErrNotFound, id, session.Type)
	}

	return svc, session, nil
}
