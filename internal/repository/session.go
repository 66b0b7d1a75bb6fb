package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

// SessionRepository is the registry of running sessions shared by every game type.
type SessionRepository interface {
	CreateSession(ctx context.Context, gameType string, state entity.State) (*entity.Session, error)
	GetSession(ctx context.Context, id int64) (*entity.Session, error)
	DeleteSession(ctx context.Context, id int64) (int64, error)
	IsDone(ctx context.Context, id int64) (bool, error)
	ListByType(ctx context.Context, gameType string) ([]*entity.Session, error)
}

type registry struct {
	sequence Sequence

	mu       sync.RWMutex
	sessions map[int64]*entity.Session
}

func NewSessionRepository(sequence Sequence) SessionRepository {
	return &registry{
		sequence: sequence,
		sessions: make(map[int64]*entity.Session),
	}
}

func (that *registry) CreateSession(ctx context.Context, gameType string, state entity.State) (*entity.Session, error) {
	id, err := that.sequence.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate session id: %w", err)
	}

	session := entity.NewSession(id, gameType, state)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.sessions[id]; exists {
		return nil, fmt.Errorf("%w: session id %d issued twice", apperror.ErrInvariantViolation, id)
	}
	that.sessions[id] = session

	return session, nil
}

func (that *registry) GetSession(_ context.Context, id int64) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrNotFound, id)
	}

	return session, nil
}

func (that *registry) DeleteSession(_ context.Context, id int64) (int64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return 0, fmt.Errorf("%w: %d", apperror.ErrNotFound, id)
	}
	delete(that.sessions, id)

	return id, nil
}

func (that *registry) IsDone(ctx context.Context, id int64) (bool, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return false, err
	}

	session.Lock()
	defer session.Unlock()

	return session.IsDone(), nil
}

// ListByType returns the sessions of one game ordered by id.
func (that *registry) ListByType(_ context.Context, gameType string) ([]*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	sessions := make([]*entity.Session, 0)
	for _, session := range that.sessions {
		if session.Type == gameType {
			sessions = append(sessions, session)
		}
	}

	slices.SortFunc(sessions, func(a, b *entity.Session) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return sessions, nil
}
