package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

// GameService creates, reads and updates the sessions of one game type.
// Read and Update expect the caller to hold the session lock.
type GameService interface {
	Name() string
	Create(ctx context.Context) (*entity.Session, error)
	Read(session *entity.Session) (any, error)
	Update(session *entity.Session, payload json.RawMessage) (any, error)
}

type sessionRepo interface {
	CreateSession(ctx context.Context, gameType string, state entity.State) (*entity.Session, error)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game randomness
}

// decodePayload strictly decodes an update body into dst.
func decodePayload(payload json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("%w: empty payload", apperror.ErrInvalidRequest)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	return nil
}

// pair reads a two-element coordinate.
func pair(values []int, field string) (int, int, error) {
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("%w: %s needs two coordinates, got %d", apperror.ErrInvalidRequest, field, len(values))
	}

	return values[0], values[1], nil
}

func stateOf[T entity.State](session *entity.Session) (T, error) {
	state, ok := session.State.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: session %d holds %T", apperror.ErrInvariantViolation, session.ID, session.State)
	}

	return state, nil
}
