package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/checkers"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

const (
	actionCreate  = "game:create"
	actionRead    = "game:read"
	actionUpdate  = "game:update"
	actionDelete  = "game:delete"
	actionList    = "game:list"
	actionMoves   = "game:moves"
	actionUpdated = "game:updated"
	actionDeleted = "game:deleted"
	actionError   = "error"

	internalErrorMessage = "internal error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of every client request.
type Payload struct {
	Game      string           `json:"game"`
	SessionID int64            `json:"session_id,omitempty"`
	Update    json.RawMessage  `json:"update,omitempty"`
	From      *checkers.Square `json:"from,omitempty"`
}

// ResponsePayload is the body of every server message. SessionID is 0 on errors.
type ResponsePayload struct {
	SessionID int64               `json:"session_id"`
	Game      string              `json:"game,omitempty"`
	Reply     any                 `json:"reply,omitempty"`
	Sessions  []entity.Summary    `json:"sessions,omitempty"`
	Moves     []service.LegalMove `json:"moves,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func parsePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, fmt.Errorf("%w: payload is required", apperror.ErrInvalidRequest)
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	return payload, nil
}

func encode(action string, payload ResponsePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return data, nil
}

// errorMessage hides errors that are not caused by the request.
func errorMessage(err error) string {
	for _, known := range []error{
		apperror.ErrNotFound,
		apperror.ErrUnknownGame,
		apperror.ErrInvalidRequest,
		apperror.ErrOutOfRange,
		apperror.ErrIllegalMove,
		apperror.ErrGameFinished,
	} {
		if errors.Is(err, known) {
			return err.Error()
		}
	}

	return internalErrorMessage
}
