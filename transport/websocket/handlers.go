package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

func (that *Server) handleCreate(ctx context.Context, c *client, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	id, err := that.arcade.Create(ctx, payload.Game)
	if err != nil {
		return err
	}

	reply, err := that.arcade.Read(ctx, payload.Game, id)
	if err != nil {
		return err
	}

	that.hub.subscribe(id, c)
	that.reply(c, msg.Action, ResponsePayload{SessionID: id, Game: payload.Game, Reply: reply})

	return nil
}

// handleRead also subscribes the connection to later updates of the session.
func (that *Server) handleRead(ctx context.Context, c *client, msg *Message) error {
	payload, err := parseSessionPayload(msg)
	if err != nil {
		return err
	}

	reply, err := that.arcade.Read(ctx, payload.Game, payload.SessionID)
	if err != nil {
		return err
	}

	that.hub.subscribe(payload.SessionID, c)
	that.reply(c, msg.Action, ResponsePayload{SessionID: payload.SessionID, Game: payload.Game, Reply: reply})

	return nil
}

func (that *Server) handleUpdate(ctx context.Context, c *client, msg *Message) error {
	payload, err := parseSessionPayload(msg)
	if err != nil {
		return err
	}

	reply, err := that.arcade.Update(ctx, payload.Game, payload.SessionID, payload.Update)
	if err != nil {
		return err
	}

	that.hub.subscribe(payload.SessionID, c)

	response := ResponsePayload{SessionID: payload.SessionID, Game: payload.Game, Reply: reply}
	that.reply(c, msg.Action, response)

	data, err := encode(actionUpdated, response)
	if err != nil {
		return err
	}
	that.hub.broadcast(payload.SessionID, c, data)

	return nil
}

func (that *Server) handleDelete(ctx context.Context, c *client, msg *Message) error {
	payload, err := parseSessionPayload(msg)
	if err != nil {
		return err
	}

	id, err := that.arcade.Delete(ctx, payload.Game, payload.SessionID)
	if err != nil {
		return err
	}

	response := ResponsePayload{SessionID: id, Game: payload.Game}

	data, err := encode(actionDeleted, response)
	if err != nil {
		return err
	}
	that.hub.broadcast(id, c, data)
	that.hub.drop(id)

	that.reply(c, msg.Action, response)

	return nil
}

func (that *Server) handleList(ctx context.Context, c *client, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	sessions, err := that.arcade.List(ctx, payload.Game)
	if err != nil {
		return err
	}

	that.reply(c, msg.Action, ResponsePayload{Game: payload.Game, Sessions: sessions})

	return nil
}

func (that *Server) handleMoves(ctx context.Context, c *client, msg *Message) error {
	payload, err := parseSessionPayload(msg)
	if err != nil {
		return err
	}

	if payload.From == nil {
		return fmt.Errorf("%w: from is required", apperror.ErrInvalidRequest)
	}

	moves, err := that.arcade.LegalMoves(ctx, payload.SessionID, *payload.From)
	if err != nil {
		return err
	}

	that.reply(c, msg.Action, ResponsePayload{SessionID: payload.SessionID, Game: payload.Game, Moves: moves})

	return nil
}

func parseSessionPayload(msg *Message) (Payload, error) {
	payload, err := parsePayload(msg)
	if err != nil {
		return payload, err
	}

	if payload.SessionID <= 0 {
		return payload, fmt.Errorf("%w: session_id must be positive", apperror.ErrInvalidRequest)
	}

	return payload, nil
}
