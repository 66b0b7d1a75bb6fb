package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/checkers"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

const maxBodySize = 4 << 10

type arcadeUseCase interface {
	Games() []string

	Create(ctx context.Context, game string) (int64, error)
	Read(ctx context.Context, game string, id int64) (any, error)
	Update(ctx context.Context, game string, id int64, payload json.RawMessage) (any, error)
	Delete(ctx context.Context, game string, id int64) (int64, error)
	List(ctx context.Context, game string) ([]entity.Summary, error)

	LegalMoves(ctx context.Context, id int64, from checkers.Square) ([]service.LegalMove, error)
}

type SessionReply struct {
	SessionID int64 `json:"session_id"`
}

type ListReply struct {
	Game     string           `json:"game"`
	Sessions []entity.Summary `json:"sessions"`
}

type MovesReply struct {
	SessionID int64               `json:"session_id"`
	From      checkers.Square     `json:"from"`
	Moves     []service.LegalMove `json:"moves"`
}

type MenuEntry struct {
	Name     string `json:"name"`
	Sessions string `json:"sessions"`
}

type MenuReply struct {
	Games []MenuEntry `json:"games"`
}

type ArcadeHandler interface {
	Menu(ctx echo.Context) error
	Create(ctx echo.Context) error
	List(ctx echo.Context) error
	Read(ctx echo.Context) error
	Update(ctx echo.Context) error
	Delete(ctx echo.Context) error
	LegalMoves(ctx echo.Context) error
}

type arcadeHandler struct {
	logger *slog.Logger
	arcade arcadeUseCase
}

func NewArcadeHandler(logger *slog.Logger, arcade arcadeUseCase) ArcadeHandler {
	return &arcadeHandler{
		logger: logger.With("component", "rest.arcade"),
		arcade: arcade,
	}
}

func (that *arcadeHandler) Menu(ctx echo.Context) error {
	games := that.arcade.Games()

	menu := MenuReply{Games: make([]MenuEntry, 0, len(games))}
	for _, name := range games {
		menu.Games = append(menu.Games, MenuEntry{
			Name:     name,
			Sessions: "/api/games/" + name + "/sessions",
		})
	}

	return ctx.JSON(http.StatusOK, menu)
}

func (that *arcadeHandler) Create(ctx echo.Context) error {
	log := that.logger.With("method", "Create")

	id, err := that.arcade.Create(ctx.Request().Context(), ctx.Param("game"))
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusCreated, SessionReply{SessionID: id})
}

func (that *arcadeHandler) List(ctx echo.Context) error {
	log := that.logger.With("method", "List")
	game := ctx.Param("game")

	sessions, err := that.arcade.List(ctx.Request().Context(), game)
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, ListReply{Game: game, Sessions: sessions})
}

func (that *arcadeHandler) Read(ctx echo.Context) error {
	log := that.logger.With("method", "Read")

	id, err := sessionID(ctx)
	if err != nil {
		return sendError(ctx, log, err)
	}

	reply, err := that.arcade.Read(ctx.Request().Context(), ctx.Param("game"), id)
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, reply)
}

func (that *arcadeHandler) Update(ctx echo.Context) error {
	log := that.logger.With("method", "Update")

	id, err := sessionID(ctx)
	if err != nil {
		return sendError(ctx, log, err)
	}

	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBodySize))
	if err != nil {
		return sendError(ctx, log, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err))
	}

	reply, err := that.arcade.Update(ctx.Request().Context(), ctx.Param("game"), id, body)
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, reply)
}

func (that *arcadeHandler) Delete(ctx echo.Context) error {
	log := that.logger.With("method", "Delete")

	id, err := sessionID(ctx)
	if err != nil {
		return sendError(ctx, log, err)
	}

	deleted, err := that.arcade.Delete(ctx.Request().Context(), ctx.Param("game"), id)
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, SessionReply{SessionID: deleted})
}

func (that *arcadeHandler) LegalMoves(ctx echo.Context) error {
	log := that.logger.With("method", "LegalMoves")

	id, err := sessionID(ctx)
	if err != nil {
		return sendError(ctx, log, err)
	}

	var from checkers.Square
	if err = echo.QueryParamsBinder(ctx).
		MustInt("row", &from.Row).
		MustInt("col", &from.Col).
		BindError(); err != nil {
		return sendError(ctx, log, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err))
	}

	moves, err := that.arcade.LegalMoves(ctx.Request().Context(), id, from)
	if err != nil {
		return sendError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, MovesReply{SessionID: id, From: from, Moves: moves})
}

func sessionID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: session id %q", apperror.ErrInvalidRequest, ctx.Param("id"))
	}

	return id, nil
}
