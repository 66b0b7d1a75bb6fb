package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/arcade-backend/internal/checkers"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

const (
	readTimeout     = 10 * time.Second
	idleTimeout     = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type arcadeUseCase interface {
	Create(ctx context.Context, game string) (int64, error)
	Read(ctx context.Context, game string, id int64) (any, error)
	Update(ctx context.Context, game string, id int64, payload json.RawMessage) (any, error)
	Delete(ctx context.Context, game string, id int64) (int64, error)
	List(ctx context.Context, game string) ([]entity.Summary, error)

	LegalMoves(ctx context.Context, id int64, from checkers.Square) ([]service.LegalMove, error)
}

type handlerFunc func(ctx context.Context, c *client, msg *Message) error

type Server struct {
	logger   *slog.Logger
	arcade   arcadeUseCase
	hub      *hub
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, arcade arcadeUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		arcade: arcade,
		hub:    newHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionCreate] = server.handleCreate
	server.handlers[actionRead] = server.handleRead
	server.handlers[actionUpdate] = server.handleUpdate
	server.handlers[actionDelete] = server.handleDelete
	server.handlers[actionList] = server.handleList
	server.handlers[actionMoves] = server.handleMoves

	return server
}

// Handler returns the routes of the websocket server.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: readTimeout,
		IdleTimeout: idleTimeout,
	}

	go func() {
		<-ctx.Done()

		that.hub.closeAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS upgrades the connection and serves it until the peer goes away.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	id := uuid.NewString()
	c := newClient(id, conn, that.logger.With("connection", id))

	that.hub.register(c)
	log.Info("WebSocket connection established", "connection", id)

	go c.writePump()
	that.readPump(req.Context(), c)

	log.Info("WebSocket connection closed", "connection", id)
}

func (that *Server) readPump(ctx context.Context, c *client) {
	defer that.hub.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected close", "error", err)
			}
			return
		}

		that.handleMessage(ctx, c, data)
	}
}

func (that *Server) handleMessage(ctx context.Context, c *client, data []byte) {
	log := c.logger.With("method", "handleMessage")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Debug("failed to unmarshal message", "error", err)
		that.reply(c, actionError, ResponsePayload{Error: "malformed message"})
		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action", "action", message.Action)
		that.reply(c, actionError, ResponsePayload{Error: "unknown action " + message.Action})
		return
	}

	if err := handler(ctx, c, &message); err != nil {
		text := errorMessage(err)
		if text == internalErrorMessage {
			log.Error("error processing message", "action", message.Action, "error", err)
		} else {
			log.Debug("request rejected", "action", message.Action, "error", err)
		}

		that.reply(c, message.Action, ResponsePayload{Error: text})
	}
}

func (that *Server) reply(c *client, action string, payload ResponsePayload) {
	data, err := encode(action, payload)
	if err != nil {
		c.logger.Error("failed to encode reply", "error", err)
		return
	}

	if !c.enqueue(data) {
		c.logger.Warn("reply dropped, disconnecting")
		that.hub.unregister(c)
	}
}
