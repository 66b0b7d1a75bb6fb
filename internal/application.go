package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/arcade-backend/internal/config"
	"github.com/rocketscienceinc/arcade-backend/internal/repository"
	"github.com/rocketscienceinc/arcade-backend/internal/repository/storage"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
	"github.com/rocketscienceinc/arcade-backend/transport/rest"
	"github.com/rocketscienceinc/arcade-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sequence, closeSequence, err := newSequence(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeSequence()

	sessionRepo := repository.NewSessionRepository(sequence)
	arcade := usecase.NewArcadeUseCase(logger, sessionRepo,
		service.NewMastermindService(sessionRepo),
		service.NewCheckersService(sessionRepo),
		service.NewMinesweeperService(sessionRepo, conf.Minesweeper.Size, conf.Minesweeper.Mines),
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, arcade).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, arcade).Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newSequence picks the session id source. The returned func releases it.
func newSequence(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.Sequence, func(), error) {
	if conf.Registry.Sequence != config.SequenceRedis {
		log.Info("Using in-memory session ids")
		return repository.NewMemorySequence(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Using Redis session ids", "addr", redisAddrString)

	return repository.NewRedisSequence(redisStorage), func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}, nil
}
