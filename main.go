package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/arcade-backend/internal"
	"github.com/rocketscienceinc/arcade-backend/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env file: %w", err))
	}

	serve := &cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP and WebSocket servers",
		Action: runServe,
	}

	cmd := &cli.Command{
		Name:  "arcade",
		Usage: "checkers, mastermind and minesweeper over HTTP and WebSocket",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "./config.yml",
				Usage:   "path to the YAML config file",
				Sources: cli.EnvVars("ARCADE_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{serve},
		Action:   runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func runServe(_ context.Context, cmd *cli.Command) error {
	conf := config.MustLoad(cmd.String("config"))
	if level := cmd.String("log-level"); level != "" {
		conf.LogLevel = level
	}

	return app.RunApp(initLogger(conf), conf)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
