package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/repwise/repwise/internal/catalog"
	"github.com/repwise/repwise/internal/chatbot"
	"github.com/repwise/repwise/internal/envstruct"
	"github.com/repwise/repwise/internal/errors"
	"github.com/repwise/repwise/internal/flightrecorder"
	"github.com/repwise/repwise/internal/history"
	"github.com/repwise/repwise/internal/logging"
	"github.com/repwise/repwise/internal/sqlite"
	"github.com/repwise/repwise/internal/tools"
)

type application struct {
	logger   *slog.Logger
	registry *tools.Registry
	chat     *chatbot.Service
	recorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"REPWISE_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"REPWISE_SQLITE_URL" envDefault:"./repwise.sqlite3"`
	// OpenAIAPIKey enables the conversational coach endpoint when set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// TracesDir enables flight recording of request timeouts when set.
	TracesDir string `env:"REPWISE_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	exercises, err := catalog.Load()
	if err != nil {
		return errors.Wrap(err, "load exercise catalog")
	}

	toolset, err := tools.NewToolset(exercises, history.NewStore(db), logger)
	if err != nil {
		return errors.Wrap(err, "new toolset")
	}
	registry := tools.NewRegistry(logger)
	if err = toolset.RegisterAll(registry); err != nil {
		return errors.Wrap(err, "register tools")
	}

	app := application{
		logger:   logger,
		registry: registry,
		chat:     nil,
		recorder: nil,
	}
	if cfg.OpenAIAPIKey != "" {
		app.chat = chatbot.NewService(cfg.OpenAIAPIKey, registry, logger)
	}
	if cfg.TracesDir != "" {
		recorder, recorderErr := flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			MinAge:          0,
			MaxBytes:        0,
			TracesDirectory: cfg.TracesDir,
		})
		if recorderErr != nil {
			return errors.Wrap(recorderErr, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
		app.recorder = recorder
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
