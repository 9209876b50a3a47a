// Package main contains the entrypoint for the chatbot gateway.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gptline/gptline/internal/bot"
	"github.com/gptline/gptline/internal/bot/handlers"
	"github.com/gptline/gptline/internal/bot/tasks"
	"github.com/gptline/gptline/internal/config"
	"github.com/gptline/gptline/internal/keyword"
	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/logger"
	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
	"github.com/gptline/gptline/internal/registry"
	"github.com/gptline/gptline/internal/server"
	"github.com/gptline/gptline/internal/storage"
	"github.com/gptline/gptline/internal/website"
	"github.com/gptline/gptline/internal/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components, handles graceful
// shutdown, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.LogJSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.LogLevel, "json", cfg.LogJSON)

	var store storage.Store
	if cfg.UseDocumentStore {
		db, err := storage.NewDB(cfg.DBPath)
		if err != nil {
			log.Error("Failed to open database", "path", cfg.DBPath, "error", err)
			return 1
		}
		defer storage.CloseDB(db)
		store = storage.NewSQLiteStore(db, log)
	} else {
		store = storage.NewFileStore(cfg.FileStoragePath, log)
	}

	mem := memory.New(cfg.SystemMessage, cfg.MemoryMessageCount)
	reg := registry.New()
	newModel := func(apiKey string) openai.Model {
		return openai.New(apiKey, cfg.RequestTimeout, log)
	}

	restored, err := reg.Rehydrate(ctx, store, newModel)
	if err != nil {
		log.Error("Failed to load registrations", "error", err)
		return 1
	}
	log.Info("Restored registrations", "count", restored)

	lineClient := line.NewClient(cfg.LineChannelAccessToken, log)
	audioDir := filepath.Join(os.TempDir(), "gptline-audio")

	deps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Memory:   mem,
		Registry: reg,
		Store:    store,
		Injector: keyword.NewInjector(keyword.DefaultCategories()),
		Website:  website.New(cfg.RequestTimeout, log),
		Youtube:  youtube.New(cfg.TranscriptChunkStep, cfg.RequestTimeout, log),
		Line:     lineClient,
		AudioDir: audioDir,
		NewModel: newModel,
	}

	srv := server.New(cfg, handlers.NewDispatcher(deps), lineClient, log)

	sched, err := bot.NewScheduler(log, cfg.Tasks, tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger:   log,
		Store:    store,
		AudioDir: audioDir,
	}))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.New(log, srv, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	// Allow logs to flush before exiting
	time.Sleep(time.Second)
	return 0
}
