package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"groupwarden/domain"
	"groupwarden/internal"
	"groupwarden/moderation"
	"groupwarden/observability"
	"groupwarden/repositories"
	"groupwarden/runtime/workers"
	"groupwarden/services"
	"groupwarden/transport"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// main stays a thin wrapper so every defer in run executes before the
	// process exits.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := internal.LoggerFromLevel(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation configuration; self-heals to defaults on first run.
	rulesStore := repositories.NewRuleSetStore(db)
	rules, err := rulesStore.LoadOrCreateDefault()
	if err != nil {
		return exitRuntime, fmt.Errorf("loading rule set: %w", err)
	}
	logger.Info("Rule set active",
		"version", rules.Version,
		"words", len(rules.OffensiveWords),
		"spam_limit", rules.SpamLimit)

	escalator, err := moderation.NewEscalator(rules.OffensiveWords)
	if err != nil {
		return exitRuntime, fmt.Errorf("building escalator: %w", err)
	}

	monitor := observability.NewMonitor()
	pipeline := moderation.NewPipeline(
		repositories.NewUserRecordStore(db),
		moderation.NewSpamWindow(rules.SpamLimit),
		escalator,
		monitor,
		logger,
	)

	// 4. Transport
	telegram, err := transport.NewTelegram(config.BotToken)
	if err != nil {
		return exitRuntime, err
	}

	messages := make(chan domain.InboundMessage, config.BufferSize)
	commands := make(chan domain.Command, config.BufferSize)
	actions := make(chan domain.Action, config.BufferSize)

	broadcast := services.NewBroadcastService(telegram, logger)
	news := services.NewNewsService(http.DefaultClient, config.NewsAPIKey, logger)

	// 5. Workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		transport.NewPoller(telegram, config.PollTimeout, messages, commands, logger),
		workers.NewCommandWorker(broadcast, news, commands, actions, logger),
		workers.NewTransportWorker(telegram, actions, monitor, logger),
		workers.NewMonitorWorker(monitor, config.MetricInterval, logger),
	)
	for i := 0; i < config.NumberOfWorkers; i++ {
		supervisor.Add(workers.NewModerationWorker(pipeline, messages, actions, monitor, logger))
	}
	if config.BroadcastChatID != nil {
		supervisor.Add(workers.NewScheduleWorker(config.BroadcastCron, *config.BroadcastChatID, actions, logger))
	}

	logger.Info("Bot started", "workers", config.NumberOfWorkers)
	supervisor.Run(ctx)

	logger.Info("Bot stopped")
	return exitOK, nil
}
