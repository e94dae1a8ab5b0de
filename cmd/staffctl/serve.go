package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/staffhq/staff-bot/internal/api/http"
	"github.com/staffhq/staff-bot/internal/api/http/handlers"
	"github.com/staffhq/staff-bot/internal/auth"
	"github.com/staffhq/staff-bot/internal/bot"
	"github.com/staffhq/staff-bot/internal/bot/commands"
	"github.com/staffhq/staff-bot/internal/events"
	"github.com/staffhq/staff-bot/internal/observability"
	"github.com/staffhq/staff-bot/internal/persistence"
	"github.com/staffhq/staff-bot/internal/repository"
	"github.com/staffhq/staff-bot/internal/service"
	"github.com/staffhq/staff-bot/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand runs the gateway connection and the query server.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and serve the /query routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(parent context.Context, opts *RootOptions) error {
	cfg, logger := opts.cfg, opts.logger
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	db, err := persistence.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := persistence.Migrate(ctx, db, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	rdb := persistence.NewRedis(cfg.Redis, logger)
	defer rdb.Close()

	metrics := observability.NewMetrics()
	repos := repository.New(db.Gorm)
	dispatcher := events.NewInMemoryDispatcher()

	cache := service.NewLookupCache(rdb.Cmdable(), cfg.Redis.LookupTTL(), logger)
	staffSvc := service.NewStaffService(repos, cache, dispatcher)
	orgSvc := service.NewOrgService(repos)
	ticketSvc := service.NewTicketService(repos.Tickets)
	authSvc := service.NewAuthService(cfg.Auth)

	session, err := bot.NewSession(cfg.Bot)
	if err != nil {
		return err
	}

	notifier := service.NewNotificationService(dispatcher, session, cfg.Bot.AuditChannelID, logger)
	notifications := worker.StartNotificationWorker(ctx, dispatcher, notifier, logger)

	deps := commands.Deps{Staff: staffSvc, Bot: cfg.Bot, Logger: logger}
	slash := commands.Slash(deps)
	registry := bot.NewRegistry(slash, commands.Prefix(deps, slash))
	discord := bot.New(ctx, session, bot.NewDispatcher(bot.DispatcherConfig{
		Registry:       registry,
		Prefix:         cfg.Bot.DevPrefix,
		Dev:            bot.NewStaticDevList(cfg.Bot.DeveloperIDs),
		EnforceDevOnly: cfg.Bot.EnforceDevOnly,
		Logger:         logger,
		Metrics:        metrics,
	}), logger)

	logger.Info("command registry built",
		zap.Int("slash", len(registry.SlashDefinitions())),
		zap.Strings("prefix", registry.PrefixNames()),
	)

	if err := discord.Open(); err != nil {
		cancel()
		notifications.Wait()
		return err
	}

	var redisPinger handlers.Pinger
	if rdb.Enabled() {
		redisPinger = rdb
	}
	health := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics,
		handlers.Check{Name: "database", Pinger: db},
		handlers.Check{Name: "redis", Pinger: redisPinger},
		handlers.Check{Name: "discord", Pinger: discord},
	)

	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.HTTP.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         health,
		Staff:          handlers.NewStaffHandler(staffSvc),
		Org:            handlers.NewOrgHandler(orgSvc),
		Tickets:        handlers.NewTicketsHandler(ticketSvc),
		AuthMiddleware: auth.NewAuthMiddleware(authSvc.Tokens()),
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTP.Addr()))
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	err = waitForShutdown(logger, listenErr)

	if shutdownErr := app.ShutdownWithTimeout(shutdownTimeout); shutdownErr != nil {
		logger.Warn("http shutdown", zap.Error(shutdownErr))
	}
	if closeErr := discord.Close(); closeErr != nil {
		logger.Warn("gateway close", zap.Error(closeErr))
	}
	cancel()
	notifications.Wait()
	logger.Info("stopped")
	return err
}

// waitForShutdown blocks until a termination signal arrives or the listener
// fails.
func waitForShutdown(logger *zap.Logger, listenErr <-chan error) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		return nil
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("http listen: %w", err)
		}
		return nil
	}
}
