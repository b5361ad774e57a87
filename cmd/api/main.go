package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/estate-crm/internal/api/http"
	"github.com/spec-kit/estate-crm/internal/api/http/handlers"
	"github.com/spec-kit/estate-crm/internal/auth"
	"github.com/spec-kit/estate-crm/internal/config"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/importer"
	"github.com/spec-kit/estate-crm/internal/observability"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/internal/service"
	"github.com/spec-kit/estate-crm/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var snapshots persistence.Snapshotter
	var pinger handlers.Pinger

	switch cfg.Store.Backend {
	case "postgres":
		pg, err := persistence.NewPostgresSnapshotter(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		snapshots = pg
		pinger = pg
	case "redis":
		rd := persistence.NewRedisSnapshotter(cfg.Redis, logger)
		defer rd.Close()
		snapshots = rd
		pinger = rd
	default:
		snapshots = persistence.NewMemorySnapshotter()
	}
	logger.Info("snapshot backend selected", zap.String("backend", cfg.Store.Backend))

	entityStore := store.New(snapshots)
	if err := entityStore.Load(ctx); err != nil {
		logger.Fatal("failed to load snapshots", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()

	leadService := service.NewLeadService(entityStore, dispatcher)
	propertyService := service.NewPropertyService(entityStore, dispatcher)
	teamService := service.NewTeamService(entityStore, dispatcher)
	analyticsService := service.NewAnalyticsService(entityStore)

	notifications := service.NewNotificationService(dispatcher, logger)
	notifications.RegisterHandlers()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	demoCreds, err := auth.DefaultCredentials(cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to seed credentials", zap.Error(err))
	}
	credentials := auth.NewCredentialStore(demoCreds)
	authMiddleware := auth.NewMiddleware(tokens)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pinger),
		Auth:           handlers.NewAuthHandler(credentials, tokens),
		Leads:          handlers.NewLeadsHandler(leadService),
		Properties:     handlers.NewPropertiesHandler(propertyService),
		Team:           handlers.NewTeamHandler(teamService),
		Dashboard:      handlers.NewDashboardHandler(analyticsService),
		AuthMiddleware: authMiddleware,
	})

	if cfg.Importer.SheetURL != "" {
		sheetActor := events.Actor{Name: "sheet-importer", Role: domain.RoleManager}
		poller := importer.NewSheetPoller(cfg.Importer.SheetURL, cfg.Importer.PollInterval(),
			func(ctx context.Context, records []importer.LeadRecord) (int, int, error) {
				return leadService.ImportRecords(ctx, sheetActor, records)
			}, logger)
		poller.Start(ctx)
		defer poller.Stop()
	}

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
