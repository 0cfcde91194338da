package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	catalogmemory "github.com/storegate/backoffice/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/storegate/backoffice/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/storegate/backoffice/internal/domains/catalog/application"
	catalogports "github.com/storegate/backoffice/internal/domains/catalog/ports"

	membersmemory "github.com/storegate/backoffice/internal/domains/members/adapters/memory"
	memberspostgres "github.com/storegate/backoffice/internal/domains/members/adapters/persistence/postgres"
	membersapp "github.com/storegate/backoffice/internal/domains/members/application"
	membersports "github.com/storegate/backoffice/internal/domains/members/ports"

	ordersmemory "github.com/storegate/backoffice/internal/domains/orders/adapters/memory"
	ordersobs "github.com/storegate/backoffice/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/storegate/backoffice/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/storegate/backoffice/internal/domains/orders/application"
	ordersports "github.com/storegate/backoffice/internal/domains/orders/ports"

	"github.com/storegate/backoffice/internal/platform/migrations"
	platformobservability "github.com/storegate/backoffice/internal/platform/observability"
	platformpostgres "github.com/storegate/backoffice/internal/platform/postgres"
	"github.com/storegate/backoffice/internal/server"
)

// Run boots the back office HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "shop-backoffice-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	deps, cleanup := buildDependencies(ctx, cfg, logger)
	defer cleanup()

	catalogService := catalogapp.NewService(deps.itemRepo)
	memberService := membersapp.NewService(deps.memberRepo)
	orderService := ordersobs.New(
		ordersapp.NewService(deps.orderRepo, deps.itemStore, deps.memberDirectory, deps.tx),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	handlers := server.Handlers{
		OrderAPI:  server.NewOrderAPI(orderService),
		MemberAPI: server.NewMemberAPI(memberService),
		ItemAPI:   server.NewItemAPI(catalogService),
	}

	router := server.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("back office API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("back office API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// dependencies groups the persistence side of the wiring so postgres and
// memory setups stay interchangeable.
type dependencies struct {
	itemRepo        catalogports.Repository
	memberRepo      membersports.Repository
	orderRepo       ordersports.Repository
	itemStore       ordersports.ItemStore
	memberDirectory ordersports.MemberDirectory
	tx              ordersports.Transactor
}

func buildDependencies(ctx context.Context, cfg Config, logger *slog.Logger) (dependencies, func()) {
	if cfg.PostgresDSN != "" {
		db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
		if err == nil {
			return buildPostgresDependencies(db, logger)
		}
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
	} else {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
	}
	return buildMemoryDependencies(), func() {}
}

func buildPostgresDependencies(db *gorm.DB, logger *slog.Logger) (dependencies, func()) {
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations", slog.String("error", err.Error()))
	}
	itemRepo := catalogpostgres.NewRepository(db)
	memberRepo := memberspostgres.NewRepository(db)
	deps := dependencies{
		itemRepo:        itemRepo,
		memberRepo:      memberRepo,
		orderRepo:       orderspostgres.NewRepository(db),
		itemStore:       itemRepo,
		memberDirectory: memberRepo,
		tx:              platformpostgres.NewTransactor(db),
	}
	logger.Info("repositories configured with postgres")
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return deps, cleanup
}

func buildMemoryDependencies() dependencies {
	itemRepo := catalogmemory.NewRepository()
	memberRepo := membersmemory.NewRepository()
	return dependencies{
		itemRepo:        itemRepo,
		memberRepo:      memberRepo,
		orderRepo:       ordersmemory.NewRepository(memberRepo),
		itemStore:       itemRepo,
		memberDirectory: memberRepo,
		tx:              ordersmemory.NewTransactor(),
	}
}
