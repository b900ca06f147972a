package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/billora/billora-api/internal/application/auth"
	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain/document"
	infrapdf "github.com/billora/billora-api/internal/infrastructure/pdf"
	"github.com/billora/billora-api/internal/infrastructure/postgres"
	httpRouter "github.com/billora/billora-api/internal/interfaces/http"
	"github.com/billora/billora-api/pkg/config"
	"github.com/billora/billora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("stock_policy", cfg.Billing.StockPolicy).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool, txRunner)
	transactionRepo := postgres.NewTransactionRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)

	stockPolicy := document.StockAdvisory
	if cfg.Billing.StockPolicy == "strict" {
		stockPolicy = document.StockStrict
	}

	companyUC := billing.NewCompanyUseCase(companyRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	inventoryUC := billing.NewInventoryUseCase(inventoryRepo)
	documentUC := billing.NewDocumentUseCase(
		documentRepo, customerRepo, inventoryRepo, sequenceRepo, transactionRepo, stockPolicy,
	)
	settlementUC := billing.NewSettlementUseCase(documentRepo, transactionRepo, sequenceRepo, log)

	renderer := infrapdf.NewMarotoRenderer(cfg.Billing.TemplatePath)
	exportUC := billing.NewExportUseCase(documentRepo, companyRepo, renderer, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		CustomerUC:   customerUC,
		InventoryUC:  inventoryUC,
		DocumentUC:   documentUC,
		SettlementUC: settlementUC,
		ExportUC:     exportUC,
		SequenceRepo: sequenceRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
