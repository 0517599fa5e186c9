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

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/analytics"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/auth"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/ledger"
	"github.com/Marcos6585/Sistema-de-estoque/internal/infrastructure/postgres"
	httpRouter "github.com/Marcos6585/Sistema-de-estoque/internal/interfaces/http"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/config"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/logger"
)

// registerSwagger monta a UI do swagger quando o JSON gerado existe.
// swagger.New entra em pânico com FilePath inexistente; sem o arquivo a UI
// fica desabilitada em vez de impedir o servidor de subir.
func registerSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json não encontrado; UI de docs desabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Sistema de Estoque API",
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("criação do schema")
	}
	if err := postgres.SeedDefaultAdmin(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("seed do administrador padrão")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	userUC := catalog.NewUserUseCase(userRepo)
	ledgerUC := ledger.NewUseCase(txRunner, movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, cfg.Stock.LowStockThreshold)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	registerSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		UserUC:       userUC,
		LedgerUC:     ledgerUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		HistoryLimit: cfg.Stock.HistoryLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
