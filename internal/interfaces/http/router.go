package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/analytics"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/auth"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/ledger"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC    *catalog.ProductUseCase
	UserUC       *catalog.UserUseCase
	LedgerUC     *ledger.UseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
	HistoryLimit int // limite padrão do histórico (ESTOQUE_HISTORY_LIMIT)
}

// Router registra as rotas da API.
//
// Leitura (listagem, painel, export) é pública; escrita exige Bearer Token;
// gestão de usuários e remoção de produtos exigem o papel administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Listagem e consulta de produtos (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Painel (público)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/categories", dashboardHandler.Categories)

	// Export (público, mesmos filtros da listagem)
	exportHandler := NewExportHandler(deps.ProductUC)
	export := api.Group("/export")
	export.Get("/csv", exportHandler.CSV)
	export.Get("/xlsx", exportHandler.XLSX)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrita de produtos (protegido; remoção só para administrador)
	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", RequireRole(entity.RoleAdministrador), productHandler.Delete)

	// Movimentações (protegido)
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.HistoryLimit)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Usuários (somente administrador)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireRole(entity.RoleAdministrador))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)
}
