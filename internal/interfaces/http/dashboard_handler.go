package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/analytics"
)

// DashboardHandler métricas agregadas consumidas pelo painel web.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Métricas rápidas do estoque
// @Description  Total de itens, valor do estoque, produtos cadastrados e contagem de estoque baixo.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(summary)
}

// Categories godoc
// @Summary      Quantidade total por categoria
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardCategoriesDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/categories [get]
func (h *DashboardHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.uc.GetCategories(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(categories)
}
