package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/ledger"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// MovementHandler trata o registro e a listagem de movimentações (protegido).
type MovementHandler struct {
	uc *ledger.UseCase
	// limite de linhas quando a requisição não manda ?limit
	// (ESTOQUE_HISTORY_LIMIT na configuração)
	historyLimit int
}

// NewMovementHandler constrói o handler. historyLimit <= 0 usa o padrão.
func NewMovementHandler(uc *ledger.UseCase, historyLimit int) *MovementHandler {
	if historyLimit <= 0 {
		historyLimit = ledger.DefaultHistoryLimit
	}
	return &MovementHandler{uc: uc, historyLimit: historyLimit}
}

// Register godoc
// @Summary      Registrar entrada ou saída de estoque
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimentação"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), ledger.MovementInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Kind:       in.Kind,
		ActingUser: GetUserName(c),
		Note:       in.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		MovementID:  result.MovementID,
		ProductID:   in.ProductID,
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		NewQuantity: result.NewQuantity,
	})
}

// List godoc
// @Summary      Histórico de movimentações (mais recentes primeiro)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit       query  int     false  "Máximo de linhas"  default(500)
// @Param        product_id  query  string  false  "Filtrar por produto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.historyLimit)
	productID := c.Query("product_id")

	var (
		movements []*entity.MovementWithProduct
		err       error
	)
	if productID != "" {
		movements, err = h.uc.ListByProduct(c.Context(), productID, limit)
	} else {
		movements, err = h.uc.ListMovements(c.Context(), limit)
	}
	if err != nil {
		return writeDomainError(c, err)
	}

	out := dto.MovementListResponse{
		Movements: make([]dto.MovementResponse, 0, len(movements)),
		Total:     len(movements),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Kind:        m.Kind,
			ActingUser:  m.ActingUser,
			OccurredAt:  m.OccurredAt,
			Note:        m.Note,
		})
	}
	return c.JSON(out)
}
