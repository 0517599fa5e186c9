package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
)

// UserHandler gerenciamento de usuários (rotas restritas a administrador).
type UserHandler struct {
	uc *catalog.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *catalog.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar usuário (somente administrador)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	user, err := h.uc.Create(in.Name, in.Password, in.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

// Delete godoc
// @Summary      Remover usuário (não remove o usuário logado nem o admin padrão)
// @Tags         users
// @Security     Bearer
// @Param        id   path  string  true  "ID do usuário"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id, GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar usuários (somente administrador)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	out := dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		out.Users = append(out.Users, dto.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(out)
}
