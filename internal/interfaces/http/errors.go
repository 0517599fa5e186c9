package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
)

// writeDomainError traduz a taxonomia de erros de domínio para HTTP.
// Erros fora da taxonomia (ex: falha de infraestrutura embrulhada pelos
// repositórios) viram 503 sem vazar detalhes do banco.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário ou senha incorretos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operação não permitida"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "banco de dados indisponível"})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "falha ao acessar o banco de dados"})
	}
}
