package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/jwt"
)

// Locals keys para os dados do usuário autenticado no Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// AuthMiddleware valida o Bearer Token JWT e coloca id, nome e cargo do
// usuário em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, userName, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, userName)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza somente os cargos indicados. Usar DEPOIS do
// AuthMiddleware. A checagem de papel fica toda nesta borda: os casos de uso
// não reavaliam cargo.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem cargo"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cargo sem permissão para esta operação"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserName devolve o nome do usuário autenticado.
func GetUserName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserName).(string)
	return s
}

// GetRole devolve o cargo do usuário autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
