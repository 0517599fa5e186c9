package entity

import "time"

// Cargos válidos para User.
const (
	RoleAdministrador = "administrador"
	RoleFuncionario   = "funcionario"
)

// Nome do administrador criado no bootstrap quando a tabela de usuários está vazia.
// Esse usuário nunca pode ser removido pela aplicação.
const DefaultAdminName = "admin"

// User representa um usuário do sistema.
type User struct {
	ID           string
	Name         string
	PasswordHash string // bcrypt hash, nunca em claro depois de persistir
	Role         string // administrador | funcionario
	CreatedAt    time.Time
}

// ValidRole informa se o cargo é um dos valores aceitos.
func ValidRole(role string) bool {
	return role == RoleAdministrador || role == RoleFuncionario
}

// IsAdmin indica se o usuário tem cargo de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrador
}
