package dto

import "time"

// LoginRequest credenciais de login.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest dados para cadastrar um usuário (somente admin).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"` // administrador | funcionario
}

// UserResponse representação de um usuário nas respostas (sem hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse listagem de usuários.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
