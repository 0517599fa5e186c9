package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticação: verifica credenciais e emite tokens de sessão.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate compara a senha com o hash bcrypt armazenado e devolve o
// usuário. Nome desconhecido e senha errada retornam o mesmo
// domain.ErrUnauthorized, sem distinguir os casos.
func (uc *UseCase) Authenticate(name, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Login autentica e gera o JWT com id, nome e cargo do usuário.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Name, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
