package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// UserUseCase gerenciamento de usuários (criar, listar, remover).
// A autenticação fica no pacote auth; a checagem de papel (só admin gerencia
// usuários) fica na borda de apresentação.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create valida, hasheia a senha com bcrypt e persiste. Nome duplicado
// retorna domain.ErrDuplicate; cargo fora de {administrador, funcionario}
// retorna domain.ErrInvalidInput.
func (uc *UserUseCase) Create(name, password, role string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete remove um usuário. Regras: o usuário logado não pode se remover e o
// admin semeado no bootstrap nunca pode ser removido (domain.ErrForbidden).
// ID desconhecido é no-op.
func (uc *UserUseCase) Delete(id, actingUserID string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if id == actingUserID {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if user.Name == entity.DefaultAdminName {
		return domain.ErrForbidden
	}
	return uc.userRepo.Delete(id)
}

// List devolve todos os usuários ordenados por nome.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.userRepo.List()
}
