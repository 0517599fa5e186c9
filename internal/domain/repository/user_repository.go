package repository

import "github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int, error)
	Delete(id string) error
}
