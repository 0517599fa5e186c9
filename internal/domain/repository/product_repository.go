package repository

import "github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE);
	// só faz sentido dentro de uma transação do TxRunner.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity atualiza apenas a quantidade (usado pelo Ledger).
	UpdateQuantity(productID string, quantity int64) error
	// List devolve todos os produtos ordenados por nome; filtros e ordenação
	// adicionais são projeções puras na camada de aplicação.
	List() ([]*entity.Product, error)
	Delete(id string) error
}
