package repository

import "github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"

// MovementRepository define o porto de persistência para Movement.
// O histórico é append-only: não há Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devolve as movimentações mais recentes (LEFT JOIN com produtos;
	// ProductName vazio quando o produto foi removido).
	List(limit int) ([]*entity.MovementWithProduct, error)
	// ListByProduct devolve as movimentações de um produto, mais recentes primeiro.
	ListByProduct(productID string, limit int) ([]*entity.MovementWithProduct, error)
}
