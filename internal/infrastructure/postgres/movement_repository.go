package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação sobre PostgreSQL (usável com pool ou tx).
// O histórico é append-only: este repositório não expõe Update nem Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, quantity, kind, acting_user, occurred_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	actingUser := (*string)(nil)
	if movement.ActingUser != "" {
		actingUser = &movement.ActingUser
	}
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Kind,
		actingUser, movement.OccurredAt, note,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devolve as movimentações mais recentes. LEFT JOIN com produtos:
// movimentações de produtos já removidos aparecem com nome vazio.
func (r *MovementRepo) List(limit int) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.kind, m.acting_user, m.occurred_at, m.note, p.name
		FROM movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.occurred_at DESC
		LIMIT $1`
	return r.list(query, limit)
}

// ListByProduct devolve as movimentações de um produto, mais recentes primeiro.
func (r *MovementRepo) ListByProduct(productID string, limit int) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.kind, m.acting_user, m.occurred_at, m.note, p.name
		FROM movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.occurred_at DESC
		LIMIT $2`
	return r.list(query, productID, limit)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementWithProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		var actingUser, note, productName *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Kind,
			&actingUser, &m.OccurredAt, &note, &productName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if actingUser != nil {
			m.ActingUser = *actingUser
		}
		if note != nil {
			m.Note = *note
		}
		if productName != nil {
			m.ProductName = *productName
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
