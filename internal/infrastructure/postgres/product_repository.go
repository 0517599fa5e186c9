package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos.
// Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category, quantity, unit_price, supplier, created_at, updated_at`

// Create persiste um novo produto. (name, category) duplicado retorna domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category, quantity, unit_price, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	supplier := (*string)(nil)
	if product.Supplier != "" {
		supplier = &product.Supplier
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Quantity,
		product.UnitPrice, supplier, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID; nil sem erro quando não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Só tem efeito dentro de uma transação do TxRunner.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var supplier *string
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPrice,
		&supplier, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if supplier != nil {
		p.Supplier = *supplier
	}
	return &p, nil
}

// Update atualiza um produto existente (incluindo quantidade, que aqui passa
// de novo pelo CHECK >= 0 do banco).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, quantity = $4, unit_price = $5, supplier = $6, updated_at = $7
		WHERE id = $1`
	supplier := (*string)(nil)
	if product.Supplier != "" {
		supplier = &product.Supplier
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Quantity,
		product.UnitPrice, supplier, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity atualiza apenas a quantidade (usado pelo Ledger, dentro da tx).
func (r *ProductRepo) UpdateQuantity(productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List devolve todos os produtos ordenados por nome.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var supplier *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPrice,
			&supplier, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if supplier != nil {
			p.Supplier = *supplier
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID. ID inexistente é no-op; o histórico de
// movimentações não é apagado.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
