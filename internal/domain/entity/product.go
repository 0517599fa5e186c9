package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque.
// Quantity só muda pelo Ledger (ApplyMovement) ou por edição direta que
// revalida a não-negatividade. (Name, Category) é único no banco.
type Product struct {
	ID        string
	Name      string
	Category  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Supplier  string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockValue devolve quantidade × preço unitário.
func (p *Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}
