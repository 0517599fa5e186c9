package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockSummaryResult agregados do estoque inteiro.
type StockSummaryResult struct {
	TotalItems    int64           // Σ quantidade
	StockValue    decimal.Decimal // Σ quantidade × preço unitário
	DistinctCount int             // produtos cadastrados
	LowStockCount int             // produtos com quantidade <= limite
}

// CategoryTotalResult soma de quantidade por categoria.
type CategoryTotalResult struct {
	Category string
	Quantity int64
}

// AnalyticsRepository consultas read-only de agregação para o painel.
type AnalyticsRepository interface {
	GetStockSummary(ctx context.Context, lowStockThreshold int64) (*StockSummaryResult, error)
	GetCategoryTotals(ctx context.Context) ([]CategoryTotalResult, error)
}
