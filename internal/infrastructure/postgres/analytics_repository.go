package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregação para o painel.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetStockSummary devolve os agregados do estoque inteiro em uma consulta.
// COALESCE garante zeros quando não há produtos.
func (r *AnalyticsRepo) GetStockSummary(ctx context.Context, lowStockThreshold int64) (*repository.StockSummaryResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity), 0)                                  AS total_items,
	    COALESCE(SUM(quantity * unit_price), 0)                     AS stock_value,
	    COUNT(*)                                                    AS distinct_count,
	    COUNT(*) FILTER (WHERE quantity <= $1)                      AS low_stock_count
	FROM products`

	var s repository.StockSummaryResult
	err := r.pool.QueryRow(ctx, query, lowStockThreshold).
		Scan(&s.TotalItems, &s.StockValue, &s.DistinctCount, &s.LowStockCount)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStockSummary: %w", err)
	}
	return &s, nil
}

// GetCategoryTotals agrupa a quantidade por categoria, maior primeiro.
func (r *AnalyticsRepo) GetCategoryTotals(ctx context.Context) ([]repository.CategoryTotalResult, error) {
	const query = `
	SELECT category, COALESCE(SUM(quantity), 0) AS quantity
	FROM products
	GROUP BY category
	ORDER BY quantity DESC, category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCategoryTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryTotalResult
	for rows.Next() {
		var row repository.CategoryTotalResult
		if err := rows.Scan(&row.Category, &row.Quantity); err != nil {
			return nil, fmt.Errorf("analytics.GetCategoryTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
