package dto

// DashboardSummaryDTO métricas rápidas do estoque para o painel.
type DashboardSummaryDTO struct {
	TotalItems      int64  `json:"total_items"`       // soma das quantidades
	StockValue      string `json:"stock_value"`       // Σ quantidade × preço
	DistinctCount   int    `json:"distinct_products"` // produtos cadastrados
	LowStockCount   int    `json:"low_stock_count"`   // quantidade <= limite
	LowStockAtOrUnd int64  `json:"low_stock_threshold"`
}

// CategoryTotalDTO soma de quantidade por categoria (gráficos de barra/pizza).
type CategoryTotalDTO struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// DashboardCategoriesDTO dados agregados por categoria.
type DashboardCategoriesDTO struct {
	Categories []CategoryTotalDTO `json:"categories"`
}
