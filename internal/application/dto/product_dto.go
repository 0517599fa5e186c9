package dto

import "time"

// CreateProductRequest dados para cadastrar um produto.
type CreateProductRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"` // decimal como string, ex: "12.50"
	Supplier  string `json:"supplier"`
}

// UpdateProductRequest dados para editar um produto. A quantidade editada
// diretamente revalida a não-negatividade (o caminho normal é o Ledger).
type UpdateProductRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Supplier  string `json:"supplier"`
}

// ProductResponse representação de um produto nas respostas.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int64     `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Supplier  string    `json:"supplier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listagem de produtos (já filtrada/ordenada).
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// ListProductsQuery filtros e ordenação opcionais da listagem.
// Todos os campos são opcionais; vazio/zero significa "sem esse filtro".
type ListProductsQuery struct {
	Category string `query:"category"`
	Supplier string `query:"supplier"`
	PriceMin string `query:"price_min"`
	PriceMax string `query:"price_max"`
	QtyMin   *int64 `query:"qty_min"`
	QtyMax   *int64 `query:"qty_max"`
	Search   string `query:"search"`   // substring no nome, case-insensitive
	OrderBy  string `query:"order_by"` // name | price | quantity
	Desc     bool   `query:"desc"`
}
