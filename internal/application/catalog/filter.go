package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// Campos de ordenação aceitos por Filter.OrderBy.
const (
	OrderByName     = "name"
	OrderByPrice    = "price"
	OrderByQuantity = "quantity"
)

// Filter predicados e ordenação opcionais sobre a listagem de produtos.
// Campos zero significam "sem esse filtro". Aplicar um Filter é uma projeção
// pura: não toca o banco nem muta a entrada.
type Filter struct {
	Category string           // igualdade
	Supplier string           // igualdade
	PriceMin *decimal.Decimal // inclusive
	PriceMax *decimal.Decimal // inclusive
	QtyMin   *int64           // inclusive
	QtyMax   *int64           // inclusive
	Search   string           // substring no nome, case-insensitive
	OrderBy  string           // name | price | quantity ("" = ordem do repositório)
	Desc     bool
}

// Apply filtra e ordena a lista de produtos sem modificar a original.
func (f Filter) Apply(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Supplier != "" && p.Supplier != f.Supplier {
			continue
		}
		if f.PriceMin != nil && p.UnitPrice.LessThan(*f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && p.UnitPrice.GreaterThan(*f.PriceMax) {
			continue
		}
		if f.QtyMin != nil && p.Quantity < *f.QtyMin {
			continue
		}
		if f.QtyMax != nil && p.Quantity > *f.QtyMax {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	if f.OrderBy != "" {
		less := lessFunc(f.OrderBy)
		if less != nil {
			sort.SliceStable(out, func(i, j int) bool {
				if f.Desc {
					return less(out[j], out[i])
				}
				return less(out[i], out[j])
			})
		}
	}
	return out
}

func lessFunc(orderBy string) func(a, b *entity.Product) bool {
	switch orderBy {
	case OrderByName:
		return func(a, b *entity.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case OrderByPrice:
		return func(a, b *entity.Product) bool { return a.UnitPrice.LessThan(b.UnitPrice) }
	case OrderByQuantity:
		return func(a, b *entity.Product) bool { return a.Quantity < b.Quantity }
	}
	return nil
}
