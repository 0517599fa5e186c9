package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// ProductUseCase CRUD de produtos, independente da semântica do Ledger.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// ProductInput dados de criação/edição de produto.
type ProductInput struct {
	Name      string
	Category  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Supplier  string
}

// normalizeText apara espaços e aplica Title Case (ex: "arroz integral" -> "Arroz Integral").
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// validate valida antes de qualquer escrita; falha curto-circuita a operação.
func (in *ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create valida e persiste um novo produto. (Name, Category) duplicado
// retorna domain.ErrDuplicate.
func (uc *ProductUseCase) Create(in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      normalizeText(in.Name),
		Category:  strings.TrimSpace(in.Category),
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Supplier:  normalizeText(in.Supplier),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update valida e atualiza um produto existente. A quantidade pode ser
// editada aqui, mas passa pela mesma validação de não-negatividade do Create;
// mudanças normais de estoque vão pelo Ledger.
func (uc *ProductUseCase) Update(id string, in ProductInput) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = normalizeText(in.Name)
	product.Category = strings.TrimSpace(in.Category)
	product.Quantity = in.Quantity
	product.UnitPrice = in.UnitPrice
	product.Supplier = normalizeText(in.Supplier)
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete remove um produto. ID desconhecido é no-op (sem erro); o histórico
// de movimentações do produto permanece no banco.
func (uc *ProductUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.productRepo.Delete(id)
}

// GetByID obtém um produto; nil sem erro quando não existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.GetByID(id)
}

// List carrega o conjunto completo e aplica o filtro como projeção pura.
func (uc *ProductUseCase) List(filter Filter) ([]*entity.Product, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return filter.Apply(products), nil
}
