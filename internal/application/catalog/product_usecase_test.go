package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// fakeProductRepo repositório em memória que reproduz o contrato do banco:
// UNIQUE(name, category) vira domain.ErrDuplicate e buscas sem resultado
// devolvem nil sem erro.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Name == p.Name && existing.Category == p.Category {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int64) error {
	if p, ok := r.byID[productID]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.byID, id); return nil }

func validInput() ProductInput {
	return ProductInput{
		Name:      "arroz integral",
		Category:  "Alimentos",
		Quantity:  10,
		UnitPrice: decimal.NewFromFloat(8.90),
		Supplier:  "atacadão central",
	}
}

func TestProductCreate_NormalizaNomeEFornecedor(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	product, err := uc.Create(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Arroz Integral", product.Name)
	assert.Equal(t, "Atacadão Central", product.Supplier)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestProductCreate_ValidaAntesDeEscrever(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	cases := map[string]ProductInput{
		"nome vazio":          {Category: "Alimentos", UnitPrice: decimal.NewFromInt(1)},
		"categoria vazia":     {Name: "Arroz", UnitPrice: decimal.NewFromInt(1)},
		"quantidade negativa": {Name: "Arroz", Category: "Alimentos", Quantity: -1},
		"preço negativo":      {Name: "Arroz", Category: "Alimentos", UnitPrice: decimal.NewFromInt(-1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.byID, "entrada inválida não pode chegar ao repositório")
}

func TestProductCreate_DuplicadoPorNomeECategoria(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(validInput())
	require.NoError(t, err)

	_, err = uc.Create(validInput())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Update("fantasma", validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_AtualizaCampos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Quantity = 42
	in.UnitPrice = decimal.NewFromFloat(9.99)
	updated, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.EqualValues(t, 42, updated.Quantity)
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromFloat(9.99)))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestProductDelete_IdempotenteParaDesconhecido(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	assert.NoError(t, uc.Delete("fantasma"))
	assert.ErrorIs(t, uc.Delete(""), domain.ErrInvalidInput)
}

func TestProductList_AplicaFiltro(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(validInput())
	require.NoError(t, err)
	other := validInput()
	other.Name = "detergente"
	other.Category = "Limpeza"
	_, err = uc.Create(other)
	require.NoError(t, err)

	out, err := uc.List(Filter{Category: "Limpeza"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Detergente", out[0].Name)
}
