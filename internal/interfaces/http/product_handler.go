package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// ProductHandler trata as requisições HTTP de Product (protegido).
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice.StringFixed(2),
		Supplier:  p.Supplier,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// parseFilter converte os parâmetros de query na projeção pura catalog.Filter.
func parseFilter(q dto.ListProductsQuery) (catalog.Filter, error) {
	f := catalog.Filter{
		Category: q.Category,
		Supplier: q.Supplier,
		QtyMin:   q.QtyMin,
		QtyMax:   q.QtyMax,
		Search:   q.Search,
		OrderBy:  q.OrderBy,
		Desc:     q.Desc,
	}
	if q.PriceMin != "" {
		min, err := decimal.NewFromString(q.PriceMin)
		if err != nil {
			return catalog.Filter{}, domain.ErrInvalidInput
		}
		f.PriceMin = &min
	}
	if q.PriceMax != "" {
		max, err := decimal.NewFromString(q.PriceMax)
		if err != nil {
			return catalog.Filter{}, domain.ErrInvalidInput
		}
		f.PriceMax = &max
	}
	switch q.OrderBy {
	case "", catalog.OrderByName, catalog.OrderByPrice, catalog.OrderByQuantity:
	default:
		return catalog.Filter{}, domain.ErrInvalidInput
	}
	return f, nil
}

// parseProductInput converte o corpo da requisição em catalog.ProductInput.
func parseProductInput(name, category string, quantity int64, unitPrice, supplier string) (catalog.ProductInput, error) {
	price := decimal.Zero
	if unitPrice != "" {
		var err error
		price, err = decimal.NewFromString(unitPrice)
		if err != nil {
			return catalog.ProductInput{}, domain.ErrInvalidInput
		}
	}
	return catalog.ProductInput{
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		UnitPrice: price,
		Supplier:  supplier,
	}, nil
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	input, err := parseProductInput(in.Name, in.Category, in.Quantity, in.UnitPrice, in.Supplier)
	if err != nil {
		return writeDomainError(c, err)
	}
	product, err := h.uc.Create(input)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// Update godoc
// @Summary      Editar produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	input, err := parseProductInput(in.Name, in.Category, in.Quantity, in.UnitPrice, in.Supplier)
	if err != nil {
		return writeDomainError(c, err)
	}
	product, err := h.uc.Update(id, input)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// Delete godoc
// @Summary      Remover produto (id inexistente é no-op)
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID do produto"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	product, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(toProductResponse(product))
}

// List godoc
// @Summary      Listar produtos (filtros e ordenação opcionais)
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Categoria (igualdade)"
// @Param        supplier  query  string  false  "Fornecedor (igualdade)"
// @Param        price_min query  string  false  "Preço mínimo"
// @Param        price_max query  string  false  "Preço máximo"
// @Param        qty_min   query  int     false  "Quantidade mínima"
// @Param        qty_max   query  int     false  "Quantidade máxima"
// @Param        search    query  string  false  "Substring do nome (case-insensitive)"
// @Param        order_by  query  string  false  "name | price | quantity"
// @Param        desc      query  bool    false  "Ordem decrescente"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ListProductsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	filter, err := parseFilter(q)
	if err != nil {
		return writeDomainError(c, err)
	}
	products, err := h.uc.List(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Total:    len(products),
	}
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return c.JSON(out)
}
