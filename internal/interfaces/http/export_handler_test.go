package http_test

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	apphttp "github.com/Marcos6585/Sistema-de-estoque/internal/interfaces/http"
)

// stubProductRepo devolve sempre o mesmo conjunto de produtos.
type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error                 { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                 { return nil }
func (r *stubProductRepo) UpdateQuantity(string, int64) error           { return nil }
func (r *stubProductRepo) List() ([]*entity.Product, error)             { return r.products, nil }
func (r *stubProductRepo) Delete(string) error                          { return nil }

func buildExportApp() *fiber.App {
	repo := &stubProductRepo{products: []*entity.Product{
		{ID: "1", Name: "Arroz Integral", Category: "Alimentos", Quantity: 20, UnitPrice: decimal.NewFromFloat(8.90), Supplier: "Atacadão"},
		{ID: "2", Name: "Detergente", Category: "Limpeza", Quantity: 50, UnitPrice: decimal.NewFromFloat(2.30)},
	}}
	handler := apphttp.NewExportHandler(catalog.NewProductUseCase(repo))
	app := fiber.New()
	app.Get("/api/export/csv", handler.CSV)
	app.Get("/api/export/xlsx", handler.XLSX)
	return app
}

func TestExportCSV_ComBOMECabecalho(t *testing.T) {
	app := buildExportApp()

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("\xEF\xBB\xBF")), "o CSV deve começar com BOM UTF-8")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, []byte("\xEF\xBB\xBF")))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabeçalho + 2 produtos")
	assert.Equal(t, "Nome", records[0][0])
	assert.Equal(t, "Arroz Integral", records[1][0])
	assert.Equal(t, "8.90", records[1][3])
}

func TestExportCSV_RespeitaFiltro(t *testing.T) {
	app := buildExportApp()

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv?category=Limpeza", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	content := string(body)
	assert.Contains(t, content, "Detergente")
	assert.NotContains(t, content, "Arroz Integral")
}

func TestExportCSV_FiltroInvalido(t *testing.T) {
	app := buildExportApp()

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv?order_by=cor", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportXLSX_PlanilhaLegivel(t *testing.T) {
	app := buildExportApp()

	req := httptest.NewRequest(http.MethodGet, "/api/export/xlsx", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(resp.Header.Get("Content-Type"), "spreadsheetml"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Estoque", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Arroz Integral", name)

	qty, err := f.GetCellValue("Estoque", "C3")
	require.NoError(t, err)
	assert.Equal(t, "50", qty)
}
