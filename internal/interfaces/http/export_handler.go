package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

// exportHeader colunas dos arquivos exportados, na ordem das colunas da tabela.
var exportHeader = []string{"Nome", "Categoria", "Quantidade", "Preço Unitário", "Fornecedor"}

// ExportHandler exportação da listagem filtrada em CSV e XLSX.
type ExportHandler struct {
	uc *catalog.ProductUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *catalog.ProductUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// load aplica ao export exatamente os mesmos filtros da listagem.
func (h *ExportHandler) load(c *fiber.Ctx) ([]*entity.Product, error) {
	var q dto.ListProductsQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, domain.ErrInvalidInput
	}
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	return h.uc.List(filter)
}

func exportRow(p *entity.Product) []string {
	return []string{p.Name, p.Category, fmt.Sprintf("%d", p.Quantity), p.UnitPrice.StringFixed(2), p.Supplier}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("estoque_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// CSV godoc
// @Summary      Exportar listagem filtrada em CSV
// @Description  Aceita os mesmos parâmetros de filtro de GET /api/products. O arquivo sai com BOM UTF-8 para abrir corretamente no Excel.
// @Tags         export
// @Produce      text/csv
// @Param        category  query  string  false  "Filtrar por categoria"
// @Param        search    query  string  false  "Substring no nome"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	products, err := h.load(c)
	if err != nil {
		return writeDomainError(c, err)
	}

	var buf bytes.Buffer
	// BOM UTF-8: sem ele o Excel lê acentos como mojibake.
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return writeDomainError(c, err)
	}
	for _, p := range products {
		if err := w.Write(exportRow(p)); err != nil {
			return writeDomainError(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, exportFilename("csv")))
	return c.Send(buf.Bytes())
}

// XLSX godoc
// @Summary      Exportar listagem filtrada em XLSX
// @Description  Aceita os mesmos parâmetros de filtro de GET /api/products.
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query  string  false  "Filtrar por categoria"
// @Param        search    query  string  false  "Substring no nome"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	products, err := h.load(c)
	if err != nil {
		return writeDomainError(c, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Estoque"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return writeDomainError(c, err)
		}
	}
	for row, p := range products {
		values := []any{p.Name, p.Category, p.Quantity, p.UnitPrice.InexactFloat64(), p.Supplier}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return writeDomainError(c, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, exportFilename("xlsx")))
	return c.Send(buf.Bytes())
}
