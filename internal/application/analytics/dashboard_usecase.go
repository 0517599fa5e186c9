// Package analytics contém os casos de uso de agregação que alimentam o
// painel web (métricas rápidas e gráficos por categoria).
package analytics

import (
	"context"
	"fmt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// DashboardUseCase gera o resumo do estoque e os agregados por categoria.
//
// Fonte de dados: AnalyticsRepository (consultas read-only). Não acessa as
// tabelas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	lowStockThreshold int64
}

// NewDashboardUseCase constrói o caso de uso. threshold <= 0 usa o padrão 5
// (mesmo limite de "estoque baixo" destacado no painel original).
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, threshold int64) *DashboardUseCase {
	if threshold <= 0 {
		threshold = 5
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, lowStockThreshold: threshold}
}

// GetSummary monta o DashboardSummaryDTO com os agregados do estoque inteiro.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	summary, err := uc.analyticsRepo.GetStockSummary(ctx, uc.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumo do estoque: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		TotalItems:      summary.TotalItems,
		StockValue:      summary.StockValue.Round(2).String(),
		DistinctCount:   summary.DistinctCount,
		LowStockCount:   summary.LowStockCount,
		LowStockAtOrUnd: uc.lowStockThreshold,
	}, nil
}

// GetCategories devolve a soma de quantidade por categoria, na ordem do
// repositório (maior quantidade primeiro). Alimenta os gráficos de barra e
// pizza do painel.
func (uc *DashboardUseCase) GetCategories(ctx context.Context) (*dto.DashboardCategoriesDTO, error) {
	totals, err := uc.analyticsRepo.GetCategoryTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: totais por categoria: %w", err)
	}
	out := &dto.DashboardCategoriesDTO{Categories: make([]dto.CategoryTotalDTO, 0, len(totals))}
	for _, t := range totals {
		out.Categories = append(out.Categories, dto.CategoryTotalDTO{
			Category: t.Category,
			Quantity: t.Quantity,
		})
	}
	return out, nil
}
