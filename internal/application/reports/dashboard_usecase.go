package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/agrostock-api/internal/application/dto"
	"github.com/jhoicas/agrostock-api/internal/application/usecase"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
)

// DashboardUseCase arma los reportes agregados del inventario de un usuario:
// resumen por categoría y dashboard completo (KPIs + datos del gráfico).
type DashboardUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, productRepo: productRepo}
}

// GetCategorySummary devuelve el total de stock por categoría de un usuario,
// ordenado descendente. Los productos sin categoría se agrupan en "Sin categoría".
func (uc *DashboardUseCase) GetCategorySummary(ctx context.Context, ownerID, actorID, actorRole string) ([]dto.CategorySummaryDTO, error) {
	if ownerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	results, err := uc.reportRepo.GetCategorySummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategorySummaryDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.CategorySummaryDTO{
			Category:      r.Category,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out, nil
}

// GetDashboard devuelve KPIs, datos del gráfico por categoría y los productos
// valorizados del inventario de un usuario.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, ownerID, actorID, actorRole string) (*dto.DashboardDTO, error) {
	if ownerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	products, err := uc.productRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	var totalItems int64
	totalValue := decimal.Zero
	lowStock := 0
	categoryTotals := map[string]int64{}
	categoryOrder := []string{}

	items := make([]dto.DashboardProductDTO, 0, len(products))
	for _, p := range products {
		value := p.TotalValue()
		totalItems += p.Quantity
		totalValue = totalValue.Add(value)
		if p.IsLowStock() {
			lowStock++
		}
		cat := p.Category
		if cat == "" {
			cat = "Sin categoría"
		}
		if _, seen := categoryTotals[cat]; !seen {
			categoryOrder = append(categoryOrder, cat)
		}
		categoryTotals[cat] += p.Quantity

		items = append(items, dto.DashboardProductDTO{
			ProductResponse: *usecase.ToProductResponse(p),
			TotalValue:      value,
		})
	}

	chart := make([]dto.CategorySummaryDTO, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		chart = append(chart, dto.CategorySummaryDTO{Category: cat, TotalQuantity: categoryTotals[cat]})
	}

	return &dto.DashboardDTO{
		KPIs: dto.DashboardKPIsDTO{
			TotalItems:    totalItems,
			TotalValue:    totalValue,
			LowStockCount: lowStock,
			ProductsCount: len(products),
		},
		ChartData: chart,
		Products:  items,
	}, nil
}
