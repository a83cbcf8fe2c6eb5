package dto

import "github.com/shopspring/decimal"

// CategorySummaryDTO total de stock por categoría (para el gráfico de reportes).
type CategorySummaryDTO struct {
	Category      string `json:"category"`
	TotalQuantity int64  `json:"total_quantity"`
}

// DashboardKPIsDTO indicadores del inventario de un usuario.
type DashboardKPIsDTO struct {
	TotalItems    int64           `json:"total_items"`     // suma de cantidades
	TotalValue    decimal.Decimal `json:"total_value"`     // Σ quantity × price
	LowStockCount int             `json:"low_stock_count"` // productos con quantity <= min_stock
	ProductsCount int             `json:"products_count"`
}

// DashboardProductDTO producto enriquecido con su valoración para el dashboard.
type DashboardProductDTO struct {
	ProductResponse
	TotalValue decimal.Decimal `json:"total_value"`
}

// DashboardDTO respuesta de GET /api/reports/dashboard.
type DashboardDTO struct {
	KPIs      DashboardKPIsDTO      `json:"kpis"`
	ChartData []CategorySummaryDTO  `json:"chart_data"`
	Products  []DashboardProductDTO `json:"products"`
}
