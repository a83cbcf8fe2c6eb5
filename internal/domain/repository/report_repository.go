package repository

import "context"

// CategorySummaryResult resultado crudo de la consulta de resumen por categoría.
// Lo produce la DB; el use case lo convierte en DTO.
type CategorySummaryResult struct {
	Category      string // "Sin categoría" si el producto no tiene categoría
	TotalQuantity int64
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetCategorySummary agrupa el stock de un usuario por categoría,
	// ordenado por cantidad total descendente.
	GetCategorySummary(ctx context.Context, ownerID string) ([]CategorySummaryResult, error)
}
