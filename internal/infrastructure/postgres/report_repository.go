package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de inventario.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetCategorySummary agrupa el stock de un usuario por categoría, descendente
// por cantidad total. Los productos sin categoría se consolidan en "Sin categoría".
func (r *ReportRepo) GetCategorySummary(ctx context.Context, ownerID string) ([]repository.CategorySummaryResult, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(category, ''), 'Sin categoría') AS category,
	    SUM(quantity)                                   AS total_quantity
	FROM products
	WHERE owner_id = $1
	GROUP BY 1
	ORDER BY total_quantity DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("category summary: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySummaryResult
	for rows.Next() {
		var res repository.CategorySummaryResult
		if err := rows.Scan(&res.Category, &res.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan category summary: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
