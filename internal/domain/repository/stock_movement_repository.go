package repository

import "github.com/jhoicas/agrostock-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos de stock (DIP).
// Los movimientos son append-only: no hay Update ni Delete individual; la
// eliminación solo ocurre en cascada con el producto.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
