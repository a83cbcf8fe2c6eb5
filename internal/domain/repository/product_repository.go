package repository

import "github.com/jhoicas/agrostock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// GetForUpdate y AdjustQuantity existen solo para el registrador de movimientos:
// deben invocarse dentro de la transacción que también inserta el movimiento,
// nunca como escritura suelta, o el saldo dejaría de reconciliar con el historial.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	GetQuantity(id string) (int64, error)
	AdjustQuantity(id string, delta int64) (int64, error)
	Update(product *entity.Product) error
	ListByOwner(ownerID string) ([]*entity.Product, error)
	Delete(id string) error
}
