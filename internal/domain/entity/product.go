package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de un usuario.
// Quantity es el saldo vigente del ledger: solo lo muta el registrador de movimientos,
// de modo que siempre reconcilia con la suma firmada del historial desde la cantidad inicial.
type Product struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Category    string // vacío = sin categoría
	Unit        string // unidad de medida, ej. "un", "kg", "lt"
	Price       decimal.Decimal
	Quantity    int64 // saldo actual, nunca negativo
	MinStock    int64 // umbral de alerta de stock bajo
	Batch       string
	ExpiryDate  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o bajo su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}

// TotalValue devuelve la valoración del stock actual (Quantity × Price).
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}
