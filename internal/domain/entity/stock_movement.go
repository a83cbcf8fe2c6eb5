package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement representa un movimiento de stock de un producto.
// Es inmutable una vez creado: nunca se actualiza ni se reordena; Quantity es
// siempre estrictamente positiva (el tipo codifica el signo). Solo desaparece
// en cascada cuando se elimina el producto dueño.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // > 0
	Reason    string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo (IN positivo, OUT negativo).
func (m *StockMovement) SignedQuantity() int64 {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}
