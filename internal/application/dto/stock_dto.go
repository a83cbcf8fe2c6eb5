package dto

import "time"

// StockMovementRequest body para POST /api/products/:id/stock/{add,remove}.
type StockMovementRequest struct {
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Reason   string `json:"reason"`
}

// StockMovementResponse salida de un movimiento del historial.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"` // IN | OUT
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementHistoryResponse historial de movimientos de un producto (más reciente primero).
type MovementHistoryResponse struct {
	ProductID string                  `json:"product_id"`
	Total     int                     `json:"total"`
	Movements []StockMovementResponse `json:"movements"`
}
