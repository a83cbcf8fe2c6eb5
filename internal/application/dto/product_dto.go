package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es la cantidad inicial del ledger; después de la creación solo
// cambia vía movimientos de stock.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	MinStock    int64           `json:"min_stock" validate:"min=0"`
	Batch       string          `json:"batch"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity:
// el saldo se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Batch       *string          `json:"batch"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	MinStock    int64           `json:"min_stock"`
	Batch       string          `json:"batch,omitempty"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos de un usuario.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
