package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity/TotalQuantity iniciales se aceptan para carga de inventario existente;
// después solo los mueve el motor de conciliación.
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	SKU              string          `json:"sku" validate:"required,min=1,max=100"`
	Category         string          `json:"category" validate:"required,min=1"`
	Vendor           string          `json:"vendor" validate:"required,min=1"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	TotalQuantity    int             `json:"total_quantity" validate:"min=0"`
	ReorderThreshold int             `json:"reorder_threshold" validate:"min=0"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	Description      string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// No permite tocar Quantity ni TotalQuantity: eso es del motor de conciliación.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category         *string          `json:"category" validate:"omitempty,min=1"`
	Vendor           *string          `json:"vendor" validate:"omitempty,min=1"`
	ReorderThreshold *int             `json:"reorder_threshold" validate:"omitempty,min=0"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	SellingPrice     *decimal.Decimal `json:"selling_price"`
	Description      *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Category         string          `json:"category"`
	Vendor           string          `json:"vendor"`
	Quantity         int             `json:"quantity"`
	TotalQuantity    int             `json:"total_quantity"`
	ReorderThreshold int             `json:"reorder_threshold"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
