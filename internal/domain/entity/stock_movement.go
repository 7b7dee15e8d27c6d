package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeStockIn  = "stock_in"
	MovementTypeStockOut = "stock_out"
)

// StockMovement es el registro de auditoría de cada efecto sobre el stock.
// Append-only: nunca se actualiza ni se borra.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // stock_in, stock_out
	Quantity    int
	ReferenceID string // ID del StockIn o StockOutRequest que lo originó
	UserID      string // usuario que ejecutó la operación
	Notes       string
	CreatedAt   time.Time
}
