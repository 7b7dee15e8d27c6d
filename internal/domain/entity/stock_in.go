package entity

import "time"

// StockIn representa una entrada de mercancía. Inmutable una vez creada:
// su creación incrementa Quantity y TotalQuantity del producto en la misma transacción.
type StockIn struct {
	ID            string
	ProductID     string
	Quantity      int // >= 1
	Supplier      string
	Notes         string
	AttachmentURL string // referencia opcional a factura/remisión escaneada
	CreatedBy     string // UserID
	CreatedAt     time.Time
}
