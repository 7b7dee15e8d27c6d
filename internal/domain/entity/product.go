package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity y TotalQuantity se mutan únicamente vía el motor de conciliación
// (entradas de stock y despachos); nunca por el CRUD de productos.
type Product struct {
	ID               string
	Name             string
	SKU              string // código único
	Category         string
	Vendor           string
	Quantity         int // unidades disponibles, siempre >= 0
	TotalQuantity    int // unidades recibidas acumuladas
	ReorderThreshold int // bajo este umbral el producto aparece como low-stock
	CostPrice        decimal.Decimal
	SellingPrice     decimal.Decimal
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsLowStock indica si el producto está por debajo del umbral de reorden.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.ReorderThreshold
}
