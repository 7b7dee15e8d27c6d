package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryTotal resultado crudo de las consultas agrupadas por categoría.
// Lo produce la DB; el use case lo convierte en DTO.
type CategoryTotal struct {
	Category string
	Total    int // suma de unidades
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountProducts devuelve el total de productos registrados.
	CountProducts(ctx context.Context) (int, error)

	// CountLowStock devuelve cuántos productos tienen quantity < reorder_threshold.
	CountLowStock(ctx context.Context) (int, error)

	// TotalStockValue devuelve la suma de selling_price * quantity de todos los productos.
	// Usa COALESCE para devolver cero si no hay productos.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)

	// CountUsers devuelve el número de usuarios activos del sistema.
	CountUsers(ctx context.Context) (int, error)

	// StockInByCategory suma las unidades recibidas agrupadas por categoría de producto.
	StockInByCategory(ctx context.Context) ([]CategoryTotal, error)

	// StockOutByCategory suma las unidades de solicitudes despachadas (fulfilled)
	// agrupadas por categoría de producto.
	StockOutByCategory(ctx context.Context) ([]CategoryTotal, error)
}
