package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO resumen del dashboard.
type DashboardStatsDTO struct {
	TotalProducts   int             `json:"total_products"`
	LowStockCount   int             `json:"low_stock_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"` // redondeado a unidad monetaria
	ActiveUsers     int             `json:"active_users"`
}

// CategoryValueDTO punto de una gráfica por categoría.
type CategoryValueDTO struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// Tipos de actividad derivados para el feed del dashboard.
const (
	ActivityStockIn   = "stock-in"
	ActivityApproval  = "approval"
	ActivityRejection = "rejection"
	ActivityStockOut  = "stock-out"
)

// ActivityItemDTO elemento del feed de actividad reciente.
type ActivityItemDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // stock-in, approval, rejection, stock-out
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
