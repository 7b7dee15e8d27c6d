package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool (no requiere tx).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts devuelve el total de productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`, "count products")
}

// CountLowStock devuelve cuántos productos están bajo su umbral de reorden.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE quantity < reorder_threshold`, "count low stock")
}

// CountUsers devuelve el número de usuarios del sistema.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`, "count users")
}

// TotalStockValue devuelve la suma de selling_price * quantity de todos los productos.
func (r *AnalyticsRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(selling_price * quantity), 0) FROM products`
	var value decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return value, nil
}

// StockInByCategory suma unidades recibidas agrupadas por categoría de producto.
func (r *AnalyticsRepo) StockInByCategory(ctx context.Context) ([]repository.CategoryTotal, error) {
	query := `
		SELECT p.category, COALESCE(SUM(si.quantity), 0)::int
		FROM stock_ins si
		INNER JOIN products p ON p.id = si.product_id
		GROUP BY p.category
		ORDER BY p.category`
	return r.categoryTotals(ctx, query, "stock in by category")
}

// StockOutByCategory suma unidades de solicitudes despachadas (fulfilled)
// agrupadas por categoría de producto.
func (r *AnalyticsRepo) StockOutByCategory(ctx context.Context) ([]repository.CategoryTotal, error) {
	query := `
		SELECT p.category, COALESCE(SUM(req.quantity), 0)::int
		FROM stock_out_requests req
		INNER JOIN products p ON p.id = req.product_id
		WHERE req.status = 'fulfilled'
		GROUP BY p.category
		ORDER BY p.category`
	return r.categoryTotals(ctx, query, "stock out by category")
}

func (r *AnalyticsRepo) count(ctx context.Context, query, op string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *AnalyticsRepo) categoryTotals(ctx context.Context, query, op string) ([]repository.CategoryTotal, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var totals []repository.CategoryTotal
	for rows.Next() {
		var t repository.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
