package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

const stockInColumns = `id, product_id, quantity, supplier, notes, attachment_url, created_by, created_at`

// StockInRepo implementación de StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste una entrada de stock.
func (r *StockInRepo) Create(stockIn *entity.StockIn) error {
	query := `
		INSERT INTO stock_ins (` + stockInColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		stockIn.ID, stockIn.ProductID, stockIn.Quantity, stockIn.Supplier,
		stockIn.Notes, stockIn.AttachmentURL, stockIn.CreatedBy, stockIn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID (nil si no existe).
func (r *StockInRepo) GetByID(id string) (*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins WHERE id = $1`
	var s entity.StockIn
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.Supplier,
		&s.Notes, &s.AttachmentURL, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock in: %w", err)
	}
	return &s, nil
}

// List devuelve entradas más recientes primero. limit <= 0 devuelve todas.
func (r *StockInRepo) List(limit int) ([]*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.scanMany(query, "list stock ins", args...)
}

// ListByProduct devuelve las entradas de un producto, más recientes primero.
func (r *StockInRepo) ListByProduct(productID string) ([]*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins WHERE product_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, "list stock ins by product", productID)
}

func (r *StockInRepo) scanMany(query, op string, args ...any) ([]*entity.StockIn, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	for rows.Next() {
		var s entity.StockIn
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.Quantity, &s.Supplier,
			&s.Notes, &s.AttachmentURL, &s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
