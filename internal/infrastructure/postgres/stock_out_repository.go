package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

const stockOutColumns = `id, product_id, requester_id, quantity, purpose, status, reviewed_by, reviewed_at, fulfilled_by, fulfilled_at, rejection_reason, created_at, updated_at`

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// nullIfEmpty convierte "" a NULL para columnas de referencia opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste una solicitud nueva (estado pending).
func (r *StockOutRepo) Create(request *entity.StockOutRequest) error {
	query := `
		INSERT INTO stock_out_requests (` + stockOutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.ProductID, request.RequesterID, request.Quantity,
		request.Purpose, request.Status,
		nullIfEmpty(request.ReviewedBy), request.ReviewedAt,
		nullIfEmpty(request.FulfilledBy), request.FulfilledAt,
		nullIfEmpty(request.RejectionReason),
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock out request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID (nil si no existe).
func (r *StockOutRepo) GetByID(id string) (*entity.StockOutRequest, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_out_requests WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock out request")
}

// GetForUpdate obtiene la solicitud y bloquea la fila (SELECT FOR UPDATE).
// Garantiza que dos transiciones concurrentes sobre la misma solicitud se serialicen.
func (r *StockOutRepo) GetForUpdate(id string) (*entity.StockOutRequest, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_out_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock out request for update")
}

// Update persiste el estado completo de la solicitud tras una transición.
func (r *StockOutRepo) Update(request *entity.StockOutRequest) error {
	query := `
		UPDATE stock_out_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, fulfilled_by = $5,
		    fulfilled_at = $6, rejection_reason = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Status,
		nullIfEmpty(request.ReviewedBy), request.ReviewedAt,
		nullIfEmpty(request.FulfilledBy), request.FulfilledAt,
		nullIfEmpty(request.RejectionReason),
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock out request: %w", err)
	}
	return nil
}

// List devuelve todas las solicitudes, más recientes primero.
func (r *StockOutRepo) List() ([]*entity.StockOutRequest, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_out_requests ORDER BY created_at DESC`
	return r.scanMany(query, "list stock out requests")
}

// ListByStatus filtra por estado, más recientes primero.
func (r *StockOutRepo) ListByStatus(status string) ([]*entity.StockOutRequest, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_out_requests WHERE status = $1 ORDER BY created_at DESC`
	return r.scanMany(query, "list stock out requests by status", status)
}

// ListByRequester devuelve las solicitudes de un usuario, más recientes primero.
func (r *StockOutRepo) ListByRequester(requesterID string) ([]*entity.StockOutRequest, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_out_requests WHERE requester_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, "list stock out requests by requester", requesterID)
}

// ListReviewed devuelve las solicitudes resueltas (approved, rejected, fulfilled)
// ordenadas por updated_at descendente, para el feed de actividad.
func (r *StockOutRepo) ListReviewed(limit int) ([]*entity.StockOutRequest, error) {
	query := `
		SELECT ` + stockOutColumns + `
		FROM stock_out_requests
		WHERE status IN ('approved', 'rejected', 'fulfilled')
		ORDER BY updated_at DESC
		LIMIT $1`
	return r.scanMany(query, "list reviewed stock out requests", limit)
}

func (r *StockOutRepo) scanOne(row pgx.Row, op string) (*entity.StockOutRequest, error) {
	req, err := scanStockOut(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return req, nil
}

func (r *StockOutRepo) scanMany(query, op string, args ...any) ([]*entity.StockOutRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.StockOutRequest
	for rows.Next() {
		req, err := scanStockOut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock out request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func scanStockOut(row pgx.Row) (*entity.StockOutRequest, error) {
	var req entity.StockOutRequest
	var reviewedBy, fulfilledBy, rejectionReason *string
	err := row.Scan(
		&req.ID, &req.ProductID, &req.RequesterID, &req.Quantity,
		&req.Purpose, &req.Status,
		&reviewedBy, &req.ReviewedAt,
		&fulfilledBy, &req.FulfilledAt,
		&rejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reviewedBy != nil {
		req.ReviewedBy = *reviewedBy
	}
	if fulfilledBy != nil {
		req.FulfilledBy = *fulfilledBy
	}
	if rejectionReason != nil {
		req.RejectionReason = *rejectionReason
	}
	return &req, nil
}
