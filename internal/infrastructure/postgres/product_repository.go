package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, category, vendor, quantity, total_quantity, reorder_threshold, cost_price, selling_price, description, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Category, product.Vendor,
		product.Quantity, product.TotalQuantity, product.ReorderThreshold,
		product.CostPrice, product.SellingPrice, product.Description,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por SKU (nil si no existe).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Base de la serialización de entradas y despachos concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza los campos descriptivos. No toca quantity ni total_quantity
// (se manejan vía ApplyStockIn/ApplyStockOut dentro del motor de conciliación).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, vendor = $4, reorder_threshold = $5,
		    cost_price = $6, selling_price = $7, description = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Vendor, product.ReorderThreshold,
		product.CostPrice, product.SellingPrice, product.Description, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ApplyStockIn incrementa quantity y total_quantity (motor de conciliación).
func (r *ProductRepo) ApplyStockIn(productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products
		 SET quantity = quantity + $2, total_quantity = total_quantity + $2, updated_at = now()
		 WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("apply stock in: %w", err)
	}
	return nil
}

// ApplyStockOut decrementa quantity (motor de conciliación). El caller verifica
// suficiencia bajo la fila bloqueada antes de llamar.
func (r *ProductRepo) ApplyStockOut(productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("apply stock out: %w", err)
	}
	return nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	return r.scanMany(query, "list products")
}

// ListLowStock devuelve los productos con quantity < reorder_threshold.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity < reorder_threshold ORDER BY name`
	return r.scanMany(query, "list low stock products")
}

// Delete elimina un producto por ID. Si el historial lo referencia, la FK de la
// BD rechaza el borrado y se devuelve ErrConflict (no hay borrado en cascada).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.Vendor,
		&p.Quantity, &p.TotalQuantity, &p.ReorderThreshold,
		&p.CostPrice, &p.SellingPrice, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query, op string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Category, &p.Vendor,
			&p.Quantity, &p.TotalQuantity, &p.ReorderThreshold,
			&p.CostPrice, &p.SellingPrice, &p.Description,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
