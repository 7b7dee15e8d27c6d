package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usarlo solo dentro de transacciones.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ApplyStockIn incrementa quantity y total_quantity (solo el motor de conciliación).
	ApplyStockIn(productID string, quantity int) error
	// ApplyStockOut decrementa quantity (solo el motor de conciliación).
	ApplyStockOut(productID string, quantity int) error
	List() ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
