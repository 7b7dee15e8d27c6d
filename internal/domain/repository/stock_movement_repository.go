package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para la auditoría de stock (DIP).
// Append-only: solo Create y lecturas.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
