package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockInRepository define el puerto de persistencia para entradas de stock (DIP).
// Los registros son inmutables: no hay Update ni Delete.
type StockInRepository interface {
	Create(stockIn *entity.StockIn) error
	GetByID(id string) (*entity.StockIn, error)
	List(limit int) ([]*entity.StockIn, error)
	ListByProduct(productID string) ([]*entity.StockIn, error)
}
