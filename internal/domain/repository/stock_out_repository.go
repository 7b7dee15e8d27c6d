package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockOutRepository define el puerto de persistencia para solicitudes de salida (DIP).
// GetForUpdate bloquea la fila de la solicitud; es la base del check-then-act atómico
// del ciclo de vida (dos despachos concurrentes de la misma solicitud: uno gana).
type StockOutRepository interface {
	Create(request *entity.StockOutRequest) error
	GetByID(id string) (*entity.StockOutRequest, error)
	GetForUpdate(id string) (*entity.StockOutRequest, error)
	Update(request *entity.StockOutRequest) error
	List() ([]*entity.StockOutRequest, error)
	ListByStatus(status string) ([]*entity.StockOutRequest, error)
	ListByRequester(requesterID string) ([]*entity.StockOutRequest, error)
	// ListReviewed devuelve las solicitudes no pendientes más recientes (feed de actividad).
	ListReviewed(limit int) ([]*entity.StockOutRequest, error)
}
