package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase lecturas del registro de auditoría de stock.
// Los movimientos solo se crean dentro del motor de conciliación.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve todos los movimientos, más recientes primero.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByProduct devuelve los movimientos de un producto, más recientes primero.
func (uc *MovementUseCase) ListByProduct(productID string) ([]dto.MovementResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponses(list []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			ReferenceID: m.ReferenceID,
			UserID:      m.UserID,
			Notes:       m.Notes,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
