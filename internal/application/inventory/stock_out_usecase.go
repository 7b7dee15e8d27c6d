package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockOutUseCase gobierna el ciclo de vida de las solicitudes de salida
// (pending → approved → fulfilled | rejected) y delega el efecto sobre el
// stock en el despacho. Cada transición corre en su propia transacción con
// bloqueo de fila: el check de estado y la mutación son atómicos.
type StockOutUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	requestRepo repository.StockOutRepository
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	requestRepo repository.StockOutRepository,
) *StockOutUseCase {
	return &StockOutUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		requestRepo: requestRepo,
	}
}

// CreateInput entrada para crear una solicitud de salida.
type CreateInput struct {
	ProductID   string
	RequesterID string
	Quantity    int
	Purpose     string
}

// Create registra una solicitud en estado pending. No verifica suficiencia de
// stock: eso se decide al despachar, cuando la cantidad disponible es la real.
func (uc *StockOutUseCase) Create(ctx context.Context, input CreateInput) (*entity.StockOutRequest, error) {
	if input.Quantity < 1 || input.ProductID == "" || input.RequesterID == "" || input.Purpose == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	request := &entity.StockOutRequest{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		RequesterID: input.RequesterID,
		Quantity:    input.Quantity,
		Purpose:     input.Purpose,
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// Approve transiciona pending → approved registrando revisor y fecha.
// Falla con ErrNotFound si la solicitud no existe y ErrInvalidState si no está pending.
func (uc *StockOutUseCase) Approve(ctx context.Context, requestID, reviewerID string) (*entity.StockOutRequest, error) {
	return uc.review(ctx, requestID, reviewerID, entity.StatusApproved, "")
}

// Reject transiciona pending → rejected con motivo obligatorio.
func (uc *StockOutUseCase) Reject(ctx context.Context, requestID, reviewerID, reason string) (*entity.StockOutRequest, error) {
	if reason == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.review(ctx, requestID, reviewerID, entity.StatusRejected, reason)
}

// review aplica aprobación o rechazo dentro de una transacción con la fila bloqueada,
// de modo que dos revisores concurrentes no puedan resolver la misma solicitud dos veces.
func (uc *StockOutUseCase) review(ctx context.Context, requestID, reviewerID, newStatus, reason string) (*entity.StockOutRequest, error) {
	if requestID == "" || reviewerID == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.StockOutRequest
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		_ repository.StockMovementRepository,
	) error {
		request, err := stockOutRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransition(request.Status, newStatus) {
			return domain.ErrInvalidState
		}
		now := time.Now()
		request.Status = newStatus
		request.ReviewedBy = reviewerID
		request.ReviewedAt = &now
		request.RejectionReason = reason
		request.UpdatedAt = now
		if err := stockOutRepo.Update(request); err != nil {
			return err
		}
		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Fulfill despacha una solicitud aprobada: approved → fulfilled.
//
// Dentro de una sola transacción: bloquea la solicitud, exige estado approved
// (ErrInvalidState), prohíbe el autodespacho (ErrForbidden), bloquea el producto
// (ErrNotFound si fue eliminado), re-verifica la suficiencia de stock
// (ErrInsufficientStock), descuenta quantity y escribe el movimiento stock_out.
// La suficiencia se evalúa aquí y no en la aprobación: el stock pudo cambiar
// entre ambas operaciones y la aprobación no reserva inventario.
func (uc *StockOutUseCase) Fulfill(ctx context.Context, requestID, actorID string) (*entity.StockOutRequest, error) {
	if requestID == "" || actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.StockOutRequest
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		request, err := stockOutRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrNotFound
		}
		if request.RequesterID == actorID {
			return domain.ErrForbidden
		}
		if !entity.CanTransition(request.Status, entity.StatusFulfilled) {
			return domain.ErrInvalidState
		}

		product, err := productRepo.GetForUpdate(request.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < request.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		request.Status = entity.StatusFulfilled
		request.FulfilledBy = actorID
		request.FulfilledAt = &now
		request.UpdatedAt = now
		if err := stockOutRepo.Update(request); err != nil {
			return err
		}
		if err := productRepo.ApplyStockOut(product.ID, request.Quantity); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        entity.MovementTypeStockOut,
			Quantity:    request.Quantity,
			ReferenceID: request.ID,
			UserID:      actorID,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List devuelve solicitudes, opcionalmente filtradas por estado.
func (uc *StockOutUseCase) List(status string) ([]*entity.StockOutRequest, error) {
	if status == "" {
		return uc.requestRepo.List()
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.requestRepo.ListByStatus(status)
}

// GetByID devuelve una solicitud por ID (nil si no existe).
func (uc *StockOutUseCase) GetByID(id string) (*entity.StockOutRequest, error) {
	return uc.requestRepo.GetByID(id)
}
