package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockInUseCase registra entradas de mercancía de forma transaccional:
// inserta el registro, incrementa quantity/total_quantity del producto
// (con bloqueo de fila) y escribe el movimiento de auditoría.
type StockInUseCase struct {
	txRunner    TxRunner
	stockInRepo repository.StockInRepository
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(txRunner TxRunner, stockInRepo repository.StockInRepository) *StockInUseCase {
	return &StockInUseCase{txRunner: txRunner, stockInRepo: stockInRepo}
}

// StockInInput entrada para registrar una entrada de stock.
type StockInInput struct {
	ProductID     string
	Quantity      int
	Supplier      string
	Notes         string
	AttachmentURL string
	ActorID       string // usuario que registra la entrada
}

// RecordStockIn valida la entrada y aplica el efecto completo en una sola transacción.
// Falla con ErrInvalidInput si quantity < 1 o faltan campos, ErrNotFound si el
// producto no existe. Devuelve el StockIn creado.
func (uc *StockInUseCase) RecordStockIn(ctx context.Context, input StockInInput) (*entity.StockIn, error) {
	if input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.Supplier == "" || input.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	stockIn := &entity.StockIn{
		ID:            uuid.New().String(),
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		Supplier:      input.Supplier,
		Notes:         input.Notes,
		AttachmentURL: input.AttachmentURL,
		CreatedBy:     input.ActorID,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar con despachos concurrentes
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := stockInRepo.Create(stockIn); err != nil {
			return err
		}
		if err := productRepo.ApplyStockIn(product.ID, input.Quantity); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        entity.MovementTypeStockIn,
			Quantity:    input.Quantity,
			ReferenceID: stockIn.ID,
			UserID:      input.ActorID,
			Notes:       input.Notes,
			CreatedAt:   now,
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return stockIn, nil
}

// List devuelve todas las entradas de stock, más recientes primero.
func (uc *StockInUseCase) List() ([]*entity.StockIn, error) {
	return uc.stockInRepo.List(0)
}

// ListByProduct devuelve las entradas de un producto, más recientes primero.
func (uc *StockInUseCase) ListByProduct(productID string) ([]*entity.StockIn, error) {
	return uc.stockInRepo.ListByProduct(productID)
}
