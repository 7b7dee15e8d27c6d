package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de conciliación: o se aplican
// todos los efectos (registro + cantidades + movimiento) o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
