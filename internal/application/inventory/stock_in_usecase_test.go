package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	productoTornillos = "prod-tornillos"
	actorBodeguero    = "user-bodeguero"
)

func newStockInFixture() (*memStore, *inventory.StockInUseCase) {
	store := newMemStore()
	store.addProduct(entity.Product{
		ID:               productoTornillos,
		Name:             "Tornillos 3/8",
		SKU:              "TOR-038",
		Category:         "Ferretería",
		Quantity:         100,
		TotalQuantity:    100,
		ReorderThreshold: 20,
	})
	uc := inventory.NewStockInUseCase(&fakeTxRunner{s: store}, &memStockInRepo{s: store})
	return store, uc
}

func TestRecordStockIn_IncrementaStockYAuditoria(t *testing.T) {
	store, uc := newStockInFixture()

	stockIn, err := uc.RecordStockIn(context.Background(), inventory.StockInInput{
		ProductID: productoTornillos,
		Quantity:  30,
		Supplier:  "Aceros del Norte",
		Notes:     "reposición mensual",
		ActorID:   actorBodeguero,
	})
	require.NoError(t, err)
	require.NotNil(t, stockIn)
	assert.NotEmpty(t, stockIn.ID)
	assert.Equal(t, actorBodeguero, stockIn.CreatedBy)

	// El producto incrementa quantity y total_quantity en la misma cantidad.
	p := store.products[productoTornillos]
	assert.Equal(t, 130, p.Quantity)
	assert.Equal(t, 130, p.TotalQuantity)

	// Exactamente un movimiento de auditoría tipo stock_in referenciando la entrada.
	require.Len(t, store.movements, 1)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementTypeStockIn, m.Type)
		assert.Equal(t, 30, m.Quantity)
		assert.Equal(t, stockIn.ID, m.ReferenceID)
		assert.Equal(t, actorBodeguero, m.UserID)
	}
}

func TestRecordStockIn_CantidadInvalida(t *testing.T) {
	store, uc := newStockInFixture()

	for _, qty := range []int{0, -5} {
		_, err := uc.RecordStockIn(context.Background(), inventory.StockInInput{
			ProductID: productoTornillos,
			Quantity:  qty,
			Supplier:  "Aceros del Norte",
			ActorID:   actorBodeguero,
		})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "quantity=%d debe rechazarse", qty)
	}
	// Nada cambió.
	assert.Equal(t, 100, store.products[productoTornillos].Quantity)
	assert.Empty(t, store.stockIns)
	assert.Empty(t, store.movements)
}

func TestRecordStockIn_ProveedorRequerido(t *testing.T) {
	_, uc := newStockInFixture()

	_, err := uc.RecordStockIn(context.Background(), inventory.StockInInput{
		ProductID: productoTornillos,
		Quantity:  10,
		ActorID:   actorBodeguero,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRecordStockIn_ProductoInexistente(t *testing.T) {
	store, uc := newStockInFixture()

	_, err := uc.RecordStockIn(context.Background(), inventory.StockInInput{
		ProductID: "prod-fantasma",
		Quantity:  10,
		Supplier:  "Aceros del Norte",
		ActorID:   actorBodeguero,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// El rollback descarta la entrada insertada antes del fallo.
	assert.Empty(t, store.stockIns)
	assert.Empty(t, store.movements)
}
