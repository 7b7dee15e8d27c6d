package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	solicitante = "user-solicitante"
	revisor     = "user-revisor"
	despachador = "user-despachador"
)

func newStockOutFixture() (*memStore, *inventory.StockOutUseCase) {
	store := newMemStore()
	store.addProduct(entity.Product{
		ID:               productoTornillos,
		Name:             "Tornillos 3/8",
		SKU:              "TOR-038",
		Category:         "Ferretería",
		Quantity:         100,
		TotalQuantity:    150,
		ReorderThreshold: 20,
	})
	uc := inventory.NewStockOutUseCase(
		&fakeTxRunner{s: store},
		&memProductRepo{s: store},
		&memStockOutRepo{s: store},
	)
	return store, uc
}

// addApprovedRequest siembra una solicitud ya aprobada lista para despachar.
func addApprovedRequest(store *memStore, id string, qty int) {
	now := time.Now()
	store.addRequest(entity.StockOutRequest{
		ID:          id,
		ProductID:   productoTornillos,
		RequesterID: solicitante,
		Quantity:    qty,
		Purpose:     "obra calle 12",
		Status:      entity.StatusApproved,
		ReviewedBy:  revisor,
		ReviewedAt:  &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestStockOutCreate_QuedaPendiente(t *testing.T) {
	store, uc := newStockOutFixture()

	req, err := uc.Create(context.Background(), inventory.CreateInput{
		ProductID:   productoTornillos,
		RequesterID: solicitante,
		Quantity:    30,
		Purpose:     "obra calle 12",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, req.Status)

	// Crear la solicitud no toca el stock.
	assert.Equal(t, 100, store.products[productoTornillos].Quantity)
}

func TestStockOutCreate_PermiteCantidadMayorAlStock(t *testing.T) {
	// La suficiencia se decide al despachar, no al solicitar.
	_, uc := newStockOutFixture()

	req, err := uc.Create(context.Background(), inventory.CreateInput{
		ProductID:   productoTornillos,
		RequesterID: solicitante,
		Quantity:    500,
		Purpose:     "pedido grande",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, req.Status)
}

func TestStockOutCreate_Validaciones(t *testing.T) {
	_, uc := newStockOutFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, inventory.CreateInput{ProductID: productoTornillos, RequesterID: solicitante, Quantity: 0, Purpose: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "quantity < 1 debe rechazarse")

	_, err = uc.Create(ctx, inventory.CreateInput{ProductID: productoTornillos, RequesterID: solicitante, Quantity: 5})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "purpose es obligatorio")

	_, err = uc.Create(ctx, inventory.CreateInput{ProductID: "prod-fantasma", RequesterID: solicitante, Quantity: 5, Purpose: "x"})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "producto inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve / Reject
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_RegistraRevisor(t *testing.T) {
	store, uc := newStockOutFixture()
	ctx := context.Background()
	req, err := uc.Create(ctx, inventory.CreateInput{
		ProductID: productoTornillos, RequesterID: solicitante, Quantity: 30, Purpose: "obra",
	})
	require.NoError(t, err)

	approved, err := uc.Approve(ctx, req.ID, revisor)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)
	assert.Equal(t, revisor, approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)

	// Aprobar no reserva stock.
	assert.Equal(t, 100, store.products[productoTornillos].Quantity)
}

func TestReject_RequiereMotivo(t *testing.T) {
	_, uc := newStockOutFixture()
	ctx := context.Background()
	req, err := uc.Create(ctx, inventory.CreateInput{
		ProductID: productoTornillos, RequesterID: solicitante, Quantity: 30, Purpose: "obra",
	})
	require.NoError(t, err)

	_, err = uc.Reject(ctx, req.ID, revisor, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "rechazar sin motivo debe fallar")

	rejected, err := uc.Reject(ctx, req.ID, revisor, "sin presupuesto aprobado")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, rejected.Status)
	assert.Equal(t, "sin presupuesto aprobado", rejected.RejectionReason)
}

func TestReview_DobleResolucionFalla(t *testing.T) {
	// Dos revisores sobre la misma solicitud: el segundo pierde.
	_, uc := newStockOutFixture()
	ctx := context.Background()
	req, err := uc.Create(ctx, inventory.CreateInput{
		ProductID: productoTornillos, RequesterID: solicitante, Quantity: 30, Purpose: "obra",
	})
	require.NoError(t, err)

	_, err = uc.Approve(ctx, req.ID, revisor)
	require.NoError(t, err)

	_, err = uc.Reject(ctx, req.ID, "otro-revisor", "llegó tarde")
	assert.True(t, errors.Is(err, domain.ErrInvalidState))

	_, err = uc.Approve(ctx, req.ID, "otro-revisor")
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
}

func TestReview_SolicitudInexistente(t *testing.T) {
	_, uc := newStockOutFixture()
	_, err := uc.Approve(context.Background(), "req-fantasma", revisor)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fulfill
// ──────────────────────────────────────────────────────────────────────────────

func TestFulfill_DescuentaStockYAuditoria(t *testing.T) {
	store, uc := newStockOutFixture()
	addApprovedRequest(store, "req-1", 30)

	fulfilled, err := uc.Fulfill(context.Background(), "req-1", despachador)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, fulfilled.Status)
	assert.Equal(t, despachador, fulfilled.FulfilledBy)
	require.NotNil(t, fulfilled.FulfilledAt)

	// quantity baja 100 → 70; total_quantity no se toca.
	p := store.products[productoTornillos]
	assert.Equal(t, 70, p.Quantity)
	assert.Equal(t, 150, p.TotalQuantity)

	// Un movimiento stock_out referenciando la solicitud.
	require.Len(t, store.movements, 1)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementTypeStockOut, m.Type)
		assert.Equal(t, 30, m.Quantity)
		assert.Equal(t, "req-1", m.ReferenceID)
		assert.Equal(t, despachador, m.UserID)
	}
}

func TestFulfill_StockInsuficiente(t *testing.T) {
	store, uc := newStockOutFixture()
	addApprovedRequest(store, "req-1", 150) // disponible: 100

	_, err := uc.Fulfill(context.Background(), "req-1", despachador)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	// Nada cambió: ni el stock ni el estado de la solicitud.
	assert.Equal(t, 100, store.products[productoTornillos].Quantity)
	assert.Equal(t, entity.StatusApproved, store.requests["req-1"].Status)
	assert.Empty(t, store.movements)
}

func TestFulfill_AutodespachoProhibido(t *testing.T) {
	store, uc := newStockOutFixture()
	addApprovedRequest(store, "req-1", 30)

	_, err := uc.Fulfill(context.Background(), "req-1", solicitante)
	assert.True(t, errors.Is(err, domain.ErrForbidden),
		"el solicitante no puede despachar su propia solicitud")
	assert.Equal(t, 100, store.products[productoTornillos].Quantity)
}

func TestFulfill_SoloDesdeApproved(t *testing.T) {
	store, uc := newStockOutFixture()
	ctx := context.Background()
	req, err := uc.Create(ctx, inventory.CreateInput{
		ProductID: productoTornillos, RequesterID: solicitante, Quantity: 30, Purpose: "obra",
	})
	require.NoError(t, err)

	// pending no se puede despachar.
	_, err = uc.Fulfill(ctx, req.ID, despachador)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))

	// Tampoco dos veces: el segundo despacho encuentra fulfilled.
	addApprovedRequest(store, "req-2", 10)
	_, err = uc.Fulfill(ctx, "req-2", despachador)
	require.NoError(t, err)
	_, err = uc.Fulfill(ctx, "req-2", despachador)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, 90, store.products[productoTornillos].Quantity, "el stock se descuenta una sola vez")
}

func TestFulfill_ConsumeStockEnOrden(t *testing.T) {
	// Dos solicitudes aprobadas que suman más que el stock: la primera en
	// despacharse gana, la segunda falla por insuficiencia.
	store, uc := newStockOutFixture()
	addApprovedRequest(store, "req-a", 80)
	addApprovedRequest(store, "req-b", 60)
	ctx := context.Background()

	_, err := uc.Fulfill(ctx, "req-a", despachador)
	require.NoError(t, err)

	_, err = uc.Fulfill(ctx, "req-b", despachador)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 20, store.products[productoTornillos].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestStockOutList_FiltraPorEstado(t *testing.T) {
	store, uc := newStockOutFixture()
	ctx := context.Background()
	req, err := uc.Create(ctx, inventory.CreateInput{
		ProductID: productoTornillos, RequesterID: solicitante, Quantity: 10, Purpose: "obra",
	})
	require.NoError(t, err)
	addApprovedRequest(store, "req-approved", 5)

	pending, err := uc.List(entity.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)

	all, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.List("cancelled")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "estado desconocido debe rechazarse")
}
