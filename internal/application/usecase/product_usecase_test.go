package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeProductRepo repositorio en memoria para el CRUD de productos.
type fakeProductRepo struct {
	byID      map[string]*entity.Product
	deleteErr error
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ApplyStockIn(productID string, quantity int) error {
	r.byID[productID].Quantity += quantity
	r.byID[productID].TotalQuantity += quantity
	return nil
}

func (r *fakeProductRepo) ApplyStockOut(productID string, quantity int) error {
	r.byID[productID].Quantity -= quantity
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.IsLowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.byID, id)
	return nil
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:             "Cable THHN 12",
		SKU:              "CAB-THHN-12",
		Category:         "Eléctricos",
		Vendor:           "Centelsa",
		Quantity:         50,
		TotalQuantity:    50,
		ReorderThreshold: 10,
		CostPrice:        decimal.RequireFromString("2100.00"),
		SellingPrice:     decimal.RequireFromString("3500.00"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "CAB-THHN-12", out.SKU)
	assert.Equal(t, 50, out.Quantity)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	in := validCreateRequest()
	in.Name = "Otro nombre"
	_, err = uc.Create(in)
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "el SKU es único")
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	in := validCreateRequest()
	in.Name = ""
	_, err := uc.Create(in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	in = validCreateRequest()
	in.Quantity = -1
	_, err = uc.Create(in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductUpdate_NoTocaCantidades(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	nuevoNombre := "Cable THHN 12 AWG"
	nuevoUmbral := 15
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:             &nuevoNombre,
		ReorderThreshold: &nuevoUmbral,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cable THHN 12 AWG", out.Name)
	assert.Equal(t, 15, out.ReorderThreshold)
	// Las cantidades solo cambian vía movimientos.
	assert.Equal(t, 50, out.Quantity)
	assert.Equal(t, 50, out.TotalQuantity)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update("prod-fantasma", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente devuelve nil sin error")
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	err = uc.Delete(created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "segundo borrado: ya no existe")
}

func TestProductDelete_ConHistorial(t *testing.T) {
	// La FK en la BD impide borrar productos con movimientos; el repo traduce
	// esa violación a ErrConflict y el use case la propaga.
	repo := newFakeProductRepo()
	repo.deleteErr = domain.ErrConflict
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	err = uc.Delete(created.ID)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestProductListLowStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	bajo := validCreateRequest()
	bajo.SKU = "BAJO-1"
	bajo.Quantity = 5
	bajo.ReorderThreshold = 10
	_, err := uc.Create(bajo)
	require.NoError(t, err)

	ok := validCreateRequest()
	ok.SKU = "OK-1"
	ok.Quantity = 50
	ok.ReorderThreshold = 10
	_, err = uc.Create(ok)
	require.NoError(t, err)

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "BAJO-1", out[0].SKU)
}
