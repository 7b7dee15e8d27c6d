package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso del motor de conciliación.
// memStore agrupa todo el estado; los repos son vistas sobre él. El fakeTxRunner
// toma un snapshot antes de fn y lo restaura si fn falla, emulando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	stockIns  map[string]*entity.StockIn
	requests  map[string]*entity.StockOutRequest
	movements map[string]*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]*entity.Product{},
		stockIns:  map[string]*entity.StockIn{},
		requests:  map[string]*entity.StockOutRequest{},
		movements: map[string]*entity.StockMovement{},
	}
}

func (s *memStore) addProduct(p entity.Product) {
	s.products[p.ID] = &p
}

func (s *memStore) addRequest(r entity.StockOutRequest) {
	s.requests[r.ID] = &r
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.stockIns {
		si := *v
		cp.stockIns[k] = &si
	}
	for k, v := range s.requests {
		r := *v
		cp.requests[k] = &r
	}
	for k, v := range s.movements {
		m := *v
		cp.movements[k] = &m
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.stockIns = snap.stockIns
	s.requests = snap.requests
	s.movements = snap.movements
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) ApplyStockIn(productID string, quantity int) error {
	p := r.s.products[productID]
	p.Quantity += quantity
	p.TotalQuantity += quantity
	return nil
}

func (r *memProductRepo) ApplyStockOut(productID string, quantity int) error {
	p := r.s.products[productID]
	p.Quantity -= quantity
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.IsLowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

// ── StockInRepository ─────────────────────────────────────────────────────────

type memStockInRepo struct{ s *memStore }

var _ repository.StockInRepository = (*memStockInRepo)(nil)

func (r *memStockInRepo) Create(si *entity.StockIn) error {
	cp := *si
	r.s.stockIns[si.ID] = &cp
	return nil
}

func (r *memStockInRepo) GetByID(id string) (*entity.StockIn, error) {
	si, ok := r.s.stockIns[id]
	if !ok {
		return nil, nil
	}
	cp := *si
	return &cp, nil
}

func (r *memStockInRepo) List(limit int) ([]*entity.StockIn, error) {
	var out []*entity.StockIn
	for _, si := range r.s.stockIns {
		cp := *si
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memStockInRepo) ListByProduct(productID string) ([]*entity.StockIn, error) {
	var out []*entity.StockIn
	for _, si := range r.s.stockIns {
		if si.ProductID == productID {
			cp := *si
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── StockOutRepository ────────────────────────────────────────────────────────

type memStockOutRepo struct{ s *memStore }

var _ repository.StockOutRepository = (*memStockOutRepo)(nil)

func (r *memStockOutRepo) Create(req *entity.StockOutRequest) error {
	cp := *req
	r.s.requests[req.ID] = &cp
	return nil
}

func (r *memStockOutRepo) GetByID(id string) (*entity.StockOutRequest, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *memStockOutRepo) GetForUpdate(id string) (*entity.StockOutRequest, error) {
	return r.GetByID(id)
}

func (r *memStockOutRepo) Update(req *entity.StockOutRequest) error {
	cp := *req
	r.s.requests[req.ID] = &cp
	return nil
}

func (r *memStockOutRepo) List() ([]*entity.StockOutRequest, error) {
	var out []*entity.StockOutRequest
	for _, req := range r.s.requests {
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memStockOutRepo) ListByStatus(status string) ([]*entity.StockOutRequest, error) {
	var out []*entity.StockOutRequest
	for _, req := range r.s.requests {
		if req.Status == status {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockOutRepo) ListByRequester(requesterID string) ([]*entity.StockOutRequest, error) {
	var out []*entity.StockOutRequest
	for _, req := range r.s.requests {
		if req.RequesterID == requesterID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockOutRepo) ListReviewed(limit int) ([]*entity.StockOutRequest, error) {
	var out []*entity.StockOutRequest
	for _, req := range r.s.requests {
		if req.Status != entity.StatusPending {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) List() ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner serializa las "transacciones" con un mutex y restaura el snapshot
// si fn devuelve error, de modo que los efectos parciales nunca se observan.
type fakeTxRunner struct{ s *memStore }

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(
		&memProductRepo{s: r.s},
		&memStockInRepo{s: r.s},
		&memStockOutRepo{s: r.s},
		&memMovementRepo{s: r.s},
	)
	if err != nil {
		r.s.restore(snap)
	}
	return err
}
