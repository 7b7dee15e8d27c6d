package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity y TotalQuantity
// solo se mueven vía el motor de conciliación; aquí se aceptan únicamente
// como carga inicial al crear.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Category == "" || in.Vendor == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.TotalQuantity < 0 || in.ReorderThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		SKU:              in.SKU,
		Category:         in.Category,
		Vendor:           in.Vendor,
		Quantity:         in.Quantity,
		TotalQuantity:    in.TotalQuantity,
		ReorderThreshold: in.ReorderThreshold,
		CostPrice:        in.CostPrice,
		SellingPrice:     in.SellingPrice,
		Description:      in.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update actualiza los campos descriptivos de un producto.
// No permite modificar Quantity ni TotalQuantity (se manejan vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Vendor != nil {
		product.Vendor = *in.Vendor
	}
	if in.ReorderThreshold != nil {
		if *in.ReorderThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderThreshold = *in.ReorderThreshold
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List devuelve todos los productos ordenados por nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock devuelve los productos con quantity < reorder_threshold.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Delete elimina un producto. Si tiene historial (entradas, solicitudes o
// movimientos que lo referencian) la BD rechaza el borrado y se devuelve
// ErrConflict; no hay borrado en cascada del historial.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Category:         p.Category,
		Vendor:           p.Vendor,
		Quantity:         p.Quantity,
		TotalQuantity:    p.TotalQuantity,
		ReorderThreshold: p.ReorderThreshold,
		CostPrice:        p.CostPrice,
		SellingPrice:     p.SellingPrice,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
