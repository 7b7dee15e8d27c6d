// Package analytics contiene los casos de uso read-only para el dashboard:
// métricas agregadas, totales por categoría y el feed de actividad reciente.
// Nunca muta estado; todo se recalcula bajo demanda.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const recentActivityLimit = 10 // elementos del feed de actividad

// DashboardUseCase deriva las métricas del dashboard desde el ledger.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockInRepo   repository.StockInRepository
	stockOutRepo  repository.StockOutRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		stockInRepo:   stockInRepo,
		stockOutRepo:  stockOutRepo,
	}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts    → TotalProducts
//  2. CountLowStock    → LowStockCount
//  3. TotalStockValue  → Σ selling_price × quantity, redondeado a unidad
//  4. CountUsers       → ActiveUsers
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	usersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()

	value, valueErr := uc.analyticsRepo.TotalStockValue(ctx)

	products := <-productsCh
	lowStock := <-lowStockCh
	users := <-usersCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: productos bajo umbral: %w", lowStock.err)
	}
	if valueErr != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", valueErr)
	}
	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios activos: %w", users.err)
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   products.n,
		LowStockCount:   lowStock.n,
		TotalStockValue: value.Round(0),
		ActiveUsers:     users.n,
	}, nil
}

// StockInByCategory devuelve las unidades recibidas agrupadas por categoría.
func (uc *DashboardUseCase) StockInByCategory(ctx context.Context) ([]dto.CategoryValueDTO, error) {
	totals, err := uc.analyticsRepo.StockInByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(totals), nil
}

// StockOutByCategory devuelve las unidades despachadas (solicitudes fulfilled)
// agrupadas por categoría.
func (uc *DashboardUseCase) StockOutByCategory(ctx context.Context) ([]dto.CategoryValueDTO, error) {
	totals, err := uc.analyticsRepo.StockOutByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(totals), nil
}

func toCategoryDTOs(totals []repository.CategoryTotal) []dto.CategoryValueDTO {
	out := make([]dto.CategoryValueDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.CategoryValueDTO{Category: t.Category, Value: t.Total})
	}
	return out
}

// GetRecentActivity mezcla las 10 entradas de stock más recientes con las 10
// solicitudes resueltas más recientes, ordena por fecha del evento y trunca a 10.
// El tipo de actividad se deriva: entradas → stock-in; solicitudes → approval,
// rejection o stock-out según su estado. Para solicitudes la fecha del evento
// es UpdatedAt (momento de la resolución), no CreatedAt.
func (uc *DashboardUseCase) GetRecentActivity(ctx context.Context) ([]dto.ActivityItemDTO, error) {
	stockIns, err := uc.stockInRepo.List(recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("actividad: entradas de stock: %w", err)
	}
	requests, err := uc.stockOutRepo.ListReviewed(recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("actividad: solicitudes resueltas: %w", err)
	}

	items := make([]dto.ActivityItemDTO, 0, len(stockIns)+len(requests))
	for _, si := range stockIns {
		items = append(items, dto.ActivityItemDTO{
			ID:        si.ID,
			Type:      dto.ActivityStockIn,
			ProductID: si.ProductID,
			UserID:    si.CreatedBy,
			Quantity:  si.Quantity,
			CreatedAt: si.CreatedAt,
		})
	}
	for _, req := range requests {
		items = append(items, dto.ActivityItemDTO{
			ID:        req.ID,
			Type:      activityType(req.Status),
			ProductID: req.ProductID,
			UserID:    req.RequesterID,
			Quantity:  req.Quantity,
			CreatedAt: req.UpdatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items, nil
}

// activityType deriva el tipo de actividad desde el estado de la solicitud.
func activityType(status string) string {
	switch status {
	case entity.StatusApproved:
		return dto.ActivityApproval
	case entity.StatusRejected:
		return dto.ActivityRejection
	case entity.StatusFulfilled:
		return dto.ActivityStockOut
	}
	return status
}
