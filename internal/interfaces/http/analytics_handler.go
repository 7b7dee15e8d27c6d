package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
)

// AnalyticsHandler expone las métricas del dashboard (protegido).
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// DashboardStats godoc
// @Summary      Métricas del dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) DashboardStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockInByCategory godoc
// @Summary      Unidades recibidas por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryValueDTO
// @Router       /api/analytics/stock-in-by-category [get]
func (h *AnalyticsHandler) StockInByCategory(c *fiber.Ctx) error {
	out, err := h.uc.StockInByCategory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockOutByCategory godoc
// @Summary      Unidades despachadas por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryValueDTO
// @Router       /api/analytics/stock-out-by-category [get]
func (h *AnalyticsHandler) StockOutByCategory(c *fiber.Ctx) error {
	out, err := h.uc.StockOutByCategory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Feed de actividad reciente
// @Description  Mezcla entradas de stock y solicitudes resueltas, ordenadas por fecha del evento, máximo 10 elementos.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActivityItemDTO
// @Router       /api/analytics/recent-activity [get]
func (h *AnalyticsHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.uc.GetRecentActivity(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
