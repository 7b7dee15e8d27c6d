package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

// ReportHandler genera reportes PDF del inventario (protegido).
type ReportHandler struct {
	productUC *usecase.ProductUseCase
	generator *pdf.MarotoReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(productUC *usecase.ProductUseCase, generator *pdf.MarotoReportGenerator) *ReportHandler {
	return &ReportHandler{productUC: productUC, generator: generator}
}

// LowStockPDF godoc
// @Summary      Reporte PDF de productos bajo umbral
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	products, err := h.productUC.ListLowStock()
	if err != nil {
		return respondError(c, err)
	}
	bytes, err := h.generator.GenerateLowStockReport(products)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock.pdf"`)
	return c.Send(bytes)
}
