package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// MovementHandler lecturas del registro de auditoría de stock (protegido).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	var (
		out []dto.MovementResponse
		err error
	)
	if productID != "" {
		out, err = h.uc.ListByProduct(productID)
	} else {
		out, err = h.uc.List()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
