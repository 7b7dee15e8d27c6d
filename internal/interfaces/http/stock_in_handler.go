package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockInHandler maneja las entradas de mercancía (protegido).
type StockInHandler struct {
	uc *inventory.StockInUseCase
}

// NewStockInHandler construye el handler.
func NewStockInHandler(uc *inventory.StockInUseCase) *StockInHandler {
	return &StockInHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de mercancía
// @Description  Inserta la entrada, incrementa el stock del producto y escribe el movimiento de auditoría en una sola transacción.
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "product_id, quantity, supplier"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	stockIn, err := h.uc.RecordStockIn(c.UserContext(), inventory.StockInInput{
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		Supplier:      in.Supplier,
		Notes:         in.Notes,
		AttachmentURL: in.AttachmentURL,
		ActorID:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockInResponse(stockIn))
}

// List godoc
// @Summary      Listar entradas de mercancía
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.StockInResponse
// @Router       /api/stock-in [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	var (
		list []*entity.StockIn
		err  error
	)
	if productID != "" {
		list, err = h.uc.ListByProduct(productID)
	} else {
		list, err = h.uc.List()
	}
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockInResponse, 0, len(list))
	for _, si := range list {
		out = append(out, toStockInResponse(si))
	}
	return c.JSON(out)
}

func toStockInResponse(si *entity.StockIn) dto.StockInResponse {
	return dto.StockInResponse{
		ID:            si.ID,
		ProductID:     si.ProductID,
		Quantity:      si.Quantity,
		Supplier:      si.Supplier,
		Notes:         si.Notes,
		AttachmentURL: si.AttachmentURL,
		CreatedBy:     si.CreatedBy,
		CreatedAt:     si.CreatedAt,
	}
}
