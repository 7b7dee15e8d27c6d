package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockOutHandler maneja el ciclo de vida de las solicitudes de salida (protegido).
type StockOutHandler struct {
	uc *inventory.StockOutUseCase
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *inventory.StockOutUseCase) *StockOutHandler {
	return &StockOutHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de salida
// @Description  Registra la solicitud en estado pending. La suficiencia de stock se verifica al despachar, no aquí.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "product_id, quantity, purpose"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	request, err := h.uc.Create(c.UserContext(), inventory.CreateInput{
		ProductID:   in.ProductID,
		RequesterID: GetUserID(c),
		Quantity:    in.Quantity,
		Purpose:     in.Purpose,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOutResponse(request))
}

// List godoc
// @Summary      Listar solicitudes de salida
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | approved | rejected | fulfilled"
// @Success      200  {array}  dto.StockOutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-out [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockOutResponse, 0, len(list))
	for _, req := range list {
		out = append(out, toStockOutResponse(req))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	request, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(toStockOutResponse(request))
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Description  Transición pending → approved. No reserva stock.
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/approve [post]
func (h *StockOutHandler) Approve(c *fiber.Ctx) error {
	request, err := h.uc.Approve(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockOutResponse(request))
}

// Reject godoc
// @Summary      Rechazar solicitud
// @Description  Transición pending → rejected. El motivo es obligatorio.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.RejectStockOutRequest  true  "rejection_reason"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/reject [post]
func (h *StockOutHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	request, err := h.uc.Reject(c.UserContext(), c.Params("id"), GetUserID(c), in.RejectionReason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockOutResponse(request))
}

// Fulfill godoc
// @Summary      Despachar solicitud aprobada
// @Description  Transición approved → fulfilled: descuenta stock y escribe el movimiento. El solicitante no puede despachar su propia solicitud.
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/fulfill [post]
func (h *StockOutHandler) Fulfill(c *fiber.Ctx) error {
	request, err := h.uc.Fulfill(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockOutResponse(request))
}

func toStockOutResponse(req *entity.StockOutRequest) dto.StockOutResponse {
	return dto.StockOutResponse{
		ID:              req.ID,
		ProductID:       req.ProductID,
		RequesterID:     req.RequesterID,
		Quantity:        req.Quantity,
		Purpose:         req.Purpose,
		Status:          req.Status,
		ReviewedBy:      req.ReviewedBy,
		ReviewedAt:      req.ReviewedAt,
		FulfilledBy:     req.FulfilledBy,
		FulfilledAt:     req.FulfilledAt,
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
}
