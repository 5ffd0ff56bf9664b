package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// ReceptionHandler flujo de recepción y verificación de transferencias.
type ReceptionHandler struct {
	uc *usecase.ReceptionUseCase
}

// NewReceptionHandler construye el handler.
func NewReceptionHandler(uc *usecase.ReceptionUseCase) *ReceptionHandler {
	return &ReceptionHandler{uc: uc}
}

// List transferencias pendientes de recepción.
func (h *ReceptionHandler) List(c *fiber.Ctx) error {
	receptions, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receptions)
}

// Detail detalle de una recepción con su progreso.
func (h *ReceptionHandler) Detail(c *fiber.Ctx) error {
	id, err := parseTransferID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	detail, err := h.uc.Detail(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Verify confirma un código escaneado contra la transferencia.
func (h *ReceptionHandler) Verify(c *fiber.Ctx) error {
	id, err := parseTransferID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.VerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Verify(c.Context(), id, in.Barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Validate valida la transferencia en Odoo si la verificación está completa.
func (h *ReceptionHandler) Validate(c *fiber.Ctx) error {
	id, err := parseTransferID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	result, err := h.uc.Validate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func parseTransferID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
