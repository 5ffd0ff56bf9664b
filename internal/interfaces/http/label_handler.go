package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// LabelHandler generación e impresión de etiquetas de producto.
type LabelHandler struct {
	uc *usecase.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *usecase.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Generate renderiza la etiqueta y la devuelve como descarga.
func (h *LabelHandler) Generate(c *fiber.Ctx) error {
	var in dto.LabelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	path, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendFile(path)
}

// Print genera la etiqueta y la envía al spooler.
func (h *LabelHandler) Print(c *fiber.Ctx) error {
	var in dto.PrintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "barcode es requerido"})
	}
	return c.JSON(h.uc.Print(c.Context(), in))
}

// Printers lista las impresoras disponibles en el spooler.
func (h *LabelHandler) Printers(c *fiber.Ctx) error {
	printers, err := h.uc.Printers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(printers)
}
