package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// ReportHandler generación del reporte PDF de inventario.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate analiza el CSV subido y devuelve el PDF como descarga.
// Con summary=true devuelve solo el resumen JSON con la ruta del archivo.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "no se seleccionó ningún archivo"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	summary, err := h.uc.Generate(c.Context(), file)
	if err != nil {
		return respondError(c, err)
	}
	if c.FormValue("summary") == "true" {
		return c.JSON(summary)
	}
	return c.Download(summary.File)
}
