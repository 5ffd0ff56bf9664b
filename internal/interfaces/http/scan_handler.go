package http

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// Extensiones aceptadas en la carga de archivos de códigos.
var allowedExtensions = map[string]bool{".csv": true, ".txt": true}

// ScanHandler maneja escaneo manual, carga de archivos y consultas de apoyo.
type ScanHandler struct {
	catalog   *usecase.CatalogUseCase
	ingest    *usecase.IngestUseCase
	uploadDir string
}

// NewScanHandler construye el handler.
func NewScanHandler(catalog *usecase.CatalogUseCase, ingest *usecase.IngestUseCase, uploadDir string) *ScanHandler {
	return &ScanHandler{catalog: catalog, ingest: ingest, uploadDir: uploadDir}
}

// Locations lista las ubicaciones internas para los selectores origen/destino.
func (h *ScanHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.catalog.Locations(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locations)
}

// Scan procesa los códigos escaneados en el textarea (uno por línea) y crea
// una transferencia. Los fallos de negocio viajan como success=false.
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	codes := usecase.ParseScannedText(in.ScannedCodes)
	if len(codes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "no se han proporcionado códigos de barras"})
	}
	result := h.ingest.CreateFromCodes(c.Context(), in.SourceLocationID, in.DestLocationID, codes)
	return c.JSON(result)
}

// Upload procesa un archivo CSV/TXT de códigos. Con chunked=true la carga se
// trocea en varias transferencias independientes.
func (h *ScanHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "no se seleccionó ningún archivo"})
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "tipo de archivo no permitido"})
	}

	// Conservar una copia en el directorio de cargas con nombre seguro.
	savedPath := filepath.Join(h.uploadDir, uuid.New().String()+ext)
	if err := c.SaveFile(fileHeader, savedPath); err != nil {
		return respondError(c, err)
	}
	file, err := os.Open(savedPath)
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	codes, err := h.parseUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	source := formInt64(c, "source_location_id")
	dest := formInt64(c, "dest_location_id")

	if c.FormValue("chunked") == "true" {
		summary := h.ingest.CreateChunked(c.Context(), source, dest, codes)
		return c.JSON(summary)
	}
	result := h.ingest.CreateFromCodes(c.Context(), source, dest, codes)
	return c.JSON(result)
}

func (h *ScanHandler) parseUpload(r io.Reader) ([]string, error) {
	return usecase.ParseBarcodeFile(r)
}

// AddBarcode eco de un código escaneado vía AJAX.
func (h *ScanHandler) AddBarcode(c *fiber.Ctx) error {
	var in dto.BarcodeEchoRequest
	if err := c.BodyParser(&in); err != nil || in.Barcode == "" {
		return c.JSON(dto.BarcodeEchoResponse{Success: false, Message: "código de barras no proporcionado"})
	}
	return c.JSON(dto.BarcodeEchoResponse{Success: true, Barcode: in.Barcode})
}

// ProductLookup consulta un producto por código de barras.
func (h *ScanHandler) ProductLookup(c *fiber.Ctx) error {
	product, err := h.catalog.ProductByBarcode(c.Context(), c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}
