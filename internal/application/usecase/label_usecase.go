package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// LabelData contenido de una etiqueta de producto.
type LabelData struct {
	Barcode string
	Name    string
	Price   decimal.Decimal
}

// LabelRenderer puerto de renderizado de etiquetas. PDF para impresión
// vectorial, PNG rasterizado a 300 DPI para spoolers que no aceptan PDF.
type LabelRenderer interface {
	RenderPDF(data LabelData) ([]byte, error)
	RenderPNG(data LabelData) ([]byte, error)
}

// LabelUseCase genera etiquetas de producto y las envía al spooler. Los
// archivos de etiqueta son temporales: tras encolar la impresión se borran
// en segundo plano pasado un periodo de gracia, para tolerar el spooling
// asíncrono sin bloquear la respuesta.
type LabelUseCase struct {
	gateway      repository.ErpGateway
	renderer     LabelRenderer
	printer      repository.LabelPrinter
	log          *logger.Logger
	outputDir    string
	defaultName  string // impresora por defecto; vacío = la primera del spooler
	cleanupDelay time.Duration
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(
	gateway repository.ErpGateway,
	renderer LabelRenderer,
	printer repository.LabelPrinter,
	log *logger.Logger,
	outputDir, defaultPrinter string,
	cleanupDelay time.Duration,
) *LabelUseCase {
	if cleanupDelay <= 0 {
		cleanupDelay = 10 * time.Second
	}
	return &LabelUseCase{
		gateway:      gateway,
		renderer:     renderer,
		printer:      printer,
		log:          log,
		outputDir:    outputDir,
		defaultName:  defaultPrinter,
		cleanupDelay: cleanupDelay,
	}
}

// Generate renderiza la etiqueta y la escribe en el directorio de salida.
// Si la petición no trae nombre, el producto se resuelve desde Odoo.
func (uc *LabelUseCase) Generate(ctx context.Context, req dto.LabelRequest) (string, error) {
	data, err := uc.resolve(ctx, req)
	if err != nil {
		return "", err
	}

	format := req.Format
	if format == "" {
		format = dto.LabelFormatPNG
	}

	var raw []byte
	switch format {
	case dto.LabelFormatPNG:
		raw, err = uc.renderer.RenderPNG(data)
	case dto.LabelFormatPDF:
		raw, err = uc.renderer.RenderPDF(data)
	default:
		return "", fmt.Errorf("%w: formato de etiqueta %q", domain.ErrInvalidInput, req.Format)
	}
	if err != nil {
		return "", fmt.Errorf("renderizar etiqueta: %w", err)
	}

	path := filepath.Join(uc.outputDir, fmt.Sprintf("label_%s.%s", uuid.New().String(), format))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("escribir etiqueta: %w", err)
	}
	return path, nil
}

// Print genera la etiqueta en PNG y la envía al spooler, una vez por copia.
// El archivo temporal se borra en segundo plano tras el periodo de gracia.
func (uc *LabelUseCase) Print(ctx context.Context, req dto.PrintRequest) *dto.PrintResponse {
	path, err := uc.Generate(ctx, dto.LabelRequest{Barcode: req.Barcode, Format: dto.LabelFormatPNG})
	if err != nil {
		return &dto.PrintResponse{Success: false, Message: err.Error()}
	}

	printerName := req.Printer
	if printerName == "" {
		printerName = uc.defaultName
	}
	if printerName == "" {
		printers, err := uc.printer.ListPrinters(ctx)
		if err != nil || len(printers) == 0 {
			uc.removeLater(path)
			return &dto.PrintResponse{Success: false, Message: "no hay impresoras disponibles"}
		}
		printerName = printers[0].Name
	}

	copies := req.Copies
	if copies <= 0 {
		copies = 1
	}

	var jobIDs []int
	for i := 0; i < copies; i++ {
		jobID, err := uc.printer.PrintFile(ctx, path, printerName)
		if err != nil {
			uc.removeLater(path)
			return &dto.PrintResponse{
				Success: false,
				Message: fmt.Sprintf("error al imprimir en %s: %v", printerName, err),
				JobIDs:  jobIDs,
			}
		}
		jobIDs = append(jobIDs, jobID)
	}

	uc.log.Info().Str("impresora", printerName).Ints("jobs", jobIDs).
		Str("barcode", req.Barcode).Msg("etiqueta enviada al spooler")
	uc.removeLater(path)
	return &dto.PrintResponse{Success: true, JobIDs: jobIDs}
}

// Printers lista las impresoras del spooler.
func (uc *LabelUseCase) Printers(ctx context.Context) ([]dto.PrinterResponse, error) {
	printers, err := uc.printer.ListPrinters(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrinterResponse, 0, len(printers))
	for _, p := range printers {
		out = append(out, dto.PrinterResponse{
			Name:     p.Name,
			Info:     p.Info,
			State:    p.State,
			Location: p.Location,
		})
	}
	return out, nil
}

func (uc *LabelUseCase) resolve(ctx context.Context, req dto.LabelRequest) (LabelData, error) {
	if req.Barcode == "" {
		return LabelData{}, fmt.Errorf("%w: falta el código de barras", domain.ErrInvalidInput)
	}
	if req.Name != "" {
		return LabelData{
			Barcode: req.Barcode,
			Name:    req.Name,
			Price:   decimal.NewFromFloat(req.Price),
		}, nil
	}

	product, err := uc.gateway.FindProductByBarcode(ctx, req.Barcode)
	if err != nil {
		return LabelData{}, err
	}
	if product == nil {
		return LabelData{}, fmt.Errorf("%w: producto con código %s", domain.ErrNotFound, req.Barcode)
	}
	return LabelData{Barcode: req.Barcode, Name: product.Name, Price: product.Price}, nil
}

// removeLater borra el archivo pasado el periodo de gracia, sin bloquear al
// caller. No hay garantía de orden respecto al trabajo de impresión y no se
// puede cancelar una vez lanzado.
func (uc *LabelUseCase) removeLater(path string) {
	go func() {
		time.Sleep(uc.cleanupDelay)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			uc.log.Warn().Err(err).Str("archivo", path).Msg("no se pudo borrar la etiqueta temporal")
		}
	}()
}
