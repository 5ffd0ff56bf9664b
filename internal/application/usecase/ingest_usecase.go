package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain/scan"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// runOnBarcodeWidth ancho fijo para partir una línea corrida de códigos
// EAN-13 concatenados (recuperación heurística de archivos mal formados).
const runOnBarcodeWidth = 13

// IngestUseCase normaliza la entrada cruda del operador (textarea o archivo)
// a un multiconjunto de códigos y orquesta la creación de transferencias,
// troceando cargas grandes en varias transferencias independientes.
type IngestUseCase struct {
	transfers *TransferUseCase
	log       *logger.Logger
	chunkSize int // códigos crudos por transferencia en modo troceado
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(transfers *TransferUseCase, log *logger.Logger, chunkSize int) *IngestUseCase {
	if chunkSize <= 0 {
		chunkSize = 10
	}
	return &IngestUseCase{transfers: transfers, log: log, chunkSize: chunkSize}
}

// ParseScannedText trocea el texto del escaneo manual: una línea no vacía
// por unidad escaneada.
func ParseScannedText(text string) []string {
	var codes []string
	for _, line := range strings.Split(text, "\n") {
		if code := strings.TrimSpace(line); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// ParseBarcodeFile lee un CSV/TXT de códigos: la primera columna de cada fila
// es una unidad escaneada. Tolera BOM UTF-8 y archivos Latin-1, una fila de
// encabezado, y como último recurso una sola línea corrida de códigos de 13
// caracteres concatenados.
func ParseBarcodeFile(r io.Reader) ([]string, error) {
	content, err := decodeUploadText(r)
	if err != nil {
		return nil, err
	}

	codes := parseRows(content)
	if len(codes) > 1 && looksLikeHeader(codes[0]) {
		codes = codes[1:]
	}
	if len(codes) == 1 && len(codes[0]) > 20 {
		codes = splitRunOn(codes[0], runOnBarcodeWidth)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("el archivo no contiene códigos de barras")
	}
	return codes, nil
}

// decodeUploadText devuelve el contenido como UTF-8: descarta el BOM y,
// si los bytes no son UTF-8 válido, reinterpreta como Latin-1.
func decodeUploadText(r io.Reader) (string, error) {
	bom := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	raw, err := io.ReadAll(transform.NewReader(r, bom))
	if err != nil {
		return "", fmt.Errorf("leer archivo: %w", err)
	}
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return "", fmt.Errorf("decodificar archivo: %w", err)
		}
		raw = decoded
	}
	return string(raw), nil
}

// parseRows primera columna de cada fila CSV; si el CSV no parsea, se cae a
// partir línea a línea por la primera coma.
func parseRows(content string) []string {
	var codes []string

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err == nil {
		for _, row := range rows {
			if len(row) > 0 {
				if code := strings.TrimSpace(row[0]); code != "" {
					codes = append(codes, code)
				}
			}
		}
		return codes
	}

	for _, line := range strings.Split(content, "\n") {
		first := line
		if i := strings.IndexByte(line, ','); i >= 0 {
			first = line[:i]
		}
		if code := strings.TrimSpace(first); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// looksLikeHeader detecta una fila de encabezado: contiene letras, cosa que
// un código de barras escaneado no trae.
func looksLikeHeader(value string) bool {
	for _, r := range value {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// splitRunOn parte mecánicamente una línea corrida cada width caracteres.
func splitRunOn(long string, width int) []string {
	var codes []string
	for i := 0; i < len(long); i += width {
		end := i + width
		if end > len(long) {
			end = len(long)
		}
		codes = append(codes, long[i:end])
	}
	return codes
}

// CreateFromCodes crea una única transferencia con todos los códigos.
func (uc *IngestUseCase) CreateFromCodes(ctx context.Context, sourceID, destID int64, codes []string) dto.TransferResultResponse {
	return uc.transfers.Create(ctx, sourceID, destID, scan.NewMultiset(codes))
}

// CreateChunked parte la secuencia cruda en trozos de chunkSize entradas y
// crea una transferencia por trozo. El fallo de un trozo no detiene los
// siguientes; el resultado se agrega sin rollback global.
func (uc *IngestUseCase) CreateChunked(ctx context.Context, sourceID, destID int64, codes []string) dto.UploadSummaryResponse {
	summary := dto.UploadSummaryResponse{TotalUnits: len(codes)}

	for start := 0; start < len(codes); start += uc.chunkSize {
		end := start + uc.chunkSize
		if end > len(codes) {
			end = len(codes)
		}
		result := uc.transfers.Create(ctx, sourceID, destID, scan.NewMultiset(codes[start:end]))
		summary.Chunks++
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.NotFound = append(summary.NotFound, result.NotFound...)
		summary.Transfers = append(summary.Transfers, result)
	}

	summary.Success = summary.Failed == 0 && summary.Chunks > 0
	summary.Message = fmt.Sprintf("%d transferencias creadas, %d fallidas, %d unidades procesadas",
		summary.Succeeded, summary.Failed, summary.TotalUnits)

	uc.log.Info().Int("trozos", summary.Chunks).Int("ok", summary.Succeeded).
		Int("fallidos", summary.Failed).Msg("carga troceada procesada")
	return summary
}
