package dto

// Formatos de etiqueta soportados.
const (
	LabelFormatPNG = "png"
	LabelFormatPDF = "pdf"
)

// LabelRequest generación de una etiqueta de producto. Si Name/Price vienen
// vacíos se resuelven desde Odoo por el código de barras.
type LabelRequest struct {
	Barcode string  `json:"barcode" form:"barcode"`
	Name    string  `json:"name" form:"name"`
	Price   float64 `json:"price" form:"price"`
	Format  string  `json:"format" form:"format"` // png (por defecto) o pdf
}

// PrintRequest impresión de la etiqueta de un producto.
type PrintRequest struct {
	Barcode string `json:"barcode" form:"barcode"`
	Printer string `json:"printer" form:"printer"` // vacío = impresora por defecto
	Copies  int    `json:"copies" form:"copies"`   // <=0 se trata como 1
}

// PrintResponse resultado del envío al spooler.
type PrintResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	JobIDs  []int  `json:"job_ids,omitempty"`
}

// PrinterResponse impresora descubierta en el spooler.
type PrinterResponse struct {
	Name     string `json:"name"`
	Info     string `json:"info,omitempty"`
	State    string `json:"state,omitempty"`
	Location string `json:"location,omitempty"`
}

// ReportSummaryResponse metadatos del reporte generado; el PDF se descarga aparte.
type ReportSummaryResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	File          string `json:"file,omitempty"`
	DistinctCodes int    `json:"distinct_codes"`
	TotalUnits    int    `json:"total_units"`
	FoundProducts int    `json:"found_products"`
	TotalValue    string `json:"total_value"`
}
