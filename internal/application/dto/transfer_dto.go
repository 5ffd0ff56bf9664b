package dto

// ScanRequest códigos escaneados manualmente (uno por línea) más ubicaciones.
type ScanRequest struct {
	SourceLocationID int64  `json:"source_location_id" form:"source_location_id"`
	DestLocationID   int64  `json:"dest_location_id" form:"dest_location_id"`
	ScannedCodes     string `json:"scanned_codes" form:"scanned_codes"`
}

// TransferResultResponse resultado de crear una transferencia.
// Los fallos del gateway llegan aquí como success=false + message; nunca
// como error HTTP 5xx.
type TransferResultResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message,omitempty"`
	TransferID    int64    `json:"transfer_id,omitempty"`
	ProductsCount int      `json:"products_count"`
	NotFound      []string `json:"products_not_found,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// UploadSummaryResponse resultado agregado de una carga troceada: una
// transferencia por trozo, sin rollback global.
type UploadSummaryResponse struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message,omitempty"`
	Chunks     int                      `json:"chunks"`
	Succeeded  int                      `json:"succeeded"`
	Failed     int                      `json:"failed"`
	TotalUnits int                      `json:"total_units"`
	Transfers  []TransferResultResponse `json:"transfers"`
	NotFound   []string                 `json:"products_not_found,omitempty"`
}

// LocationResponse ubicación interna seleccionable.
type LocationResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CompleteName string `json:"complete_name"`
}

// BarcodeEchoRequest alta de un código escaneado vía AJAX.
type BarcodeEchoRequest struct {
	Barcode string `json:"barcode"`
}

// BarcodeEchoResponse eco del código recibido.
type BarcodeEchoResponse struct {
	Success bool   `json:"success"`
	Barcode string `json:"barcode,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProductResponse producto resuelto desde Odoo.
type ProductResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Barcode      string  `json:"barcode"`
	DefaultCode  string  `json:"default_code,omitempty"`
	Price        string  `json:"price"`
	QtyAvailable float64 `json:"qty_available"`
}
