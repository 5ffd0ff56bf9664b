package dto

// Estados de una sesión de recepción.
const (
	ReceptionNotStarted = "not_started"
	ReceptionInProgress = "in_progress"
	ReceptionComplete   = "complete"
	ReceptionValidated  = "validated"
)

// ReceptionSummaryResponse transferencia pendiente en el listado de recepción.
type ReceptionSummaryResponse struct {
	TransferID int64  `json:"transfer_id"`
	Name       string `json:"name"`
	Origin     string `json:"origin,omitempty"`
	State      string `json:"state"`
	SourceName string `json:"source_name"`
	DestName   string `json:"dest_name"`
}

// ReceptionLineResponse línea esperada con su estado de verificación.
type ReceptionLineResponse struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Barcode     string  `json:"barcode"`
	Quantity    float64 `json:"quantity"`
	Verified    bool    `json:"verified"`
}

// ReceptionDetailResponse detalle de una recepción en curso.
type ReceptionDetailResponse struct {
	TransferID    int64                   `json:"transfer_id"`
	Name          string                  `json:"name"`
	State         string                  `json:"state"`
	SessionState  string                  `json:"session_state"`
	Progress      float64                 `json:"progress"`
	VerifiedCount int                     `json:"verified_count"`
	ExpectedCount int                     `json:"expected_count"`
	Lines         []ReceptionLineResponse `json:"lines"`
}

// VerifyRequest confirmación física de un código en recepción.
type VerifyRequest struct {
	Barcode string `json:"barcode" form:"barcode"`
}

// VerifyResponse resultado de una verificación.
type VerifyResponse struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message,omitempty"`
	AlreadyVerified bool    `json:"already_verified,omitempty"`
	Progress        float64 `json:"progress"`
	VerifiedCount   int     `json:"verified_count"`
	ExpectedCount   int     `json:"expected_count"`
}
