package entity

// Estados de una transferencia (stock.picking) según Odoo.
const (
	TransferStateDraft     = "draft"     // borrador
	TransferStateWaiting   = "waiting"   // esperando otra operación
	TransferStateConfirmed = "confirmed" // parcialmente disponible
	TransferStateAssigned  = "assigned"  // lista para procesar
	TransferStateDone      = "done"      // realizada
	TransferStateCancel    = "cancel"    // cancelada
)

// Transfer transferencia interna entre ubicaciones (documento stock.picking).
// Se crea y muta únicamente vía el gateway; nunca localmente.
type Transfer struct {
	ID         int64
	Name       string // referencia del documento, ej. "WH/INT/00042"
	Origin     string
	State      string
	SourceID   int64
	SourceName string
	DestID     int64
	DestName   string
	Moves      []Movement
}

// Movement línea de movimiento de una transferencia (stock.move).
type Movement struct {
	ID          int64
	ProductID   int64
	ProductName string
	Barcode     string
	Quantity    float64
	UoMID       int64
	State       string
}

// ExpectedBarcodes devuelve el conjunto de códigos de barras esperados en la
// transferencia. Líneas duplicadas con el mismo código colapsan a una entrada.
func (t Transfer) ExpectedBarcodes() map[string]bool {
	expected := make(map[string]bool, len(t.Moves))
	for _, m := range t.Moves {
		if m.Barcode != "" {
			expected[m.Barcode] = true
		}
	}
	return expected
}

// Pending indica si la transferencia sigue pendiente de recepción.
func (t Transfer) Pending() bool {
	switch t.State {
	case TransferStateWaiting, TransferStateConfirmed, TransferStateAssigned:
		return true
	}
	return false
}
