package entity

// Location ubicación interna de almacén en Odoo (stock.location).
// Solo lectura desde esta aplicación; se usa como origen/destino de transferencias.
type Location struct {
	ID           int64
	Name         string
	CompleteName string // ruta completa, ej. "WH/Stock/Shelf 1"
}
