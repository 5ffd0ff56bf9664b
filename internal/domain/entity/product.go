package entity

import "github.com/shopspring/decimal"

// Product producto resuelto desde Odoo (product.product) a partir de un código
// de barras. El ERP es la autoridad: no se persiste localmente.
type Product struct {
	ID           int64
	Name         string
	Barcode      string
	DefaultCode  string // referencia interna (SKU)
	Price        decimal.Decimal
	QtyAvailable float64
	UoMID        int64 // unidad de medida; 0 = no declarada
}

// DefaultUoMID unidad de medida por defecto cuando el producto no declara una.
const DefaultUoMID int64 = 1

// UoMOrDefault devuelve la unidad de medida del producto o la unidad por defecto.
func (p Product) UoMOrDefault() int64 {
	if p.UoMID > 0 {
		return p.UoMID
	}
	return DefaultUoMID
}
