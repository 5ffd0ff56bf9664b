package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ithesk/odoo-scanner/internal/domain/entity"
)

func TestTransfer_ExpectedBarcodes(t *testing.T) {
	transfer := entity.Transfer{Moves: []entity.Movement{
		{Barcode: "111"},
		{Barcode: "222"},
		{Barcode: "111"}, // línea duplicada del mismo producto
		{Barcode: ""},    // producto sin código de barras en Odoo
	}}

	expected := transfer.ExpectedBarcodes()
	assert.Equal(t, map[string]bool{"111": true, "222": true}, expected,
		"los duplicados colapsan y los códigos vacíos no cuentan")
}

func TestTransfer_Pending(t *testing.T) {
	pendientes := []string{
		entity.TransferStateWaiting,
		entity.TransferStateConfirmed,
		entity.TransferStateAssigned,
	}
	for _, state := range pendientes {
		assert.True(t, entity.Transfer{State: state}.Pending(), state)
	}

	assert.False(t, entity.Transfer{State: entity.TransferStateDraft}.Pending())
	assert.False(t, entity.Transfer{State: entity.TransferStateDone}.Pending())
	assert.False(t, entity.Transfer{State: entity.TransferStateCancel}.Pending())
}
