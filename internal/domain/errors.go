package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrConnection cubre fallos de red o autenticación contra Odoo.
	ErrConnection = errors.New("no se pudo conectar con Odoo")
	// ErrNotFound recurso ausente en Odoo (producto, transferencia, ubicación).
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrMissingLocation falta la ubicación de origen o destino.
	ErrMissingLocation = errors.New("ubicación de origen o destino no especificada")
	// ErrNoTransferType el Odoo remoto no tiene configurado un tipo de
	// transferencia interna (stock.picking.type con code 'internal').
	ErrNoTransferType = errors.New("no se encontró tipo de transferencia interna")
	// ErrNotExpected el código escaneado no pertenece a la transferencia.
	ErrNotExpected = errors.New("el código no pertenece a esta transferencia")
	// ErrIncompleteVerification se intentó validar sin verificar todos los productos.
	ErrIncompleteVerification = errors.New("verificación incompleta: faltan productos por confirmar")
	// ErrInvalidInput entrada del operador inválida.
	ErrInvalidInput = errors.New("entrada inválida")
)
