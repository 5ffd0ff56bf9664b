package repository

import (
	"context"

	"github.com/ithesk/odoo-scanner/internal/domain/entity"
)

// MoveLine datos mínimos para crear una línea stock.move en Odoo.
type MoveLine struct {
	ProductID int64
	Barcode   string // solo para el nombre descriptivo del movimiento
	Quantity  float64
	UoMID     int64
}

// ErpGateway puerto de salida hacia el ERP (Odoo vía XML-RPC).
// La implementación concreta vive en infrastructure/odoo; para tests se
// inyecta un fake.
type ErpGateway interface {
	// Authenticate abre sesión y devuelve el uid. Error de conexión o
	// credenciales se reporta como domain.ErrConnection envuelto.
	Authenticate(ctx context.Context) (int64, error)

	// FindInternalLocations lista las ubicaciones internas del almacén.
	FindInternalLocations(ctx context.Context) ([]entity.Location, error)

	// FindProductByBarcode resuelve un código de barras a producto.
	// Devuelve nil (sin error) cuando el código no existe en Odoo.
	FindProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// ReadProducts lee productos por id (operación read de Odoo) y devuelve
	// un mapa id → producto con los que existen.
	ReadProducts(ctx context.Context, ids []int64) (map[int64]entity.Product, error)

	// SearchReadProductsByBarcodes busca productos por lotes usando un dominio
	// OR encadenado; devuelve un mapa código → producto con lo que encontró.
	SearchReadProductsByBarcodes(ctx context.Context, barcodes []string) (map[string]entity.Product, error)

	// CreateTransfer crea el documento stock.picking en estado borrador.
	// Falla con domain.ErrNoTransferType si el Odoo remoto no tiene tipo
	// de transferencia interna configurado.
	CreateTransfer(ctx context.Context, sourceID, destID int64, origin string) (int64, error)

	// CreateMovements crea las líneas stock.move en lotes acotados; un fallo
	// en cualquier lote aborta la operación completa.
	CreateMovements(ctx context.Context, transferID, sourceID, destID int64, lines []MoveLine) error

	// ConfirmTransfer ejecuta action_confirm sobre la transferencia.
	ConfirmTransfer(ctx context.Context, transferID int64) error

	// DeleteTransfer elimina (unlink) una transferencia sin líneas válidas.
	DeleteTransfer(ctx context.Context, transferID int64) error

	// ValidateTransfer ejecuta button_validate; si Odoo responde con el
	// asistente de transferencia inmediata, lo procesa de forma transparente.
	ValidateTransfer(ctx context.Context, transferID int64) error

	// ListPendingTransfers lista transferencias en estados pendientes de recepción.
	ListPendingTransfers(ctx context.Context) ([]entity.Transfer, error)

	// ReadTransfer lee una transferencia con sus líneas y códigos de producto.
	ReadTransfer(ctx context.Context, transferID int64) (*entity.Transfer, error)
}
