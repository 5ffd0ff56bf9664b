package odoo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/entity"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// Campos que se leen de product.product para resolver códigos de barras.
var productFields = []any{"id", "name", "barcode", "default_code", "list_price", "qty_available", "uom_id"}

// Gateway implementa repository.ErpGateway contra Odoo. Cada operación abre
// su propia sesión (authenticate + execute_kw), igual que hace el cliente
// XML-RPC de referencia de Odoo: no hay pool ni reintentos.
type Gateway struct {
	client          *Client
	log             *logger.Logger
	moveBatchSize   int
	lookupBatchSize int
}

// NewGateway construye el gateway. moveBatchSize acota las líneas stock.move
// por llamada create; lookupBatchSize los códigos por búsqueda OR.
func NewGateway(client *Client, log *logger.Logger, moveBatchSize, lookupBatchSize int) *Gateway {
	if moveBatchSize <= 0 {
		moveBatchSize = 5
	}
	if lookupBatchSize <= 0 {
		lookupBatchSize = 20
	}
	return &Gateway{
		client:          client,
		log:             log,
		moveBatchSize:   moveBatchSize,
		lookupBatchSize: lookupBatchSize,
	}
}

var _ repository.ErpGateway = (*Gateway)(nil)

// Authenticate expone la apertura de sesión para la prueba de conexión
// del formulario de configuración.
func (g *Gateway) Authenticate(ctx context.Context) (int64, error) {
	return g.client.Authenticate(ctx)
}

// FindInternalLocations lista las ubicaciones internas del almacén.
func (g *Gateway) FindInternalLocations(ctx context.Context) ([]entity.Location, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	result, err := g.client.ExecuteKw(ctx, uid, "stock.location", "search_read",
		[]any{[]any{[]any{"usage", "=", "internal"}}},
		map[string]any{"fields": []any{"id", "name", "complete_name"}})
	if err != nil {
		return nil, err
	}

	var locations []entity.Location
	for _, record := range asList(result) {
		rec := asMap(record)
		locations = append(locations, entity.Location{
			ID:           asInt64(rec["id"]),
			Name:         asString(rec["name"]),
			CompleteName: asString(rec["complete_name"]),
		})
	}
	return locations, nil
}

// FindProductByBarcode resuelve un código de barras a producto; nil si no existe.
func (g *Gateway) FindProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return g.findProduct(ctx, uid, barcode)
}

func (g *Gateway) findProduct(ctx context.Context, uid int64, barcode string) (*entity.Product, error) {
	result, err := g.client.ExecuteKw(ctx, uid, "product.product", "search_read",
		[]any{[]any{[]any{"barcode", "=", barcode}}},
		map[string]any{"fields": productFields, "limit": 1})
	if err != nil {
		return nil, err
	}
	records := asList(result)
	if len(records) == 0 {
		return nil, nil
	}
	product := decodeProduct(asMap(records[0]))
	return &product, nil
}

// ReadProducts lee productos por id vía la operación read.
func (g *Gateway) ReadProducts(ctx context.Context, ids []int64) (map[int64]entity.Product, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return g.readProducts(ctx, uid, ids)
}

func (g *Gateway) readProducts(ctx context.Context, uid int64, ids []int64) (map[int64]entity.Product, error) {
	if len(ids) == 0 {
		return map[int64]entity.Product{}, nil
	}
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	result, err := g.client.ExecuteKw(ctx, uid, "product.product", "read",
		[]any{args}, map[string]any{"fields": productFields})
	if err != nil {
		return nil, err
	}
	out := make(map[int64]entity.Product)
	for _, record := range asList(result) {
		product := decodeProduct(asMap(record))
		out[product.ID] = product
	}
	return out, nil
}

// SearchReadProductsByBarcodes busca productos por lotes con dominio OR
// encadenado: ['|']*(n-1) + [('barcode','=',c1), ..., ('barcode','=',cn)].
func (g *Gateway) SearchReadProductsByBarcodes(ctx context.Context, barcodes []string) (map[string]entity.Product, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	found := make(map[string]entity.Product)
	for start := 0; start < len(barcodes); start += g.lookupBatchSize {
		end := start + g.lookupBatchSize
		if end > len(barcodes) {
			end = len(barcodes)
		}
		batch := barcodes[start:end]

		domainFilter := make([]any, 0, 2*len(batch)-1)
		for i := 0; i < len(batch)-1; i++ {
			domainFilter = append(domainFilter, "|")
		}
		for _, code := range batch {
			domainFilter = append(domainFilter, []any{"barcode", "=", code})
		}

		result, err := g.client.ExecuteKw(ctx, uid, "product.product", "search_read",
			[]any{domainFilter}, map[string]any{"fields": productFields})
		if err != nil {
			return nil, err
		}
		for _, record := range asList(result) {
			product := decodeProduct(asMap(record))
			if product.Barcode != "" {
				found[product.Barcode] = product
			}
		}
	}
	return found, nil
}

// CreateTransfer crea el stock.picking en borrador. Falla con
// domain.ErrNoTransferType si no hay tipo de transferencia interna.
func (g *Gateway) CreateTransfer(ctx context.Context, sourceID, destID int64, origin string) (int64, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return 0, err
	}

	result, err := g.client.ExecuteKw(ctx, uid, "stock.picking.type", "search",
		[]any{[]any{[]any{"code", "=", "internal"}}}, nil)
	if err != nil {
		return 0, err
	}
	typeIDs := asList(result)
	if len(typeIDs) == 0 {
		return 0, domain.ErrNoTransferType
	}

	vals := map[string]any{
		"picking_type_id":  asInt64(typeIDs[0]),
		"location_id":      sourceID,
		"location_dest_id": destID,
		"origin":           origin,
	}
	created, err := g.client.ExecuteKw(ctx, uid, "stock.picking", "create", []any{vals}, nil)
	if err != nil {
		return 0, err
	}
	transferID := asInt64(created)
	if transferID == 0 {
		return 0, fmt.Errorf("odoo: create de stock.picking no devolvió id")
	}
	return transferID, nil
}

// CreateMovements crea las líneas stock.move en lotes de moveBatchSize.
// Un fallo en cualquier lote aborta la operación; no hay recuperación parcial.
func (g *Gateway) CreateMovements(ctx context.Context, transferID, sourceID, destID int64, lines []repository.MoveLine) error {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return err
	}

	for start := 0; start < len(lines); start += g.moveBatchSize {
		end := start + g.moveBatchSize
		if end > len(lines) {
			end = len(lines)
		}
		vals := make([]any, 0, end-start)
		for _, line := range lines[start:end] {
			vals = append(vals, map[string]any{
				"name":             "Movimiento de " + line.Barcode,
				"product_id":       line.ProductID,
				"product_uom_qty":  line.Quantity,
				"product_uom":      line.UoMID,
				"picking_id":       transferID,
				"location_id":      sourceID,
				"location_dest_id": destID,
			})
		}
		if _, err := g.client.ExecuteKw(ctx, uid, "stock.move", "create", []any{vals}, nil); err != nil {
			return fmt.Errorf("crear movimientos (lote %d): %w", start/g.moveBatchSize+1, err)
		}
	}
	return nil
}

// ConfirmTransfer ejecuta action_confirm sobre la transferencia.
func (g *Gateway) ConfirmTransfer(ctx context.Context, transferID int64) error {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return err
	}
	_, err = g.client.ExecuteKw(ctx, uid, "stock.picking", "action_confirm", []any{transferID}, nil)
	return err
}

// DeleteTransfer elimina una transferencia vacía (unlink).
func (g *Gateway) DeleteTransfer(ctx context.Context, transferID int64) error {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return err
	}
	_, err = g.client.ExecuteKw(ctx, uid, "stock.picking", "unlink", []any{transferID}, nil)
	return err
}

// ValidateTransfer ejecuta button_validate. Odoo puede responder con el
// asistente stock.immediate.transfer en vez de validar directo; en ese caso
// se procesa el asistente aquí mismo para que el caller vea una sola
// operación de validación.
func (g *Gateway) ValidateTransfer(ctx context.Context, transferID int64) error {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return err
	}
	result, err := g.client.ExecuteKw(ctx, uid, "stock.picking", "button_validate", []any{transferID}, nil)
	if err != nil {
		return err
	}

	wizard := asMap(result)
	if asString(wizard["res_model"]) != "stock.immediate.transfer" {
		return nil
	}
	wizardID := asInt64(wizard["res_id"])
	if wizardID == 0 {
		return fmt.Errorf("odoo: button_validate devolvió asistente sin res_id")
	}
	g.log.Debug().Int64("transfer_id", transferID).Int64("wizard_id", wizardID).
		Msg("procesando asistente de transferencia inmediata")
	_, err = g.client.ExecuteKw(ctx, uid, "stock.immediate.transfer", "process", []any{wizardID}, nil)
	return err
}

// ListPendingTransfers lista transferencias pendientes de recepción.
func (g *Gateway) ListPendingTransfers(ctx context.Context) ([]entity.Transfer, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	result, err := g.client.ExecuteKw(ctx, uid, "stock.picking", "search_read",
		[]any{[]any{[]any{"state", "in", []any{
			entity.TransferStateWaiting, entity.TransferStateConfirmed, entity.TransferStateAssigned,
		}}}},
		map[string]any{"fields": []any{"id", "name", "origin", "state", "location_id", "location_dest_id"}})
	if err != nil {
		return nil, err
	}

	var transfers []entity.Transfer
	for _, record := range asList(result) {
		transfers = append(transfers, decodeTransfer(asMap(record)))
	}
	return transfers, nil
}

// ReadTransfer lee una transferencia con sus líneas y los códigos de barras
// de los productos referenciados.
func (g *Gateway) ReadTransfer(ctx context.Context, transferID int64) (*entity.Transfer, error) {
	uid, err := g.client.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	result, err := g.client.ExecuteKw(ctx, uid, "stock.picking", "search_read",
		[]any{[]any{[]any{"id", "=", transferID}}},
		map[string]any{"fields": []any{"id", "name", "origin", "state", "location_id", "location_dest_id"}})
	if err != nil {
		return nil, err
	}
	records := asList(result)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: transferencia %d", domain.ErrNotFound, transferID)
	}
	transfer := decodeTransfer(asMap(records[0]))

	moveResult, err := g.client.ExecuteKw(ctx, uid, "stock.move", "search_read",
		[]any{[]any{[]any{"picking_id", "=", transferID}}},
		map[string]any{"fields": []any{"id", "product_id", "product_uom_qty", "product_uom", "state"}})
	if err != nil {
		return nil, err
	}

	var productIDs []int64
	for _, record := range asList(moveResult) {
		rec := asMap(record)
		move := entity.Movement{
			ID:       asInt64(rec["id"]),
			Quantity: asFloat64(rec["product_uom_qty"]),
			State:    asString(rec["state"]),
		}
		move.ProductID, move.ProductName = asRelation(rec["product_id"])
		move.UoMID, _ = asRelation(rec["product_uom"])
		transfer.Moves = append(transfer.Moves, move)
		if move.ProductID > 0 {
			productIDs = append(productIDs, move.ProductID)
		}
	}

	products, err := g.readProducts(ctx, uid, productIDs)
	if err != nil {
		return nil, err
	}
	for i := range transfer.Moves {
		transfer.Moves[i].Barcode = products[transfer.Moves[i].ProductID].Barcode
	}

	return &transfer, nil
}

// ── Decodificación de registros genéricos ─────────────────────────────────────

func decodeProduct(rec map[string]any) entity.Product {
	product := entity.Product{
		ID:           asInt64(rec["id"]),
		Name:         asString(rec["name"]),
		Barcode:      asString(rec["barcode"]),
		DefaultCode:  asString(rec["default_code"]),
		Price:        decimal.NewFromFloat(asFloat64(rec["list_price"])),
		QtyAvailable: asFloat64(rec["qty_available"]),
	}
	product.UoMID, _ = asRelation(rec["uom_id"])
	return product
}

func decodeTransfer(rec map[string]any) entity.Transfer {
	transfer := entity.Transfer{
		ID:     asInt64(rec["id"]),
		Name:   asString(rec["name"]),
		Origin: asString(rec["origin"]),
		State:  asString(rec["state"]),
	}
	transfer.SourceID, transfer.SourceName = asRelation(rec["location_id"])
	transfer.DestID, transfer.DestName = asRelation(rec["location_dest_id"])
	return transfer
}

// asRelation interpreta un many2one de Odoo: [id, "nombre"] o false.
func asRelation(v any) (int64, string) {
	pair := asList(v)
	if len(pair) < 2 {
		return asInt64(v), ""
	}
	return asInt64(pair[0]), asString(pair[1])
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

/// asString devuelve "" para false: Odoo usa boolean false en campos vacíos.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case float64:
		return int64(t)
	}
	return 0
}

func asFloat64(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	}
	return 0
}
