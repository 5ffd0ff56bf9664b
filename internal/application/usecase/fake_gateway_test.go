package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ithesk/odoo-scanner/internal/domain/entity"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
)

// fakeGateway implementación en memoria de repository.ErpGateway para tests.
// Los productos se registran por código de barras; las transferencias creadas
// quedan en memoria para inspección.
type fakeGateway struct {
	mu sync.Mutex

	products  map[string]entity.Product
	transfers map[int64]*entity.Transfer
	nextID    int64

	// errores inyectables por operación; nil significa éxito
	createErr   error
	confirmErr  error
	validateErr error

	deleted   []int64
	validated []int64
	moveCalls [][]repository.MoveLine
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		products:  make(map[string]entity.Product),
		transfers: make(map[int64]*entity.Transfer),
		nextID:    100,
	}
}

func (f *fakeGateway) addProduct(barcode, name string, price float64) {
	f.products[barcode] = entity.Product{
		ID:      int64(len(f.products) + 1),
		Name:    name,
		Barcode: barcode,
		Price:   decimal.NewFromFloat(price),
		UoMID:   1,
	}
}

func (f *fakeGateway) addTransfer(t entity.Transfer) {
	f.transfers[t.ID] = &t
}

func (f *fakeGateway) Authenticate(ctx context.Context) (int64, error) { return 2, nil }

func (f *fakeGateway) FindInternalLocations(ctx context.Context) ([]entity.Location, error) {
	return []entity.Location{
		{ID: 8, Name: "WH/Stock", CompleteName: "WH/Stock"},
		{ID: 9, Name: "WH/Tienda", CompleteName: "WH/Tienda"},
	}, nil
}

func (f *fakeGateway) FindProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[barcode]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeGateway) ReadProducts(ctx context.Context, ids []int64) (map[int64]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64]entity.Product)
	for _, product := range f.products {
		for _, id := range ids {
			if product.ID == id {
				out[id] = product
			}
		}
	}
	return out, nil
}

func (f *fakeGateway) SearchReadProductsByBarcodes(ctx context.Context, barcodes []string) (map[string]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := make(map[string]entity.Product)
	for _, code := range barcodes {
		if product, ok := f.products[code]; ok {
			found[code] = product
		}
	}
	return found, nil
}

func (f *fakeGateway) CreateTransfer(ctx context.Context, sourceID, destID int64, origin string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.transfers[f.nextID] = &entity.Transfer{
		ID:       f.nextID,
		Name:     fmt.Sprintf("WH/INT/%05d", f.nextID),
		Origin:   origin,
		State:    entity.TransferStateDraft,
		SourceID: sourceID,
		DestID:   destID,
	}
	return f.nextID, nil
}

func (f *fakeGateway) CreateMovements(ctx context.Context, transferID, sourceID, destID int64, lines []repository.MoveLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moveCalls = append(f.moveCalls, lines)
	transfer, ok := f.transfers[transferID]
	if !ok {
		return fmt.Errorf("transferencia %d no existe", transferID)
	}
	for _, line := range lines {
		transfer.Moves = append(transfer.Moves, entity.Movement{
			ProductID: line.ProductID,
			Barcode:   line.Barcode,
			Quantity:  line.Quantity,
			UoMID:     line.UoMID,
		})
	}
	return nil
}

func (f *fakeGateway) ConfirmTransfer(ctx context.Context, transferID int64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if transfer, ok := f.transfers[transferID]; ok {
		transfer.State = entity.TransferStateAssigned
	}
	return nil
}

func (f *fakeGateway) DeleteTransfer(ctx context.Context, transferID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, transferID)
	delete(f.transfers, transferID)
	return nil
}

func (f *fakeGateway) ValidateTransfer(ctx context.Context, transferID int64) error {
	if f.validateErr != nil {
		return f.validateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validated = append(f.validated, transferID)
	if transfer, ok := f.transfers[transferID]; ok {
		transfer.State = entity.TransferStateDone
	}
	return nil
}

func (f *fakeGateway) ListPendingTransfers(ctx context.Context) ([]entity.Transfer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pending []entity.Transfer
	for _, transfer := range f.transfers {
		if transfer.Pending() {
			pending = append(pending, *transfer)
		}
	}
	return pending, nil
}

func (f *fakeGateway) ReadTransfer(ctx context.Context, transferID int64) (*entity.Transfer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	transfer, ok := f.transfers[transferID]
	if !ok {
		return nil, fmt.Errorf("transferencia %d no existe", transferID)
	}
	copied := *transfer
	return &copied, nil
}

// lastMoves aplana todas las líneas enviadas a CreateMovements.
func (f *fakeGateway) lastMoves() []repository.MoveLine {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []repository.MoveLine
	for _, call := range f.moveCalls {
		all = append(all, call...)
	}
	return all
}
