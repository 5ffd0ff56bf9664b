package repository

import "context"

// PrinterInfo impresora disponible en el spooler CUPS/IPP.
type PrinterInfo struct {
	Name     string
	Info     string // descripción legible
	State    string // idle, processing, stopped
	Location string
}

// LabelPrinter puerto de salida hacia el spooler de impresión.
type LabelPrinter interface {
	// ListPrinters descubre las impresoras registradas en el spooler.
	ListPrinters(ctx context.Context) ([]PrinterInfo, error)

	// PrintFile envía un archivo a la impresora indicada y devuelve el id
	// del trabajo de impresión.
	PrintFile(ctx context.Context, path, printerName string) (int, error)
}
