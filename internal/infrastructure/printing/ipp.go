// Package printing integra el spooler CUPS vía IPP. La impresión es
// delegación pura: esta aplicación no sabe si el trabajo terminó, solo si
// el spooler lo aceptó.
package printing

import (
	"context"
	"fmt"

	ipp "github.com/phin1x/go-ipp"

	"github.com/ithesk/odoo-scanner/internal/domain/repository"
)

// Atributos IPP que se piden al descubrir impresoras.
var printerAttributes = []string{"printer-name", "printer-info", "printer-state", "printer-location"}

// CUPSPrinter implementa repository.LabelPrinter contra un spooler CUPS,
// local o remoto según el host configurado.
type CUPSPrinter struct {
	client *ipp.CUPSClient
}

// NewCUPSPrinter construye el cliente. host vacío apunta al CUPS local.
func NewCUPSPrinter(host string, port int) *CUPSPrinter {
	if host == "" {
		host = "localhost"
	}
	if port <= 0 {
		port = 631
	}
	return &CUPSPrinter{client: ipp.NewCUPSClient(host, port, "", "", false)}
}

var _ repository.LabelPrinter = (*CUPSPrinter)(nil)

// ListPrinters descubre las impresoras registradas en el spooler.
// go-ipp no acepta context; el timeout lo pone su cliente HTTP interno.
func (p *CUPSPrinter) ListPrinters(_ context.Context) ([]repository.PrinterInfo, error) {
	printers, err := p.client.GetPrinters(printerAttributes)
	if err != nil {
		return nil, fmt.Errorf("printing: consultar impresoras: %w", err)
	}

	out := make([]repository.PrinterInfo, 0, len(printers))
	for name, attrs := range printers {
		out = append(out, repository.PrinterInfo{
			Name:     name,
			Info:     attrString(attrs, "printer-info"),
			State:    stateName(attrInt(attrs, "printer-state")),
			Location: attrString(attrs, "printer-location"),
		})
	}
	return out, nil
}

// PrintFile envía el archivo a la impresora y devuelve el id del trabajo.
func (p *CUPSPrinter) PrintFile(_ context.Context, path, printerName string) (int, error) {
	jobID, err := p.client.PrintFile(path, printerName, map[string]interface{}{})
	if err != nil {
		return 0, fmt.Errorf("printing: imprimir en %s: %w", printerName, err)
	}
	return jobID, nil
}

func attrString(attrs ipp.Attributes, name string) string {
	if values := attrs[name]; len(values) > 0 {
		if s, ok := values[0].Value.(string); ok {
			return s
		}
	}
	return ""
}

func attrInt(attrs ipp.Attributes, name string) int {
	if values := attrs[name]; len(values) > 0 {
		switch v := values[0].Value.(type) {
		case int:
			return v
		case int32:
			return int(v)
		}
	}
	return 0
}

// stateName traduce el enum printer-state de IPP.
func stateName(state int) string {
	switch state {
	case 3:
		return "idle"
	case 4:
		return "processing"
	case 5:
		return "stopped"
	default:
		return "unknown"
	}
}
