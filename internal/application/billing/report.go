package billing

import "github.com/tu-usuario/billogram-batch/internal/domain/entity"

// RowResult resultado del procesamiento de una fila del CSV.
// Row es el número de fila de datos empezando en 1 (el encabezado no cuenta).
type RowResult struct {
	Row     int
	Invoice entity.Invoice
	Err     error
}

// Failed indica si la fila terminó en fallo (incluida la factura creada pero
// no enviada).
func (r RowResult) Failed() bool {
	return r.Err != nil
}

// Report resumen de una corrida sobre un archivo. Las filas conservan el
// orden del CSV.
type Report struct {
	RunID string
	File  string
	Rows  []RowResult
}

// Sent cantidad de facturas creadas y enviadas.
func (r *Report) Sent() int {
	n := 0
	for _, row := range r.Rows {
		if row.Invoice.State == entity.InvoiceStateSent {
			n++
		}
	}
	return n
}

// FailedCount cantidad de filas con fallo.
func (r *Report) FailedCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Failed() {
			n++
		}
	}
	return n
}
