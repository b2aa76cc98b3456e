package entity

import "github.com/shopspring/decimal"

// Métodos de envío soportados por el comando send de Billogram.
const (
	SendMethodEmail  = "Email"
	SendMethodSMS    = "SMS"
	SendMethodLetter = "Letter"
)

// Estados del procesamiento de una fila.
const (
	InvoiceStateCreated = "CREATED" // Creada en Billogram, envío pendiente o fallido
	InvoiceStateSent    = "SENT"    // Creada y enviada al cliente
	InvoiceStateFailed  = "FAILED"  // No se llegó a crear la factura
	InvoiceStateDryRun  = "DRY_RUN" // Simulación: no se hizo ninguna llamada
)

// Item una línea de la factura.
type Item struct {
	Title       string
	Description string // Título completo cuando Title fue abreviado
	Price       decimal.Decimal
	VAT         string
	Unit        string
	Count       int
}

// Invoice resultado del procesamiento de una fila: referencia a la factura
// creada en Billogram y el estado al que llegó.
type Invoice struct {
	BillogramID    string // ID asignado por Billogram al crearla
	InvoiceNumber  string
	CustomerNumber string
	CustomerName   string
	SendMethod     string
	State          string
}
