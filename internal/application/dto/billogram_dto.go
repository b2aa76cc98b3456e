package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

// DTOs del API v2 de Billogram. El esquema lo define el proveedor; aquí solo
// se declara lo que esta herramienta envía y lee.

// CustomerPayload body para POST /customer.
type CustomerPayload struct {
	CustomerNo string         `json:"customer_no"`
	Name       string         `json:"name"`
	Address    AddressPayload `json:"address"`
	Contact    ContactPayload `json:"contact"`
}

// AddressPayload dirección principal del cliente.
type AddressPayload struct {
	StreetAddress string `json:"street_address"`
	ZipCode       string `json:"zipcode"`
	City          string `json:"city"`
}

// ContactPayload contacto del cliente.
type ContactPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BillogramPayload body para POST /billogram (creación de la factura).
// InvoiceNo es opcional: si va vacío, Billogram asigna el consecutivo.
type BillogramPayload struct {
	InvoiceNo string        `json:"invoice_no,omitempty"`
	Customer  CustomerRef   `json:"customer"`
	Items     []ItemPayload `json:"items"`
}

// CustomerRef referencia por número de cliente dentro de la factura.
type CustomerRef struct {
	CustomerNo string `json:"customer_no"`
}

// ItemPayload línea de la factura.
type ItemPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	VAT         string          `json:"vat"`
	Unit        string          `json:"unit"`
	Count       int             `json:"count"`
}

// SendPayload body para POST /billogram/{id}/command/send.
type SendPayload struct {
	Method string `json:"method"`
}

// Envelope sobre genérico de las respuestas de Billogram: {"status": ..., "data": ...}.
type Envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// EnvelopeData campos de data que esta herramienta lee: el id del objeto
// creado en respuestas exitosas y el mensaje en respuestas de error.
type EnvelopeData struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// NewCustomerPayload mapea el cliente de dominio al body del API.
func NewCustomerPayload(c entity.Customer) CustomerPayload {
	return CustomerPayload{
		CustomerNo: c.CustomerNumber,
		Name:       c.Name,
		Address: AddressPayload{
			StreetAddress: c.Address.StreetAddress,
			ZipCode:       c.Address.ZipCode,
			City:          c.Address.City,
		},
		Contact: ContactPayload{
			Name:  c.Contact.Name,
			Email: c.Contact.Email,
			Phone: c.Contact.Phone,
		},
	}
}

// NewBillogramPayload mapea número de factura, cliente e ítem al body de
// creación. Siempre una sola línea por factura: una fila del CSV es un ítem.
func NewBillogramPayload(invoiceNo, customerNo string, item entity.Item) BillogramPayload {
	return BillogramPayload{
		InvoiceNo: invoiceNo,
		Customer:  CustomerRef{CustomerNo: customerNo},
		Items: []ItemPayload{{
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			VAT:         item.VAT,
			Unit:        item.Unit,
			Count:       item.Count,
		}},
	}
}
