package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrConfigInvalid  = errors.New("configuración inválida o incompleta")
	ErrMissingField   = errors.New("falta un campo obligatorio en la fila")
	ErrMalformedRow   = errors.New("fila malformada")
	ErrInvalidPrice   = errors.New("precio inválido")
	ErrAPIRejected    = errors.New("la API de Billogram rechazó la petición")
	ErrInvoiceNotSent = errors.New("la factura se creó pero no se pudo enviar")
)
