package billing

import (
	"regexp"

	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

// Patrones de validación de contacto.
// El de email es el patrón clásico de emailregex.com; el de teléfono acepta
// números suecos nacionales de diez dígitos con cero inicial.
var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	phoneRe = regexp.MustCompile(`^0\d{9}$`)
)

// IsEmail indica si s es una dirección de email válida.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPhoneNumber indica si s es un número de teléfono válido.
func IsPhoneNumber(s string) bool {
	return phoneRe.MatchString(s)
}

// PickSendMethod elige el método de envío de la factura para el cliente:
// Email si el contacto tiene un email válido, SMS si tiene un teléfono válido,
// y carta física como último recurso.
func PickSendMethod(c entity.Customer) string {
	switch {
	case IsEmail(c.Contact.Email):
		return entity.SendMethodEmail
	case IsPhoneNumber(c.Contact.Phone):
		return entity.SendMethodSMS
	default:
		return entity.SendMethodLetter
	}
}
