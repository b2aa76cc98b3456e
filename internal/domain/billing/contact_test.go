package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/billogram-batch/internal/domain/billing"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

func TestIsEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"anna@example.com", true},
		{"anna.svensson+facturas@sub.example.co", true},
		{"", false},
		{"sin-arroba.example.com", false},
		{"anna@", false},
		{"@example.com", false},
		{"anna @example.com", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, billing.IsEmail(c.in), "email %q", c.in)
	}
}

func TestIsPhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0701234567", true},
		{"0000000000", true},
		{"", false},
		{"701234567", false},   // sin cero inicial
		{"07012345678", false}, // once dígitos
		{"070123456", false},   // nueve dígitos
		{"07O1234567", false},  // letra O en vez de cero
	}
	for _, c := range cases {
		assert.Equal(t, c.want, billing.IsPhoneNumber(c.in), "teléfono %q", c.in)
	}
}

// TestPickSendMethod_Prioridad valida el orden de preferencia Email → SMS → Letter.
func TestPickSendMethod_Prioridad(t *testing.T) {
	customer := func(email, phone string) entity.Customer {
		return entity.Customer{Contact: entity.Contact{Email: email, Phone: phone}}
	}

	assert.Equal(t, entity.SendMethodEmail, billing.PickSendMethod(customer("anna@example.com", "0701234567")))
	assert.Equal(t, entity.SendMethodSMS, billing.PickSendMethod(customer("email-roto", "0701234567")))
	assert.Equal(t, entity.SendMethodLetter, billing.PickSendMethod(customer("", "123")))
	assert.Equal(t, entity.SendMethodLetter, billing.PickSendMethod(customer("", "")))
}
