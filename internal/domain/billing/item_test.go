package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billogram-batch/internal/domain"
	"github.com/tu-usuario/billogram-batch/internal/domain/billing"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

func TestNewItem_Defaults(t *testing.T) {
	item, err := billing.NewItem("Abono mensual", "149.50", "item")
	require.NoError(t, err)

	assert.Equal(t, "Abono mensual", item.Title)
	assert.Empty(t, item.Description)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("149.50")))
	assert.Equal(t, billing.DefaultVAT, item.VAT)
	assert.Equal(t, billing.DefaultUnit, item.Unit)
	assert.Equal(t, billing.DefaultCount, item.Count)
}

// Un título de más de 40 caracteres pasa completo a la descripción y el título
// queda en el valor de respaldo configurado.
func TestNewItem_TituloLargo(t *testing.T) {
	long := strings.Repeat("x", billing.MaxTitleLen+1)

	item, err := billing.NewItem(long, "10", "item")
	require.NoError(t, err)

	assert.Equal(t, "item", item.Title)
	assert.Equal(t, long, item.Description)
}

func TestNewItem_TituloLimiteExacto(t *testing.T) {
	exact := strings.Repeat("x", billing.MaxTitleLen)

	item, err := billing.NewItem(exact, "10", "item")
	require.NoError(t, err)

	assert.Equal(t, exact, item.Title)
	assert.Empty(t, item.Description)
}

// El límite cuenta caracteres, no bytes: un título sueco de 40 letras con
// diacríticos ocupa más de 40 bytes pero no debe abreviarse.
func TestNewItem_TituloLimiteExactoMultibyte(t *testing.T) {
	exact := strings.Repeat("ö", billing.MaxTitleLen)
	require.Greater(t, len(exact), billing.MaxTitleLen) // más bytes que caracteres

	item, err := billing.NewItem(exact, "10", "item")
	require.NoError(t, err)

	assert.Equal(t, exact, item.Title)
	assert.Empty(t, item.Description)

	long := strings.Repeat("ö", billing.MaxTitleLen+1)
	item, err = billing.NewItem(long, "10", "item")
	require.NoError(t, err)

	assert.Equal(t, "item", item.Title)
	assert.Equal(t, long, item.Description)
}

func TestNewItem_Errores(t *testing.T) {
	_, err := billing.NewItem("", "10", "item")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = billing.NewItem("Abono", "diez", "item")
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = billing.NewItem("Abono", "", "item")
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestNewCustomer(t *testing.T) {
	row := entity.CustomerRow{
		CustomerNumber: "C-1001",
		Name:           "Anna Svensson",
		Email:          "anna@example.com",
		PhoneNumber:    "0701234567",
		StreetAddress:  "Storgatan 1",
		PostalCode:     "11122",
		City:           "Stockholm",
	}

	c, err := billing.NewCustomer(row)
	require.NoError(t, err)

	assert.Equal(t, "C-1001", c.CustomerNumber)
	assert.Equal(t, "Anna Svensson", c.Name)
	assert.Equal(t, "Anna Svensson", c.Contact.Name)
	assert.Equal(t, "Storgatan 1", c.Address.StreetAddress)
	assert.Equal(t, "11122", c.Address.ZipCode)
	assert.Equal(t, "Stockholm", c.Address.City)
}

func TestNewCustomer_CamposObligatorios(t *testing.T) {
	_, err := billing.NewCustomer(entity.CustomerRow{Name: "Anna"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = billing.NewCustomer(entity.CustomerRow{CustomerNumber: "C-1"})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}
