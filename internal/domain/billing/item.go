package billing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billogram-batch/internal/domain"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

// Valores por defecto que exige el formato de ítem de Billogram cuando el CSV
// no los trae.
const (
	DefaultVAT   = "25"
	DefaultUnit  = "unit"
	DefaultCount = 1

	// MaxTitleLen largo máximo de título aceptado por la API, en caracteres;
	// títulos más largos pasan completos a la descripción.
	MaxTitleLen = 40
)

// NewItem construye la línea de factura a partir de los campos de artículo de
// la fila. fallbackTitle reemplaza al título cuando este excede MaxTitleLen
// (el título completo se conserva en Description).
func NewItem(title, price, fallbackTitle string) (entity.Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entity.Item{}, fmt.Errorf("article_name: %w", domain.ErrMissingField)
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return entity.Item{}, fmt.Errorf("article_price %q: %w", price, domain.ErrInvalidPrice)
	}

	item := entity.Item{
		Title: title,
		Price: p,
		VAT:   DefaultVAT,
		Unit:  DefaultUnit,
		Count: DefaultCount,
	}
	if utf8.RuneCountInString(item.Title) > MaxTitleLen {
		item.Description = item.Title
		item.Title = fallbackTitle
	}
	return item, nil
}

// NewCustomer arma el cliente a partir de la fila. customer_number y name son
// obligatorios; el resto de campos viajan tal cual (la API tolera vacíos).
func NewCustomer(row entity.CustomerRow) (entity.Customer, error) {
	if strings.TrimSpace(row.CustomerNumber) == "" {
		return entity.Customer{}, fmt.Errorf("customer_number: %w", domain.ErrMissingField)
	}
	if strings.TrimSpace(row.Name) == "" {
		return entity.Customer{}, fmt.Errorf("name: %w", domain.ErrMissingField)
	}
	return entity.Customer{
		CustomerNumber: row.CustomerNumber,
		Name:           row.Name,
		Address: entity.Address{
			StreetAddress: row.StreetAddress,
			ZipCode:       row.PostalCode,
			City:          row.City,
		},
		Contact: entity.Contact{
			Name:  row.Name,
			Email: row.Email,
			Phone: row.PhoneNumber,
		},
	}, nil
}
