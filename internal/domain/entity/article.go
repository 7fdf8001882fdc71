package entity

import (
	"time"

	"github.com/jhoicas/courier-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Article representa un artículo del inventario de una tienda.
// Los precios son opcionales (nil = sin definir); con dropshipping habilitado
// MinSalePrice y NormalPrice pasan a ser obligatorios (ver pricing.Validate).
type Article struct {
	ID                  string
	StoreID             string
	SKU                 string // único por tienda
	Name                string
	Description         string
	Cost                *decimal.Decimal // costo interno, solo visible para admin y finanzas
	MinSalePrice        *decimal.Decimal // precio mínimo de reventa
	NormalPrice         *decimal.Decimal // precio de lista
	DropshippingEnabled bool
	Stock               int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PricingInput construye la entrada del validador de precios a partir del artículo.
func (a *Article) PricingInput() pricing.Input {
	return pricing.Input{
		DropshippingEnabled: a.DropshippingEnabled,
		Cost:                a.Cost,
		MinSalePrice:        a.MinSalePrice,
		NormalPrice:         a.NormalPrice,
	}
}

// Rango almacenable de un precio: NUMERIC(14,2).
const (
	PriceMaxIntegerDigits = 12
	PriceMaxScale         = 2

	// Exponente mínimo aceptado antes de comprobar ceros sobrantes ("1.500" es 1500e-3).
	priceMinExponent = -18
)

// PriceInRange informa si d cabe en NUMERIC(14,2) sin redondeo.
// Solo inspecciona exponente y cantidad de dígitos, así que un exponente como 1e2000000000
// se rechaza sin reescalar el valor.
func PriceInRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < priceMinExponent {
		return false
	}
	if d.NumDigits()+exp > PriceMaxIntegerDigits {
		return false
	}
	if exp < -PriceMaxScale && !d.Equal(d.Truncate(PriceMaxScale)) {
		return false
	}
	return true
}

// PricesInRange aplica PriceInRange a los precios definidos del artículo.
func (a *Article) PricesInRange() bool {
	for _, p := range []*decimal.Decimal{a.Cost, a.MinSalePrice, a.NormalPrice} {
		if p != nil && !PriceInRange(*p) {
			return false
		}
	}
	return true
}
