package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/courier-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// ValidatePricingRequest entrada del endpoint de pre-validación del formulario.
// Los campos de precio ausentes o null se tratan igual (ausente).
type ValidatePricingRequest struct {
	DropshippingEnabled *bool            `json:"dropshippingEnabled" validate:"required"`
	Cost                *decimal.Decimal `json:"cost" validate:"omitempty,price"`
	MinSalePrice        *decimal.Decimal `json:"minSalePrice" validate:"omitempty,price"`
	NormalPrice         *decimal.Decimal `json:"normalPrice" validate:"omitempty,price"`
}

// ToInput convierte la petición a la entrada del validador.
func (r ValidatePricingRequest) ToInput() pricing.Input {
	in := pricing.Input{
		Cost:         r.Cost,
		MinSalePrice: r.MinSalePrice,
		NormalPrice:  r.NormalPrice,
	}
	if r.DropshippingEnabled != nil {
		in.DropshippingEnabled = *r.DropshippingEnabled
	}
	return in
}

// ValidatePricingResponse es el resultado del validador tal cual.
type ValidatePricingResponse = pricing.Result

// NullableDecimal distingue tres estados en un PATCH/PUT parcial:
// campo omitido (Set=false), null explícito (Set=true, Value=nil) y valor (Set=true, Value!=nil).
type NullableDecimal struct {
	Set   bool
	Value *decimal.Decimal `validate:"omitempty,price"`
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el JSON.
func (n *NullableDecimal) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// MarshalJSON escribe null o el valor.
func (n NullableDecimal) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Apply devuelve el nuevo valor del campo: el actual si se omitió, el enviado en otro caso.
func (n NullableDecimal) Apply(current *decimal.Decimal) *decimal.Decimal {
	if !n.Set {
		return current
	}
	return n.Value
}
