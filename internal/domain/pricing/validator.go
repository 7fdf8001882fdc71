// Package pricing contiene la regla de validación de precios de artículos.
// Es una función pura: no depende de almacenamiento, transporte ni reloj, y se usa
// igual desde el endpoint de pre-validación del formulario y desde el límite de escritura
// del catálogo (para que una llamada directa a la API no pueda saltarse la regla).
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Code categoría legible por máquina de un error de validación.
type Code string

const (
	CodeNegativeValue     Code = "NEGATIVE_VALUE"
	CodeRequiredField     Code = "REQUIRED_FIELD"
	CodeInvalidPriceRange Code = "INVALID_PRICE_RANGE"
)

// Field nombre del campo de entrada al que apunta el error.
type Field string

const (
	FieldCost         Field = "cost"
	FieldMinSalePrice Field = "minSalePrice"
	FieldNormalPrice  Field = "normalPrice"
)

// ErrInvalidPricing es el error base que devuelve Result.Err cuando hay violaciones.
var ErrInvalidPricing = errors.New("precios del artículo inválidos")

// Input campos de precio de un artículo candidato. nil significa ausente.
type Input struct {
	DropshippingEnabled bool
	Cost                *decimal.Decimal
	MinSalePrice        *decimal.Decimal
	NormalPrice         *decimal.Decimal
}

// ValidationError una violación concreta. Code y Field son el contrato; Message depende del idioma.
type ValidationError struct {
	Code    Code   `json:"code"`
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// Result resultado de Validate. Valid es true sii Errors está vacío.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// HasError indica si el resultado contiene un error con ese campo y código.
func (r Result) HasError(field Field, code Code) bool {
	for _, e := range r.Errors {
		if e.Field == field && e.Code == code {
			return true
		}
	}
	return false
}

// Err devuelve nil si el resultado es válido; si no, un *ResultError que envuelve ErrInvalidPricing.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ResultError{Result: r}
}

// ResultError transporta el resultado completo para que el llamador pueda mapear los errores a campos.
type ResultError struct {
	Result Result
}

func (e *ResultError) Error() string {
	if len(e.Result.Errors) == 0 {
		return ErrInvalidPricing.Error()
	}
	return ErrInvalidPricing.Error() + ": " + string(e.Result.Errors[0].Field) + " " + e.Result.Errors[0].Message
}

func (e *ResultError) Unwrap() error { return ErrInvalidPricing }

// Validator aplica la regla de precios con un juego de mensajes fijo.
// Es un valor inmutable; se puede copiar y usar concurrentemente.
type Validator struct {
	msgs Messages
}

// NewValidator construye un validador con los mensajes indicados.
func NewValidator(msgs Messages) Validator {
	return Validator{msgs: msgs}
}

var defaultValidator = NewValidator(Spanish)

// Validate valida con los mensajes en español.
func Validate(in Input) Result {
	return defaultValidator.Validate(in)
}

// Validate acumula todas las violaciones en orden estable:
// negativos (cost, minSalePrice, normalPrice), requeridos (minSalePrice, normalPrice) y rango.
func (v Validator) Validate(in Input) Result {
	errs := make([]ValidationError, 0)

	for _, f := range []struct {
		field Field
		value *decimal.Decimal
	}{
		{FieldCost, in.Cost},
		{FieldMinSalePrice, in.MinSalePrice},
		{FieldNormalPrice, in.NormalPrice},
	} {
		if f.value != nil && f.value.IsNegative() {
			errs = append(errs, v.newError(CodeNegativeValue, f.field))
		}
	}

	// cost nunca es obligatorio, ni siquiera con dropshipping.
	if in.DropshippingEnabled {
		if in.MinSalePrice == nil {
			errs = append(errs, v.newError(CodeRequiredField, FieldMinSalePrice))
		}
		if in.NormalPrice == nil {
			errs = append(errs, v.newError(CodeRequiredField, FieldNormalPrice))
		}
	}

	if in.MinSalePrice != nil && in.NormalPrice != nil && in.MinSalePrice.GreaterThan(*in.NormalPrice) {
		errs = append(errs, v.newError(CodeInvalidPriceRange, FieldMinSalePrice))
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (v Validator) newError(code Code, field Field) ValidationError {
	return ValidationError{Code: code, Field: field, Message: v.msgs.format(code, field)}
}
