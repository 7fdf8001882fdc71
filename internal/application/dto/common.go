package dto

import "github.com/jhoicas/courier-api/internal/domain/pricing"

// PageRequest paginación para listados. Limit 0 toma el valor por defecto y
// por encima de 100 se acota en Normalize.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0"`
	Offset int `query:"offset" validate:"min=0"`
}

// Normalize aplica valores por defecto y límites a Limit/Offset.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorResponse error de validación de estructura con detalle por campo.
type FieldErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// PricingErrorResponse cuerpo 422 cuando la escritura se rechaza por reglas de precio.
type PricingErrorResponse struct {
	Code    string                    `json:"code"`
	Message string                    `json:"message"`
	Errors  []pricing.ValidationError `json:"errors"`
}
