package pricing

import (
	"fmt"

	"golang.org/x/text/language"
)

// Messages plantillas de mensajes por código y etiquetas legibles por campo.
// Las plantillas reciben la etiqueta del campo como único argumento (%s).
type Messages struct {
	Tag       language.Tag
	Templates map[Code]string
	Labels    map[Field]string
}

// Spanish mensajes por defecto.
var Spanish = Messages{
	Tag: language.Spanish,
	Templates: map[Code]string{
		CodeNegativeValue:     "El %s no puede ser negativo",
		CodeRequiredField:     "El %s es obligatorio cuando el dropshipping está habilitado",
		CodeInvalidPriceRange: "El %s no puede ser mayor que el precio normal",
	},
	Labels: map[Field]string{
		FieldCost:         "costo",
		FieldMinSalePrice: "precio mínimo de venta",
		FieldNormalPrice:  "precio normal",
	},
}

// English mensajes en inglés.
var English = Messages{
	Tag: language.English,
	Templates: map[Code]string{
		CodeNegativeValue:     "The %s cannot be negative",
		CodeRequiredField:     "The %s is required when dropshipping is enabled",
		CodeInvalidPriceRange: "The %s cannot be greater than the normal price",
	},
	Labels: map[Field]string{
		FieldCost:         "cost",
		FieldMinSalePrice: "minimum sale price",
		FieldNormalPrice:  "normal price",
	},
}

var (
	supported = []Messages{Spanish, English}
	matcher   = language.NewMatcher([]language.Tag{Spanish.Tag, English.Tag})
)

func (m Messages) format(code Code, field Field) string {
	label, ok := m.Labels[field]
	if !ok {
		label = string(field)
	}
	tpl, ok := m.Templates[code]
	if !ok {
		return string(code) + ": " + label
	}
	return fmt.Sprintf(tpl, label)
}

// MessagesFor devuelve el juego de mensajes que mejor coincide con tag; español si no hay coincidencia.
func MessagesFor(tag language.Tag) Messages {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Spanish
	}
	return supported[idx]
}

// ParseLocale interpreta un código de idioma de configuración (ej. "es", "en-US").
func ParseLocale(s string) (Messages, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Spanish, fmt.Errorf("locale %q: %w", s, err)
	}
	return MessagesFor(tag), nil
}

// MessagesForAcceptLanguage elige mensajes a partir de un header Accept-Language.
// Si el header está vacío, es inválido o no coincide con ningún idioma soportado, usa fallback.
func MessagesForAcceptLanguage(header string, fallback Messages) Messages {
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}
