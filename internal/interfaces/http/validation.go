package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo según el tag json, para que coincidan con el formulario.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// price: el decimal cabe en NUMERIC(14,2). Se evalúa antes de que la regla de precios compare valores.
	if err := v.RegisterValidation("price", validatePrice); err != nil {
		panic(err)
	}
	return v
}

func validatePrice(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && entity.PriceInRange(d)
}

// fieldKey nombre del campo en la respuesta: ruta json sin la estructura raíz.
// Los precios de UpdateArticleRequest viven en NullableDecimal.Value y se reportan con el nombre del precio.
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.TrimSuffix(ns, ".Value")
}

func validationFailed(c *fiber.Ctx, err error) error {
	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fieldKey(fe)] = fe.Tag()
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrorResponse{Code: "VALIDATION", Message: "error de validación", Fields: fields})
}

// bindAndValidate parsea el cuerpo JSON y ejecuta los tags validate.
// Devuelve false si ya escribió la respuesta de error; el handler debe retornar sin escribir otra.
func bindAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

// bindQuery parsea los parámetros de query y ejecuta los tags validate.
func bindQuery(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.QueryParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos: " + err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}
