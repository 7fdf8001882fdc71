package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/application/usecase"
	"github.com/jhoicas/courier-api/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP. Los errores de infraestructura
// se devuelven como 500 sin detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	if res, ok := usecase.IsPricingError(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.PricingErrorResponse{
			Code:    "INVALID_PRICING",
			Message: "los precios del artículo no cumplen las reglas",
			Errors:  res.Errors,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU ya existe en esta tienda"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
