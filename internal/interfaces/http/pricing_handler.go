package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/application/usecase"
)

// PricingHandler pre-validación de precios para el formulario de artículos.
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar precios de un artículo
// @Description  Aplica la misma regla que el guardado. Siempre responde 200; "valid" indica el resultado.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header  string                      false  "Idioma de los mensajes (es, en)"
// @Param        body             body    dto.ValidatePricingRequest  true   "Campos de precio"
// @Success      200  {object}  dto.ValidatePricingResponse
// @Failure      400  {object}  dto.FieldErrorResponse
// @Router       /api/pricing/validate [post]
func (h *PricingHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidatePricingRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Validate(in, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
