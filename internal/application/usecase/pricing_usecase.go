package usecase

import (
	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/domain/entity"
	"github.com/jhoicas/courier-api/internal/domain/pricing"
)

// PricingUseCase expone la regla de precios al formulario antes de enviar.
// No guarda estado: solo el idioma por defecto de los mensajes.
type PricingUseCase struct {
	defaultMessages pricing.Messages
}

// NewPricingUseCase construye el caso de uso con el idioma por defecto.
func NewPricingUseCase(defaultMessages pricing.Messages) *PricingUseCase {
	return &PricingUseCase{defaultMessages: defaultMessages}
}

// Validate ejecuta pricing.Validate con los mensajes del idioma pedido (Accept-Language).
// Devuelve domain.ErrInvalidInput si algún precio no cabe en NUMERIC(14,2); la regla no se evalúa.
func (uc *PricingUseCase) Validate(in dto.ValidatePricingRequest, acceptLanguage string) (dto.ValidatePricingResponse, error) {
	input := in.ToInput()
	candidate := entity.Article{Cost: input.Cost, MinSalePrice: input.MinSalePrice, NormalPrice: input.NormalPrice}
	if !candidate.PricesInRange() {
		return dto.ValidatePricingResponse{}, errPriceOutOfRange
	}
	msgs := pricing.MessagesForAcceptLanguage(acceptLanguage, uc.defaultMessages)
	return pricing.NewValidator(msgs).Validate(input), nil
}
