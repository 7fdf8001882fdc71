package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/domain"
	"github.com/jhoicas/courier-api/internal/domain/entity"
	"github.com/jhoicas/courier-api/internal/domain/pricing"
	"github.com/jhoicas/courier-api/internal/domain/repository"
)

var errPriceOutOfRange = fmt.Errorf("%w: precio fuera de rango (máximo 12 enteros y 2 decimales)", domain.ErrInvalidInput)

// ArticleUseCase casos de uso del catálogo de artículos.
// Es el límite de escritura confiable: toda creación o actualización pasa por pricing
// antes de persistir, aunque el formulario ya lo haya validado.
type ArticleUseCase struct {
	repo      repository.ArticleRepository
	cache     CatalogCache
	validator pricing.Validator
	log       zerolog.Logger
	now       func() time.Time
}

// NewArticleUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewArticleUseCase(repo repository.ArticleRepository, cache CatalogCache, validator pricing.Validator, log zerolog.Logger) *ArticleUseCase {
	if cache == nil {
		cache = NoopCatalogCache{}
	}
	return &ArticleUseCase{
		repo:      repo,
		cache:     cache,
		validator: validator,
		log:       log.With().Str("component", "articles").Logger(),
		now:       time.Now,
	}
}

// Create crea un artículo en la tienda del usuario.
// Devuelve domain.ErrDuplicate si el SKU existe y *pricing.ResultError si los precios son inválidos.
func (uc *ArticleUseCase) Create(ctx context.Context, storeID, role string, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	if storeID == "" || sku == "" || strings.TrimSpace(in.Name) == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByStoreAndSKU(ctx, storeID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.now()
	article := &entity.Article{
		ID:                  uuid.New().String(),
		StoreID:             storeID,
		SKU:                 sku,
		Name:                strings.TrimSpace(in.Name),
		Description:         in.Description,
		Cost:                in.Cost,
		MinSalePrice:        in.MinSalePrice,
		NormalPrice:         in.NormalPrice,
		DropshippingEnabled: in.DropshippingEnabled,
		Stock:               in.Stock,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !article.PricesInRange() {
		return nil, errPriceOutOfRange
	}
	if err := uc.checkPricing(article, "create"); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	uc.invalidateCatalog(ctx)
	return toArticleResponse(article, entity.CanViewCost(role)), nil
}

// GetByID obtiene un artículo de la tienda. Un artículo de otra tienda se reporta como no encontrado.
func (uc *ArticleUseCase) GetByID(ctx context.Context, storeID, role, id string) (*dto.ArticleResponse, error) {
	article, err := uc.getOwned(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	return toArticleResponse(article, entity.CanViewCost(role)), nil
}

// Update aplica los cambios parciales y valida los precios del artículo resultante,
// no solo los campos enviados: borrar normalPrice de un artículo con dropshipping se rechaza.
func (uc *ArticleUseCase) Update(ctx context.Context, storeID, role, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.getOwned(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		article.Name = name
	}
	if in.Description != nil {
		article.Description = *in.Description
	}
	article.Cost = in.Cost.Apply(article.Cost)
	article.MinSalePrice = in.MinSalePrice.Apply(article.MinSalePrice)
	article.NormalPrice = in.NormalPrice.Apply(article.NormalPrice)
	if in.DropshippingEnabled != nil {
		article.DropshippingEnabled = *in.DropshippingEnabled
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		article.Stock = *in.Stock
	}
	if !article.PricesInRange() {
		return nil, errPriceOutOfRange
	}
	if err := uc.checkPricing(article, "update"); err != nil {
		return nil, err
	}
	article.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	uc.invalidateCatalog(ctx)
	return toArticleResponse(article, entity.CanViewCost(role)), nil
}

// List lista artículos de la tienda con paginación.
func (uc *ArticleUseCase) List(ctx context.Context, storeID, role string, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.Normalize()
	list, total, err := uc.repo.List(ctx, repository.ArticleFilter{StoreID: storeID, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	return toArticleList(list, total, page, entity.CanViewCost(role)), nil
}

// Delete elimina un artículo de la tienda.
func (uc *ArticleUseCase) Delete(ctx context.Context, storeID, id string) error {
	if _, err := uc.getOwned(ctx, storeID, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateCatalog(ctx)
	return nil
}

// Catalog lista los artículos con dropshipping de todas las tiendas, sin costo.
func (uc *ArticleUseCase) Catalog(ctx context.Context, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	page.Normalize()
	cached, version, ok, cacheErr := uc.cache.Get(ctx, page.Limit, page.Offset)
	if cacheErr != nil {
		uc.log.Warn().Err(cacheErr).Msg("lectura de caché del catálogo")
	}
	if ok {
		return cached, nil
	}
	list, total, err := uc.repo.List(ctx, repository.ArticleFilter{DropshippingOnly: true, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	out := toArticleList(list, total, page, false)
	// Sin versión leída no se sabe bajo qué clave guardar.
	if cacheErr != nil {
		return out, nil
	}
	if err := uc.cache.Set(ctx, version, page.Limit, page.Offset, out); err != nil {
		uc.log.Warn().Err(err).Msg("escritura de caché del catálogo")
	}
	return out, nil
}

func (uc *ArticleUseCase) getOwned(ctx context.Context, storeID, id string) (*entity.Article, error) {
	if storeID == "" || id == "" {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil || article.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

func (uc *ArticleUseCase) checkPricing(article *entity.Article, op string) error {
	res := uc.validator.Validate(article.PricingInput())
	if res.Valid {
		return nil
	}
	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		codes = append(codes, string(e.Code)+":"+string(e.Field))
	}
	uc.log.Warn().
		Str("op", op).
		Str("article_id", article.ID).
		Str("store_id", article.StoreID).
		Strs("violations", codes).
		Msg("escritura rechazada por validación de precios")
	return res.Err()
}

func (uc *ArticleUseCase) invalidateCatalog(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("invalidar caché del catálogo")
	}
}

// IsPricingError informa si err proviene del validador de precios y devuelve el resultado.
func IsPricingError(err error) (pricing.Result, bool) {
	var re *pricing.ResultError
	if errors.As(err, &re) {
		return re.Result, true
	}
	return pricing.Result{}, false
}

func toArticleList(list []*entity.Article, total int, page dto.PageRequest, withCost bool) *dto.ArticleListResponse {
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a, withCost))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
}

func toArticleResponse(a *entity.Article, withCost bool) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	out := &dto.ArticleResponse{
		ID:                  a.ID,
		StoreID:             a.StoreID,
		SKU:                 a.SKU,
		Name:                a.Name,
		Description:         a.Description,
		MinSalePrice:        a.MinSalePrice,
		NormalPrice:         a.NormalPrice,
		DropshippingEnabled: a.DropshippingEnabled,
		Stock:               a.Stock,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if withCost {
		out.Cost = a.Cost
	}
	return out
}
