package repository

import (
	"context"

	"github.com/jhoicas/courier-api/internal/domain/entity"
)

// ArticleFilter criterios de listado de artículos.
// StoreID vacío lista todas las tiendas (solo lo usa el catálogo de dropshipping).
type ArticleFilter struct {
	StoreID          string
	DropshippingOnly bool
	Limit            int
	Offset           int
}

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	GetByStoreAndSKU(ctx context.Context, storeID, sku string) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, int, error)
	Delete(ctx context.Context, id string) error
}
