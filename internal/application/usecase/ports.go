package usecase

import (
	"context"

	"github.com/jhoicas/courier-api/internal/application/dto"
)

// CatalogCache guarda páginas ya armadas del catálogo de dropshipping.
// Un fallo de caché nunca debe fallar la petición; el caso de uso lo registra y sigue con la DB.
//
// Get devuelve la versión del catálogo que observó y Set guarda bajo esa misma versión:
// si entre ambas llamadas hubo un Invalidate, la página queda inalcanzable.
type CatalogCache interface {
	Get(ctx context.Context, limit, offset int) (page *dto.ArticleListResponse, version int64, ok bool, err error)
	Set(ctx context.Context, version int64, limit, offset int, page *dto.ArticleListResponse) error
	Invalidate(ctx context.Context) error
}

// NoopCatalogCache se usa cuando no hay Redis configurado.
type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(context.Context, int, int) (*dto.ArticleListResponse, int64, bool, error) {
	return nil, 0, false, nil
}
func (NoopCatalogCache) Set(context.Context, int64, int, int, *dto.ArticleListResponse) error {
	return nil
}
func (NoopCatalogCache) Invalidate(context.Context) error { return nil }
