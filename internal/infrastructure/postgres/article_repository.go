package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/courier-api/internal/domain"
	"github.com/jhoicas/courier-api/internal/domain/entity"
	"github.com/jhoicas/courier-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

const articleColumns = `id, store_id, sku, name, description, cost, min_sale_price, normal_price,
	dropshipping_enabled, stock, created_at, updated_at`

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
// Los precios son NUMERIC NULL; NULL se mapea a puntero nil.
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.StoreID, a.SKU, a.Name, a.Description, a.Cost, a.MinSalePrice, a.NormalPrice,
		a.DropshippingEnabled, a.Stock, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	row := r.q.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// GetByStoreAndSKU obtiene un artículo por tienda y SKU. Devuelve (nil, nil) si no existe.
func (r *ArticleRepo) GetByStoreAndSKU(ctx context.Context, storeID, sku string) (*entity.Article, error) {
	row := r.q.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE store_id = $1 AND sku = $2`, storeID, sku)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article by sku: %w", err)
	}
	return a, nil
}

// Update actualiza los campos editables de un artículo existente.
func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	query := `
		UPDATE articles SET name = $2, description = $3, cost = $4, min_sale_price = $5, normal_price = $6,
			dropshipping_enabled = $7, stock = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.Description, a.Cost, a.MinSalePrice, a.NormalPrice,
		a.DropshippingEnabled, a.Stock, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos según el filtro, más recientes primero, y devuelve el total sin paginar.
func (r *ArticleRepo) List(ctx context.Context, f repository.ArticleFilter) ([]*entity.Article, int, error) {
	where, args := articleWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM articles`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM articles%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		articleColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Article, 0, f.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func articleWhere(f repository.ArticleFilter) (string, []any) {
	var conds []string
	var args []any
	if f.StoreID != "" {
		args = append(args, f.StoreID)
		conds = append(conds, fmt.Sprintf("store_id = $%d", len(args)))
	}
	if f.DropshippingOnly {
		conds = append(conds, "dropshipping_enabled")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(
		&a.ID, &a.StoreID, &a.SKU, &a.Name, &a.Description, &a.Cost, &a.MinSalePrice, &a.NormalPrice,
		&a.DropshippingEnabled, &a.Stock, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
