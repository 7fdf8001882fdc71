package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/courier-api/internal/domain/repository"
)

func TestArticleWhere(t *testing.T) {
	where, args := articleWhere(repository.ArticleFilter{})
	assert.Equal(t, "", where)
	assert.Empty(t, args)

	where, args = articleWhere(repository.ArticleFilter{StoreID: "s1"})
	assert.Equal(t, " WHERE store_id = $1", where)
	assert.Equal(t, []any{"s1"}, args)

	where, args = articleWhere(repository.ArticleFilter{StoreID: "s1", DropshippingOnly: true})
	assert.Equal(t, " WHERE store_id = $1 AND dropshipping_enabled", where)
	assert.Equal(t, []any{"s1"}, args)

	where, args = articleWhere(repository.ArticleFilter{DropshippingOnly: true})
	assert.Equal(t, " WHERE dropshipping_enabled", where)
	assert.Empty(t, args)
}

func TestMigrationsEmbebidas(t *testing.T) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)

	body, err := migrationsFS.ReadFile(migrationsDir + "/00001_create_articles.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "-- +goose Down")
}
