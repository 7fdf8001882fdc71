package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticleRequest entrada para crear un artículo.
type CreateArticleRequest struct {
	SKU                 string           `json:"sku" validate:"required,min=1,max=100"`
	Name                string           `json:"name" validate:"required,min=1,max=200"`
	Description         string           `json:"description" validate:"max=2000"`
	Cost                *decimal.Decimal `json:"cost" validate:"omitempty,price"`
	MinSalePrice        *decimal.Decimal `json:"minSalePrice" validate:"omitempty,price"`
	NormalPrice         *decimal.Decimal `json:"normalPrice" validate:"omitempty,price"`
	DropshippingEnabled bool             `json:"dropshippingEnabled"`
	Stock               int              `json:"stock" validate:"min=0"`
}

// UpdateArticleRequest entrada para actualizar un artículo (parcial).
// Los precios aceptan null explícito para borrarlos.
type UpdateArticleRequest struct {
	Name                *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Description         *string         `json:"description" validate:"omitempty,max=2000"`
	Cost                NullableDecimal `json:"cost"`
	MinSalePrice        NullableDecimal `json:"minSalePrice"`
	NormalPrice         NullableDecimal `json:"normalPrice"`
	DropshippingEnabled *bool           `json:"dropshippingEnabled"`
	Stock               *int            `json:"stock" validate:"omitempty,min=0"`
}

// ArticleResponse salida de un artículo. Cost se omite para roles sin permiso.
type ArticleResponse struct {
	ID                  string           `json:"id"`
	StoreID             string           `json:"storeId"`
	SKU                 string           `json:"sku"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Cost                *decimal.Decimal `json:"cost,omitempty"`
	MinSalePrice        *decimal.Decimal `json:"minSalePrice"`
	NormalPrice         *decimal.Decimal `json:"normalPrice"`
	DropshippingEnabled bool             `json:"dropshippingEnabled"`
	Stock               int              `json:"stock"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// ArticleListResponse lista paginada de artículos.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
