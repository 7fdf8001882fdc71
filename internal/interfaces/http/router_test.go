package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/application/usecase"
	"github.com/jhoicas/courier-api/internal/domain/entity"
	"github.com/jhoicas/courier-api/internal/domain/pricing"
	"github.com/jhoicas/courier-api/internal/domain/repository"
	apphttp "github.com/jhoicas/courier-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria y app de prueba
// ──────────────────────────────────────────────────────────────────────────────

type memArticleRepo struct {
	items map[string]entity.Article
	order []string
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{items: make(map[string]entity.Article)}
}

func (r *memArticleRepo) Create(_ context.Context, a *entity.Article) error {
	r.items[a.ID] = *a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *memArticleRepo) GetByID(_ context.Context, id string) (*entity.Article, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memArticleRepo) GetByStoreAndSKU(_ context.Context, storeID, sku string) (*entity.Article, error) {
	for _, a := range r.items {
		if a.StoreID == storeID && a.SKU == sku {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memArticleRepo) Update(_ context.Context, a *entity.Article) error {
	r.items[a.ID] = *a
	return nil
}

func (r *memArticleRepo) List(_ context.Context, f repository.ArticleFilter) ([]*entity.Article, int, error) {
	out := []*entity.Article{}
	for _, id := range r.order {
		a, ok := r.items[id]
		if !ok || (f.StoreID != "" && a.StoreID != f.StoreID) || (f.DropshippingOnly && !a.DropshippingEnabled) {
			continue
		}
		out = append(out, &a)
	}
	return out, len(out), nil
}

func (r *memArticleRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		PricingUC: usecase.NewPricingUseCase(pricing.Spanish),
		ArticleUC: usecase.NewArticleUseCase(newMemArticleRepo(), nil, pricing.NewValidator(pricing.Spanish), zerolog.Nop()),
		JWTSecret: testJWTSecret,
		JWTIssuer: testIssuer,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth, body string, headers ...string) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

const dropshipBody = `{"sku":"CAJA-1","name":"Caja mediana","cost":50,"minSalePrice":200,"normalPrice":350,"dropshippingEnabled":true,"stock":5}`

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/pricing/validate
// ──────────────────────────────────────────────────────────────────────────────

func TestPricingValidate_Valido(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "cliente", testStoreID),
		`{"dropshippingEnabled": true, "cost": 100, "minSalePrice": 500, "normalPrice": 500}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[pricing.Result](t, resp)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestPricingValidate_ErroresConIdioma(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "operaciones", testStoreID),
		`{"dropshippingEnabled": false, "cost": -10, "minSalePrice": -5, "normalPrice": -1}`,
		"Accept-Language", "en")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[pricing.Result](t, resp)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 3)
	for _, e := range res.Errors {
		assert.Equal(t, pricing.CodeNegativeValue, e.Code)
	}
	assert.Equal(t, "The cost cannot be negative", res.Errors[0].Message)
}

func TestPricingValidate_SinDropshippingEnabled_400(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "admin", testStoreID), `{"cost": 1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.FieldErrorResponse](t, resp)
	assert.Equal(t, "required", body.Fields["dropshippingEnabled"])
}

func TestPricingValidate_NumeroInvalido_400(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "admin", testStoreID),
		`{"dropshippingEnabled": true, "cost": "abc"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPricingValidate_SinToken_401(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", "", `{"dropshippingEnabled": false}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/articles
// ──────────────────────────────────────────────────────────────────────────────

func TestArticles_CrearYObtener(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ArticleResponse](t, resp)
	require.NotNil(t, created.Cost)

	resp = doJSON(t, app, http.MethodGet, "/api/articles/"+created.ID, tokenFor(t, "bodega", testStoreID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]any](t, resp)
	assert.Equal(t, "CAJA-1", got["sku"])
	_, hasCost := got["cost"]
	assert.False(t, hasCost, "bodega no ve el costo")
}

func TestArticles_CrearConPreciosInvalidos_422(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/articles", tokenFor(t, "operaciones", testStoreID),
		`{"sku":"X","name":"X","cost":100,"minSalePrice":600,"normalPrice":500,"dropshippingEnabled":true}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.PricingErrorResponse](t, resp)
	assert.Equal(t, "INVALID_PRICING", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, pricing.CodeInvalidPriceRange, body.Errors[0].Code)
	assert.Equal(t, pricing.FieldMinSalePrice, body.Errors[0].Field)
}

func TestArticles_CrearSinSKU_400(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/articles", tokenFor(t, "admin", testStoreID), `{"name":"X"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.FieldErrorResponse](t, resp)
	assert.Contains(t, body.Fields, "sku")
}

func TestArticles_Duplicado_409(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestArticles_RolSinPermisoDeEscritura_403(t *testing.T) {
	app := buildApp(t)
	for _, role := range []string{"finanzas", "mensajero", "cliente"} {
		resp := doJSON(t, app, http.MethodPost, "/api/articles", tokenFor(t, role, testStoreID), dropshipBody)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "rol %s", role)
	}
}

func TestArticles_ActualizarBorrandoPrecio_422(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	created := decode[dto.ArticleResponse](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/articles/"+created.ID, admin, `{"minSalePrice": null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.PricingErrorResponse](t, resp)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, pricing.CodeRequiredField, body.Errors[0].Code)
	assert.Equal(t, pricing.FieldMinSalePrice, body.Errors[0].Field)

	resp = doJSON(t, app, http.MethodPut, "/api/articles/"+created.ID, admin, `{"normalPrice": 400, "stock": 8}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ArticleResponse](t, resp)
	assert.Equal(t, "400", updated.NormalPrice.String())
	assert.Equal(t, 8, updated.Stock)
}

func TestArticles_OtraTienda_404(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/articles", tokenFor(t, "admin", testStoreID), dropshipBody)
	created := decode[dto.ArticleResponse](t, resp)

	resp = doJSON(t, app, http.MethodGet, "/api/articles/"+created.ID, tokenFor(t, "admin", "otra-tienda"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArticles_ListarYEliminar(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	created := decode[dto.ArticleResponse](t, resp)

	resp = doJSON(t, app, http.MethodGet, "/api/articles?limit=500", tokenFor(t, "finanzas", testStoreID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ArticleListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 100, list.Page.Limit, "limit se acota a 100")
	assert.NotNil(t, list.Items[0].Cost, "finanzas ve el costo")

	resp = doJSON(t, app, http.MethodDelete, "/api/articles/"+created.ID, tokenFor(t, "bodega", testStoreID), "")
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo admin elimina")

	resp = doJSON(t, app, http.MethodDelete, "/api/articles/"+created.ID, admin, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/articles/"+created.ID, admin, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/catalog
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ClienteVeDropshippingSinCosto(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/articles", admin, `{"sku":"LOCAL","name":"Solo local","cost":5}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/catalog", tokenFor(t, "cliente", "tienda-revendedora"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ArticleListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "CAJA-1", list.Items[0].SKU)
	assert.Nil(t, list.Items[0].Cost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de precios y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPricingValidate_PrecioFueraDeRango_400(t *testing.T) {
	app := buildApp(t)
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"exponente enorme", `{"dropshippingEnabled":true,"minSalePrice":"1e2000000000","normalPrice":1}`, "minSalePrice"},
		{"demasiados enteros", `{"dropshippingEnabled":true,"minSalePrice":1,"normalPrice":12345678901234.5}`, "normalPrice"},
		{"tres decimales", `{"dropshippingEnabled":false,"cost":10.005}`, "cost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "cliente", testStoreID), tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[dto.FieldErrorResponse](t, resp)
			assert.Equal(t, "VALIDATION", body.Code)
			assert.Equal(t, "price", body.Fields[tt.field])
		})
	}
}

func TestPricingValidate_CerosSobrantes_Valido(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/pricing/validate", tokenFor(t, "cliente", testStoreID),
		`{"dropshippingEnabled":true,"minSalePrice":"200.500","normalPrice":"999999999999.99"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[pricing.Result](t, resp).Valid)
}

func TestArticles_PrecioFueraDeRango_400(t *testing.T) {
	app := buildApp(t)
	admin := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodPost, "/api/articles", admin,
		`{"sku":"X","name":"X","cost":10.005,"dropshippingEnabled":false}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "price", decode[dto.FieldErrorResponse](t, resp).Fields["cost"])

	resp = doJSON(t, app, http.MethodPost, "/api/articles", admin, dropshipBody)
	created := decode[dto.ArticleResponse](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/articles/"+created.ID, admin, `{"normalPrice":"1e2000000000"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "price", decode[dto.FieldErrorResponse](t, resp).Fields["normalPrice"])
}

func TestArticles_CrearStockNegativo_400(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/articles", tokenFor(t, "admin", testStoreID),
		`{"sku":"X","name":"X","stock":-3}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "min", decode[dto.FieldErrorResponse](t, resp).Fields["stock"])
}

func TestPaginacion_QueryInvalida_400(t *testing.T) {
	app := buildApp(t)
	token := tokenFor(t, "admin", testStoreID)

	resp := doJSON(t, app, http.MethodGet, "/api/articles?offset=-1", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "min", decode[dto.FieldErrorResponse](t, resp).Fields["offset"])

	resp = doJSON(t, app, http.MethodGet, "/api/catalog?limit=-5", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "min", decode[dto.FieldErrorResponse](t, resp).Fields["limit"])

	resp = doJSON(t, app, http.MethodGet, "/api/catalog?limit=abc", token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
