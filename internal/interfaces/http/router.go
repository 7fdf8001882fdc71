package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/courier-api/internal/application/usecase"
	"github.com/jhoicas/courier-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC *usecase.PricingUseCase
	ArticleUC *usecase.ArticleUseCase
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con rol)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole())

	// Pre-validación de precios (cualquier rol)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	protected.Post("/pricing/validate", pricingHandler.Validate)

	articleHandler := NewArticleHandler(deps.ArticleUC)

	// Catálogo de dropshipping (cualquier rol)
	protected.Get("/catalog", articleHandler.Catalog)

	// Articles
	writers := RequireRole(entity.RoleAdmin, entity.RoleOperaciones, entity.RoleBodega)
	readers := RequireRole(entity.RoleAdmin, entity.RoleOperaciones, entity.RoleBodega, entity.RoleFinanzas)
	articles := protected.Group("/articles")
	articles.Post("/", writers, articleHandler.Create)
	articles.Get("/", readers, articleHandler.List)
	articles.Get("/:id", readers, articleHandler.GetByID)
	articles.Put("/:id", writers, articleHandler.Update)
	articles.Delete("/:id", RequireRole(entity.RoleAdmin), articleHandler.Delete)
}
