// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CategoryHandler   *handler.CategoryHandler
	ProductHandler    *handler.ProductHandler
	CartHandler       *handler.CartHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	categoryHandler   *handler.CategoryHandler
	productHandler    *handler.ProductHandler
	cartHandler       *handler.CartHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		categoryHandler:   params.CategoryHandler,
		productHandler:    params.ProductHandler,
		cartHandler:       params.CartHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every other surface needs a bearer credential; unauthenticated
	// requests are rejected before any backend call.
	authed := e.Group("", r.sessionMiddleware.Authenticate)
	{
		authed.GET("/session", handler.GetSession)
	}

	// Shared catalog state: canonical lists, filter, search overlay
	catalogGroup := authed.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.GetCatalog)
		catalogGroup.POST("/refresh", r.catalogHandler.Refresh)
		catalogGroup.POST("/category", r.catalogHandler.SelectCategory)
		catalogGroup.GET("/search", r.catalogHandler.Search)
		catalogGroup.DELETE("/search", r.catalogHandler.ClearSearch)
	}

	// Cart routes
	cartGroup := authed.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/refresh", r.cartHandler.Refresh)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Manager routes require the admin role on top of authentication
	managerGroup := authed.Group("/manager", r.sessionMiddleware.RequireRole(entity.RoleAdmin))
	{
		managerGroup.GET("/category-form", r.categoryHandler.GetForm)
		managerGroup.PUT("/category-form", r.categoryHandler.UpdateDraft)
		managerGroup.POST("/category-form/submit", r.categoryHandler.Submit)
		managerGroup.POST("/category-form/reset", r.categoryHandler.Reset)
		managerGroup.POST("/categories/:id/edit", r.categoryHandler.Edit)
		managerGroup.DELETE("/categories/:id", r.categoryHandler.Delete)

		managerGroup.GET("/product-form", r.productHandler.GetForm)
		managerGroup.PUT("/product-form", r.productHandler.UpdateDraft)
		managerGroup.POST("/product-form/submit", r.productHandler.Submit)
		managerGroup.POST("/product-form/reset", r.productHandler.Reset)
		managerGroup.POST("/products/:id/edit", r.productHandler.Edit)
		managerGroup.DELETE("/products/:id", r.productHandler.Delete)
	}
}
