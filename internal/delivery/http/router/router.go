// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/router/handler"
	"quickbite/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Phone-login routes, reachable without a token
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/request-code", r.params.AuthHandler.RequestCode)
		authGroup.POST("/confirm", r.params.AuthHandler.ConfirmCode)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Device registration for the authenticated caller
	meGroup := e.Group("/me", auth.Authenticate)
	{
		meGroup.PUT("/fcm-token", r.params.AuthHandler.RegisterFCMToken)
	}

	// Catalog reads are open to any authenticated role
	e.GET("/restaurants/:restaurantId/menu", r.params.CatalogHandler.ListMenu, auth.Authenticate)

	// Catalog writes, restaurant operators only (ownership is enforced in
	// the use case; admins pass through there as well)
	menuGroup := e.Group("/menu", auth.Authenticate)
	{
		menuGroup.POST("", r.params.CatalogHandler.CreateMenuItem)
		menuGroup.PATCH("/:itemId", r.params.CatalogHandler.UpdateMenuItem)
		menuGroup.DELETE("/:itemId", r.params.CatalogHandler.DeleteMenuItem)
	}

	// Cart routes, customers only
	cartGroup := e.Group("/cart", auth.Authenticate, auth.RequireRole(entity.RoleCustomer))
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items", r.params.CartHandler.SetQuantity)
		cartGroup.DELETE("/items/:itemId", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
	}

	// Order lifecycle routes; per-role visibility is resolved in the use
	// case from the actor
	orderGroup := e.Group("/orders", auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.PlaceOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/feed", r.params.OrderHandler.Feed)
		orderGroup.POST("/claim", r.params.OrderHandler.ClaimByCode)
		orderGroup.GET("/:orderId", r.params.OrderHandler.GetOrder)
		orderGroup.POST("/:orderId/status", r.params.OrderHandler.Transition)
		orderGroup.POST("/:orderId/claim", r.params.OrderHandler.Claim)
		orderGroup.GET("/:orderId/qr", r.params.OrderHandler.PickupQR)
	}

	// Saved delivery locations, customers only
	locationGroup := e.Group("/locations", auth.Authenticate, auth.RequireRole(entity.RoleCustomer))
	{
		locationGroup.GET("", r.params.LocationHandler.ListLocations)
		locationGroup.GET("/resolve", r.params.LocationHandler.ResolveAddress)
		locationGroup.POST("", r.params.LocationHandler.SaveLocation)
		locationGroup.DELETE("/:locationId", r.params.LocationHandler.DeleteLocation)
	}
}
