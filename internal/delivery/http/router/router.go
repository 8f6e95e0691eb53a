// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/categories", r.productHandler.ListCategories)
	e.GET("/categories/:slug", r.productHandler.GetCategory)
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:slug", r.productHandler.GetProduct)

	// Review routes that require authentication
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.productHandler.AddReview)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:itemId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveItem)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.GenerateOrderQR)
		// Status transitions are admin-only; the usecase enforces the role.
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Payment routes that require authentication
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("", r.paymentHandler.CreatePayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments)
		paymentGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentGroup.PATCH("/:id/status", r.paymentHandler.UpdatePaymentStatus)
	}

	// Wishlist routes that require authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.POST("", r.wishlistHandler.AddToWishlist)
		wishlistGroup.GET("", r.wishlistHandler.ListWishlist)
		wishlistGroup.DELETE("/:id", r.wishlistHandler.RemoveFromWishlist)
	}

	// Catalog management routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                   // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin)) // Then, check for the role
	{
		adminGroup.POST("/categories", r.productHandler.CreateCategory)
		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PATCH("/products/:id/status", r.productHandler.UpdateProductStatus)
		adminGroup.POST("/variants", r.productHandler.AddVariant)
		adminGroup.POST("/images", r.productHandler.AddImage)
	}
}
