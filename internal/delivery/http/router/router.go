// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	AddressHandler  *handler.AddressHandler
	BrandHandler    *handler.BrandHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	BagHandler      *handler.ShoppingBagHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	addressHandler  *handler.AddressHandler
	brandHandler    *handler.BrandHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	bagHandler      *handler.ShoppingBagHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		addressHandler:  params.AddressHandler,
		brandHandler:    params.BrandHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		bagHandler:      params.BagHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Addresses are always scoped to their owner
	addressGroup := e.Group("/users/:userID/addresses")
	{
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("", r.addressHandler.ListUserAddresses)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.PATCH("/:id/default", r.addressHandler.SetDefaultAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	brandGroup := e.Group("/brands")
	{
		brandGroup.POST("", r.brandHandler.CreateBrand)
		brandGroup.GET("", r.brandHandler.ListBrands)
		brandGroup.GET("/:id", r.brandHandler.GetBrand)
		brandGroup.PUT("/:id", r.brandHandler.UpdateBrand)
		brandGroup.DELETE("/:id", r.brandHandler.DeleteBrand)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productGroup.POST("/:id/images", r.productHandler.UploadProductImage)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)

		// Reviews live under their product
		productGroup.POST("/:id/reviews", r.reviewHandler.CreateReview)
		productGroup.GET("/:id/reviews", r.reviewHandler.GetProductReviews)
	}

	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewGroup.PUT("/:id", r.reviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}
	e.GET("/users/:userID/reviews", r.reviewHandler.GetUserReviews)

	bagGroup := e.Group("/bags")
	{
		bagGroup.POST("", r.bagHandler.CreateBag)
		bagGroup.GET("/:id", r.bagHandler.GetBag)
		bagGroup.POST("/:id/items", r.bagHandler.AddItem)
		bagGroup.PUT("/:id/items/:itemID", r.bagHandler.UpdateItemQuantity)
		bagGroup.DELETE("/:id/items/:itemID", r.bagHandler.RemoveItem)
		bagGroup.DELETE("/:id/items", r.bagHandler.ClearBag)
		bagGroup.PATCH("/:id/status", r.bagHandler.UpdateBagStatus)
		bagGroup.DELETE("/:id", r.bagHandler.DeleteBag)
	}
	e.GET("/users/:userID/bags", r.bagHandler.GetUserBags)
	e.GET("/users/:userID/bags/active", r.bagHandler.GetActiveBag)

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
		orderGroup.GET("/:id/pix", r.orderHandler.GetPixCharge)
	}
	e.GET("/users/:userID/orders", r.orderHandler.GetUserOrders)
}
