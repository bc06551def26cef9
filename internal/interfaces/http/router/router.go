// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shopx/backend/internal/infrastructure/auth"
	"github.com/shopx/backend/internal/infrastructure/logger"
	"github.com/shopx/backend/internal/interfaces/http/handler"
	"github.com/shopx/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies carries everything the route table needs
type Dependencies struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist

	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler

	CORS           middleware.CORSConfig
	Tracing        middleware.TracingConfig
	MaxBodySize    int64
	SwaggerEnabled bool
}

// Setup registers all routes and middleware on the engine.
//
// Public surface: health, swagger (optional), auth register/login, and
// catalog reads. Everything else requires a bearer token; catalog
// writes and the all-orders view additionally require the admin role.
func Setup(engine *gin.Engine, deps Dependencies) {
	engine.Use(middleware.RequestID())
	if deps.Tracing.Enabled {
		engine.Use(middleware.TracingWithConfig(deps.Tracing))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(deps.CORS))
	if deps.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(deps.MaxBodySize))
	}
	if deps.Logger != nil {
		engine.Use(logger.GinMiddleware(deps.Logger))
		engine.Use(logger.Recovery(deps.Logger))
	} else {
		engine.Use(gin.Recovery())
	}

	engine.GET("/health", deps.Health.Check)
	if deps.SwaggerEnabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     deps.JWTService,
		TokenBlacklist: deps.TokenBlacklist,
		Logger:         deps.Logger,
	})
	requireAdmin := middleware.RequireAdmin()

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.POST("/logout", requireAuth, deps.Auth.Logout)
		authGroup.GET("/me", requireAuth, deps.Auth.GetCurrentUser)
	}

	products := api.Group("/products")
	{
		products.GET("", deps.Product.List)
		products.GET("/:id", deps.Product.Get)
		products.POST("", requireAuth, requireAdmin, deps.Product.Create)
		products.PUT("/:id", requireAuth, requireAdmin, deps.Product.Update)
		products.DELETE("/:id", requireAuth, requireAdmin, deps.Product.Delete)
		products.POST("/:id/image", requireAuth, requireAdmin, deps.Product.UploadImage)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", deps.Category.List)
		categories.GET("/:id", deps.Category.Get)
		categories.POST("", requireAuth, requireAdmin, deps.Category.Create)
		categories.PUT("/:id", requireAuth, requireAdmin, deps.Category.Update)
		categories.DELETE("/:id", requireAuth, requireAdmin, deps.Category.Delete)
	}

	cart := api.Group("/cart", requireAuth)
	{
		cart.POST("", deps.Cart.AddItem)
		cart.GET("", deps.Cart.GetCart)
		cart.POST("/place-order", deps.Cart.PlaceOrder)
		cart.GET("/order-history", deps.Cart.OrderHistory)
		cart.GET("/order-history/:id/receipt", deps.Cart.Receipt)
		cart.GET("/all-order-history", requireAdmin, deps.Cart.AllOrderHistory)
		cart.DELETE("/:productId", deps.Cart.RemoveItem)
	}
}
