package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/server/http/handlers"
	"github.com/shopmart/shopmart/internal/server/http/middleware"
	"github.com/shopmart/shopmart/internal/usecase"
)

// HealthChecker reports storage availability for the health endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures the gin router with handlers, middleware, and the
// policy gates per endpoint family.
func Setup(facade handlers.ShopFacade, health HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Identify(facade))

	userHandler := handlers.NewUserHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	itemHandler := handlers.NewOrderItemHandler(facade)

	user := engine.Group("/user")
	user.POST("/signup", userHandler.Signup)
	user.POST("/login", userHandler.Login)
	user.POST("/refresh", userHandler.Refresh)
	user.GET("/me", middleware.Authorize(usecase.ResourceProfile, usecase.ActionRead), userHandler.Me)
	user.PUT("/me", middleware.Authorize(usecase.ResourceProfile, usecase.ActionUpdate), userHandler.UpdateMe)
	user.PATCH("/me", middleware.Authorize(usecase.ResourceProfile, usecase.ActionUpdate), userHandler.UpdateMe)

	products := engine.Group("/products")
	products.GET("", middleware.Authorize(usecase.ResourceProduct, usecase.ActionList), productHandler.List)
	products.GET("/:id", middleware.Authorize(usecase.ResourceProduct, usecase.ActionRead), productHandler.Get)
	products.POST("", middleware.Authorize(usecase.ResourceProduct, usecase.ActionCreate))
	products.PUT("/:id", middleware.Authorize(usecase.ResourceProduct, usecase.ActionUpdate))
	products.PATCH("/:id", middleware.Authorize(usecase.ResourceProduct, usecase.ActionUpdate))
	products.DELETE("/:id", middleware.Authorize(usecase.ResourceProduct, usecase.ActionDelete))

	private := engine.Group("/privateproducts")
	private.GET("", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionList), productHandler.ListOwned)
	private.POST("", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionCreate), productHandler.Create)
	private.GET("/:id", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionRead), productHandler.GetOwned)
	private.PUT("/:id", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionUpdate), productHandler.Update)
	private.PATCH("/:id", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionUpdate), productHandler.Update)
	private.DELETE("/:id", middleware.Authorize(usecase.ResourcePrivateProduct, usecase.ActionDelete), productHandler.Delete)

	reviews := engine.Group("/reviews")
	reviews.GET("", middleware.Authorize(usecase.ResourceReview, usecase.ActionList), reviewHandler.List)
	reviews.POST("", middleware.Authorize(usecase.ResourceReview, usecase.ActionCreate), reviewHandler.Create)
	reviews.GET("/:id", middleware.Authorize(usecase.ResourceReview, usecase.ActionRead), reviewHandler.Get)
	reviews.PUT("/:id", middleware.Authorize(usecase.ResourceReview, usecase.ActionUpdate), reviewHandler.Update)
	reviews.PATCH("/:id", middleware.Authorize(usecase.ResourceReview, usecase.ActionUpdate), reviewHandler.Update)
	reviews.DELETE("/:id", middleware.Authorize(usecase.ResourceReview, usecase.ActionDelete), reviewHandler.Delete)

	orders := engine.Group("/orders")
	orders.GET("", middleware.Authorize(usecase.ResourceOrder, usecase.ActionList), orderHandler.List)
	orders.POST("", middleware.Authorize(usecase.ResourceOrder, usecase.ActionCreate), orderHandler.Create)
	orders.GET("/:id", middleware.Authorize(usecase.ResourceOrder, usecase.ActionRead), orderHandler.Get)
	orders.PUT("/:id", middleware.Authorize(usecase.ResourceOrder, usecase.ActionUpdate))
	orders.PATCH("/:id", middleware.Authorize(usecase.ResourceOrder, usecase.ActionUpdate))
	orders.DELETE("/:id", middleware.Authorize(usecase.ResourceOrder, usecase.ActionDelete))

	orderAdmin := engine.Group("/orderprivate")
	orderAdmin.GET("", middleware.Authorize(usecase.ResourceOrderAdmin, usecase.ActionList), orderHandler.ListAll)
	orderAdmin.GET("/:id", middleware.Authorize(usecase.ResourceOrderAdmin, usecase.ActionRead), orderHandler.GetAny)
	orderAdmin.PUT("/:id", middleware.Authorize(usecase.ResourceOrderAdmin, usecase.ActionUpdate), orderHandler.Update)
	orderAdmin.PATCH("/:id", middleware.Authorize(usecase.ResourceOrderAdmin, usecase.ActionUpdate), orderHandler.Update)
	orderAdmin.DELETE("/:id", middleware.Authorize(usecase.ResourceOrderAdmin, usecase.ActionDelete), orderHandler.Delete)

	items := engine.Group("/orderitems")
	items.GET("", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionList), itemHandler.List)
	items.POST("", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionCreate), itemHandler.Create)
	items.GET("/:id", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionRead), itemHandler.Get)
	items.PUT("/:id", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionUpdate))
	items.PATCH("/:id", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionUpdate))
	items.DELETE("/:id", middleware.Authorize(usecase.ResourceOrderItem, usecase.ActionDelete))

	itemAdmin := engine.Group("/orderitemprivate")
	itemAdmin.GET("", middleware.Authorize(usecase.ResourceOrderItemAdmin, usecase.ActionList), itemHandler.ListAll)
	itemAdmin.GET("/:id", middleware.Authorize(usecase.ResourceOrderItemAdmin, usecase.ActionRead), itemHandler.GetAny)
	itemAdmin.PUT("/:id", middleware.Authorize(usecase.ResourceOrderItemAdmin, usecase.ActionUpdate), itemHandler.Update)
	itemAdmin.PATCH("/:id", middleware.Authorize(usecase.ResourceOrderItemAdmin, usecase.ActionUpdate), itemHandler.Update)
	itemAdmin.DELETE("/:id", middleware.Authorize(usecase.ResourceOrderItemAdmin, usecase.ActionDelete), itemHandler.Delete)

	engine.POST("/process-order", middleware.Authorize(usecase.ResourceProcessOrder, usecase.ActionProcess), orderHandler.Process)

	engine.GET("/healthz", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	return engine
}
