package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop-backend/internal/shared/middleware"
	"bookshop-backend/internal/shared/response"
	"bookshop-backend/pkg/container"
)

// SetupRouter registers all routes. Public catalog endpoints need no auth;
// cart, wishlist and reviews need a user; the admin group needs the admin
// role on top.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, response.CodeUnhealthy, "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	// Public catalog.
	v1.GET("/categories", c.CategoryHandler.GetAll)
	v1.GET("/categories/:id", c.CategoryHandler.GetByID)
	v1.GET("/books", c.BookHandler.Search)
	v1.GET("/books/featured", c.BookHandler.ListFeatured)
	v1.GET("/books/top-rated", c.BookHandler.ListTopRated)
	v1.GET("/books/latest", c.BookHandler.ListLatest)
	v1.GET("/books/:id", c.BookHandler.GetDetail)
	v1.GET("/books/:id/reviews", c.ReviewHandler.ListByBook)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/me", c.UserHandler.GetProfile)
		authed.GET("/me/reviews", c.ReviewHandler.ListMine)
		authed.GET("/me/recommendations", c.BookHandler.ListRecommended)

		authed.POST("/books/:id/reviews", c.ReviewHandler.Create)

		authed.GET("/cart", c.CartHandler.Get)
		authed.DELETE("/cart", c.CartHandler.Clear)
		authed.POST("/cart/books/:bookId", c.CartHandler.AddBook)
		authed.PUT("/cart/items/:itemId", c.CartHandler.UpdateQuantity)
		authed.DELETE("/cart/items/:itemId", c.CartHandler.RemoveItem)

		authed.GET("/wishlist", c.WishlistHandler.List)
		authed.POST("/wishlist/books/:bookId/toggle", c.WishlistHandler.Toggle)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/stats", c.BookHandler.Stats)

		admin.GET("/books", c.BookHandler.AdminList)
		admin.POST("/books", c.BookHandler.Create)
		admin.GET("/books/:id", c.BookHandler.GetByID)
		admin.PUT("/books/:id", c.BookHandler.Update)
		admin.DELETE("/books/:id", c.BookHandler.Delete)

		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)
	}

	return router
}
