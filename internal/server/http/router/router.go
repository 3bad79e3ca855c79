package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/snacksprint/storefront/internal/server/http/handlers"
	"github.com/snacksprint/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)

	api := engine.Group("/api")
	api.GET("/restaurants", catalogHandler.List)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/cart", cartHandler.Get)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PATCH("/cart/items/:id", cartHandler.UpdateItem)
	authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	authed.POST("/cart/promo", cartHandler.ApplyPromo)
	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/latest", orderHandler.Latest)
	authed.GET("/favorites", profileHandler.Favorites)
	authed.POST("/favorites", profileHandler.ToggleFavorite)
	authed.GET("/addresses", profileHandler.Addresses)
	authed.POST("/addresses", profileHandler.SaveAddress)
	authed.PATCH("/addresses/:id/default", profileHandler.SetDefaultAddress)
	authed.POST("/chat", chatHandler.Ask)
	authed.GET("/chat/history", chatHandler.History)

	return engine
}
