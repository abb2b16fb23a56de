package router

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/server/http/handlers"
	"github.com/baspana/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Catalog reads,
// reviews and promotions are public; orders, wallet and favorites need a
// session; everything under /api/manage needs a staff role.
func Setup(facade handlers.BaspanaFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware(cfg.AllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	socialHandler := handlers.NewSocialHandler(facade, facade, facade)
	imageHandler := handlers.NewImageHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/complexes", catalogHandler.ListComplexes)
	api.GET("/complexes/:id", catalogHandler.GetComplex)
	api.GET("/complexes/:id/buildings", catalogHandler.ListBuildings)
	api.GET("/complexes/:id/reviews", socialHandler.ListReviews)
	api.GET("/buildings/:id", catalogHandler.GetBuilding)
	api.GET("/apartments", catalogHandler.ListApartments)
	api.GET("/apartments/:id", catalogHandler.GetApartment)
	api.GET("/commercials", catalogHandler.ListCommercialUnits)
	api.GET("/commercials/:id", catalogHandler.GetCommercialUnit)
	api.GET("/promotions", socialHandler.ListPromotions)
	api.GET("/promotions/:id", socialHandler.GetPromotion)
	api.GET("/images", imageHandler.List)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.ListMine)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/wallet", walletHandler.Wallet)
	authed.GET("/wallet/balance", walletHandler.Balance)
	authed.POST("/wallet/transactions", walletHandler.Apply)
	authed.GET("/wallet/transactions", walletHandler.Transactions)
	authed.POST("/reviews", socialHandler.PostReview)
	authed.POST("/favorites", socialHandler.AddFavorite)
	authed.GET("/favorites", socialHandler.ListFavorites)
	authed.DELETE("/favorites/:id", socialHandler.RemoveFavorite)

	manage := api.Group("/manage")
	manage.Use(middleware.AuthRequired(facade))
	manage.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	manage.GET("/orders", orderHandler.List)
	manage.PATCH("/orders/:id", orderHandler.Update)
	manage.DELETE("/orders/:id", orderHandler.Delete)
	manage.POST("/wallets/:id/transactions", walletHandler.ApplyToWallet)
	manage.GET("/wallets/:id/transactions", walletHandler.WalletTransactions)
	manage.PATCH("/wallets/:id/active", walletHandler.SetActive)
	manage.POST("/complexes", catalogHandler.CreateComplex)
	manage.PUT("/complexes/:id", catalogHandler.UpdateComplex)
	manage.DELETE("/complexes/:id", catalogHandler.DeleteComplex)
	manage.POST("/buildings", catalogHandler.CreateBuilding)
	manage.PUT("/buildings/:id", catalogHandler.UpdateBuilding)
	manage.DELETE("/buildings/:id", catalogHandler.DeleteBuilding)
	manage.POST("/apartments", catalogHandler.CreateApartment)
	manage.PUT("/apartments/:id", catalogHandler.UpdateApartment)
	manage.DELETE("/apartments/:id", catalogHandler.DeleteApartment)
	manage.POST("/commercials", catalogHandler.CreateCommercialUnit)
	manage.PUT("/commercials/:id", catalogHandler.UpdateCommercialUnit)
	manage.DELETE("/commercials/:id", catalogHandler.DeleteCommercialUnit)
	manage.DELETE("/reviews/:id", socialHandler.DeleteReview)
	manage.POST("/promotions", socialHandler.CreatePromotion)
	manage.PUT("/promotions/:id", socialHandler.UpdatePromotion)
	manage.DELETE("/promotions/:id", socialHandler.DeletePromotion)
	manage.POST("/images", imageHandler.Upload)
	manage.DELETE("/images/:id", imageHandler.Delete)

	return engine
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
