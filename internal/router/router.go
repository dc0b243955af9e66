// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/codevault/codevault-backend/internal/catalog"
	"github.com/codevault/codevault-backend/internal/config"
	"github.com/codevault/codevault-backend/internal/credentials"
	"github.com/codevault/codevault-backend/internal/handlers"
	"github.com/codevault/codevault-backend/internal/middleware"
	"github.com/codevault/codevault-backend/internal/services"
)

// Initialize wires services and handlers into the one authoritative
// route table.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	creds := credentials.New(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	catalogEngine := catalog.NewEngine(db)

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, creds, cfg)
	productService := services.NewProductService(db, storageService, catalogEngine)
	userService := services.NewUserService(db, catalogEngine)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(creds), authHandler.Me)
			auth.PUT("/update", middleware.AuthRequired(creds), userHandler.UpdateProfile)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired(creds))
			{
				protected.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
				protected.POST("/:id/purchase", productHandler.PurchaseProduct)
				protected.POST("/:id/rate", productHandler.RateProduct)
			}
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired(creds))
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.GET("/products", userHandler.GetUserProducts)
			users.GET("/purchases", userHandler.GetUserPurchases)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r, nil
}
