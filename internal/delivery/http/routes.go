package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/homepantry/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(requestid.New())
	router.Use(RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
	}))
	router.Use(RateLimit(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/receipts/review", handler.ReviewReceipt)
		v1.POST("/substitutions", handler.SuggestSubstitutes)

		shoppingList := v1.Group("/shopping-list")
		{
			shoppingList.GET("", handler.ListShoppingList)
			shoppingList.POST("/sync", handler.SyncShoppingList)
			shoppingList.POST("/items", handler.AddShoppingListItem)
			shoppingList.POST("/items/:id/dismiss", handler.DismissShoppingListItem)
			shoppingList.POST("/items/:id/check", handler.CheckShoppingListItem)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", handler.ListInventory)
			inventory.POST("", handler.SaveInventoryItem)
			inventory.DELETE("/:id", handler.DeleteInventoryItem)
		}
	}

	return router
}
