package routes

import (
	"lru-cache-api/internal/handlers"
	"lru-cache-api/internal/middleware"
	"lru-cache-api/internal/realtime"
	"lru-cache-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the public and protected endpoints around svc.
func SetupRoutes(svc *service.RecordService, hub *realtime.Hub) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for browser clients)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "LRU cache API is running",
		})
	})

	api := ginRouter.Group("/api")
	{
		api.POST("/login", handlers.Login)
	}

	cacheHandler := handlers.NewCacheHandler(svc)

	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.GET("/records/:key", cacheHandler.GetRecord)
		protectedRoutes.PUT("/records/:key", cacheHandler.PutRecord)
		protectedRoutes.DELETE("/records/:key", cacheHandler.DeleteRecord)

		protectedRoutes.GET("/cache", cacheHandler.Snapshot)
		protectedRoutes.DELETE("/cache", cacheHandler.Purge)
		protectedRoutes.GET("/cache/keys", cacheHandler.Keys)
		protectedRoutes.GET("/cache/stats", cacheHandler.Stats)

		protectedRoutes.GET("/ws", handlers.WebSocketHandler(hub))
	}

	return ginRouter
}
