package transport

import (
	"github.com/gin-gonic/gin"

	"menubot/internal/transport/middleware"
)

func InitRoutes(renderHandler *RenderHandler, timeoutSeconds int) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(timeoutSeconds))

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/render", renderHandler.CreateRender)
	router.GET("/render/:id", renderHandler.GetRender)
	router.GET("/render/:id/image", renderHandler.GetRenderImage)
	router.DELETE("/render/:id", renderHandler.DeleteRender)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "menu-render-service",
		})
	})
	return router
}
