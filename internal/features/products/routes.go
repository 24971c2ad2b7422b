package products

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the catalog. Reads are public, writes go through auth.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.Get)
		products.POST("", auth, handler.Create)
		products.PUT("/:id", auth, handler.Update)
		products.DELETE("/:id", auth, handler.Delete)
	}
}
