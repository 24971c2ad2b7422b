package routines

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /routines (all authenticated) and the public stats
// endpoint.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	routines := router.Group("/routines")
	routines.Use(auth)
	{
		routines.POST("", handler.Create)
		routines.GET("/:user_email", handler.List)
		routines.PUT("/:id/add_step", handler.AddStep)
		routines.PUT("/:id/remove_step", handler.RemoveStep)
	}

	router.GET("/stats/top_brands", handler.TopBrands)
}
