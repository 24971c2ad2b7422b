package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /register and /token. limit runs before both.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, limit gin.HandlerFunc) {
	router.POST("/register", limit, handler.Register)
	router.POST("/token", limit, handler.Login)
}
