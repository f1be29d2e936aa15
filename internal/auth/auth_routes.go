package auth

import (
	"emp-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/", handler.LoginPage)
	r.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
}
