package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	r.GET("/view-leave-requests", handler.List)
	r.PUT("/update-leave-request", handler.UpdateStatus)

	submit := append([]gin.HandlerFunc{}, postMiddleware...)
	submit = append(submit, handler.Submit)
	r.POST("/submit-leave-request", submit...)
}
