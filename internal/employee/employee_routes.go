package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes keeps the legacy root-level paths. postMiddleware is
// applied to the add-employee mutation only (idempotency, when configured).
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	r.GET("/employees", handler.GetAll)
	r.DELETE("/delete-employee", handler.Delete)

	add := append([]gin.HandlerFunc{}, postMiddleware...)
	add = append(add, handler.Add)
	r.POST("/add-employee", add...)
}
