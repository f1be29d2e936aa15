package response

import (
	"errors"
	"net/http"

	"emp-portal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// The wire shapes here deliberately match the legacy frontend contract:
// mutations answer {"message": ...}, reads answer the raw record or array.

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error maps a service error onto the documented status and message. Any
// error that is not an AppError is treated as a store failure and answered
// with a generic 500 so no driver detail leaks to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Message(c, appErr.HTTPStatus, appErr.Message)
		return
	}
	Message(c, http.StatusInternalServerError, "Database error")
}
