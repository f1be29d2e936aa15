package employee

import (
	"errors"
	"net/http"

	"emp-portal/internal/shared/apperror"
	"emp-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// Add answers HTML fragments: the legacy add-employee form renders the
// response body directly.
func (h *Handler) Add(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("add employee validation failed", zap.Error(err))
		htmlFragment(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.service.Add(c.Request.Context(), req); err != nil {
		h.writeHTMLError(c, err)
		return
	}

	htmlFragment(c, http.StatusOK, "Employee added successfully!")
}

func (h *Handler) GetAll(c *gin.Context) {
	empls, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Warn("list employees failed", zap.Error(err))
		// The directory endpoint reports store failures under an "error"
		// key; the frontend checks for it by that name.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if empls == nil {
		empls = []Employee{}
	}

	response.Data(c, http.StatusOK, empls)
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("delete employee validation failed", zap.Error(err))
		response.Message(c, http.StatusBadRequest, deleteRequiredMessage)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.EmpID, req.ManagerID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee deleted successfully!")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.logger.Warn("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
		)
	}
	response.Error(c, err)
}

func (h *Handler) writeHTMLError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "An error occurred. Please try again later."

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.logger.Warn("add employee failed",
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
		)
		if appErr.HTTPStatus < http.StatusInternalServerError {
			status = appErr.HTTPStatus
			message = appErr.Message
		}
	}

	htmlFragment(c, status, message)
}

func htmlFragment(c *gin.Context, status int, message string) {
	c.Data(status, "text/html; charset=utf-8", []byte("<h1>"+message+"</h1>"))
}
