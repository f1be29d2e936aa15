package payscale

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
	l := zap.L().Named("payscale.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payscale.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetSlip(c *gin.Context) {
	empID := c.Query("EmpId")
	if empID == "" {
		response.Message(c, http.StatusBadRequest, "EmpId is required")
		return
	}

	slip, err := h.service.GetSlip(c.Request.Context(), empID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			h.logger.Warn("salary slip request failed",
				zap.String("emp_id", empID),
				zap.Int("status", appErr.HTTPStatus),
				zap.String("code", appErr.Code),
			)
		}
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusOK, slip)
}
