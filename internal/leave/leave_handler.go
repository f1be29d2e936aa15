package leave

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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("submit leave validation failed", zap.Error(err))
		response.Message(c, http.StatusBadRequest, submitRequiredMessage)
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Leave request submitted successfully!")
}

func (h *Handler) List(c *gin.Context) {
	managerID := c.Query("ManagerId")
	if managerID == "" {
		response.Message(c, http.StatusBadRequest, "ManagerId is required.")
		return
	}

	details, err := h.service.ListAll(c.Request.Context(), managerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if details == nil {
		details = []LeaveRequestDetail{}
	}

	response.Data(c, http.StatusOK, details)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateLeaveStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("update leave validation failed", zap.Error(err))
		response.Message(c, http.StatusBadRequest, updateStatusRequiredMessage)
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), req.ManagerID, req.RequestID.String(), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Leave request updated successfully!")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.logger.Warn("leave request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
		)
	}
	response.Error(c, err)
}
