package auth

import (
	"errors"
	"net/http"
	"path/filepath"

	"emp-portal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the login flow. Responses are HTML: the login form posts
// directly and renders whatever comes back, so success serves the dashboard
// page and failures serve fragments.
type Handler struct {
	service Service
	pages   string
	logger  *zap.Logger
}

func NewHandler(service Service, pagesDir string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, pages: pagesDir, logger: l}
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.File(filepath.Join(h.pages, "login.html"))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("login validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		htmlFragment(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.UserID, req.Password, req.Role)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	switch result.Outcome {
	case OutcomeUserNotFound:
		htmlFragment(c, http.StatusOK, "Login failed. User ID not found.")
	case OutcomeWrongPassword:
		htmlFragment(c, http.StatusOK, "Login failed. Incorrect password.")
	default:
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "access_token",
			Value:    result.AccessToken,
			Path:     "/",
			MaxAge:   86400,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.File(filepath.Join(h.pages, result.Dashboard))
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "An error occurred. Please try again later."

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.logger.Warn("login failed",
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
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
