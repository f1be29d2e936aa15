package autherrors

import (
	"net/http"

	"emp-portal/internal/shared/apperror"
)

var ErrInvalidRole = apperror.New(
	apperror.CodeInvalidRole,
	"Invalid Role Selected",
	http.StatusBadRequest,
)
