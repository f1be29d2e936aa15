package payscaleerrors

import (
	"net/http"

	"emp-portal/internal/shared/apperror"
)

var ErrSalarySlipNotFound = apperror.New(
	apperror.CodeNotFound,
	"Salary slip not found",
	http.StatusNotFound,
)
