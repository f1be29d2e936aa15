package employeeerrors

import (
	"net/http"

	"emp-portal/internal/shared/apperror"
)

var (
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists.",
		http.StatusBadRequest,
	)
	// Add and delete answer with different manager messages; both are
	// precondition gates, so both are 400s.
	ErrUnknownManager = apperror.New(
		apperror.CodeInvalidInput,
		"Manager ID does not exist.",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Manager not found",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
