package leaveerrors

import (
	"net/http"

	"emp-portal/internal/shared/apperror"
)

var (
	// ErrUnknownManager is a precondition gate, not a lookup of the
	// mutation's own target, so it stays a 400.
	ErrUnknownManager = apperror.New(
		apperror.CodeInvalidInput,
		"Manager ID does not exist.",
		http.StatusBadRequest,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found.",
		http.StatusNotFound,
	)
)
