package apperror

import "net/http"

var (
	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrStore is the generic answer for any query executor failure.
	// The underlying cause goes to logs only, never to the client.
	ErrStore = New(
		CodeStoreError,
		"Database error",
		http.StatusInternalServerError,
	)
)

// Store classifies a query executor failure without leaking detail.
func Store(err error) *AppError {
	return Wrap(err, CodeStoreError, "Database error", http.StatusInternalServerError)
}
