package apperror

import "net/http"

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUpstream = New(
		CodeUpstreamError,
		"The scheduling service could not be reached",
		http.StatusBadGateway,
	)
)
