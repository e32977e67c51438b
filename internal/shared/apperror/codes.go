package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidState    = "INVALID_STATE"

	// Server / upstream errors (5xx)
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeSchemaError   = "SCHEMA_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)
