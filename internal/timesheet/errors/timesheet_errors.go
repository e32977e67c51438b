package timesheeterrors

import (
	"net/http"

	"orfeo-timesheet/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found in the current week",
		http.StatusNotFound,
	)
	ErrNotDeclarable = apperror.New(
		apperror.CodeInvalidState,
		"hours can only be declared for a started, still unvalidated shift",
		http.StatusConflict,
	)
	ErrDeclareInFlight = apperror.New(
		apperror.CodeConflict,
		"a declaration is already being submitted",
		http.StatusConflict,
	)
	ErrDeclareFailed = apperror.New(
		apperror.CodeUpstreamError,
		"declaring hours failed, your entries were kept so you can retry",
		http.StatusBadGateway,
	)
	ErrNoteNotSaved = apperror.New(
		apperror.CodeUpstreamError,
		"hours were saved but the note could not be attached, retry to add it",
		http.StatusBadGateway,
	)
	ErrBadUpstreamRecord = apperror.New(
		apperror.CodeSchemaError,
		"the scheduling service returned an unreadable record",
		http.StatusBadGateway,
	)
)
