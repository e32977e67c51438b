package timesheet

import (
	"errors"
	"net/http"
	"strconv"

	"orfeo-timesheet/internal/shared/apperror"
	"orfeo-timesheet/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		err = apperror.New(apperror.CodeValidationError,
			"the declaration has invalid fields", http.StatusBadRequest).
			WithDetails(validationErr.Fields)
	}
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func shiftID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.Wrap(err, apperror.CodeInvalidInput,
			"shift id must be an integer", http.StatusBadRequest))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return 0, false
	}
	return id, true
}

func (h *Handler) Form(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	resp, err := h.service.Form(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Declare(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	var req DeclareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	updated, err := h.service.Declare(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}
