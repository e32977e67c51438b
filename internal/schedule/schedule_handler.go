package schedule

import (
	"net/http"

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

func (h *Handler) writeSnapshot(c *gin.Context, snap Snapshot) {
	resp := mapSnapshot(snap, h.service.Now())
	if snap.Phase == PhaseError {
		httpErr := apperror.ToHTTP(apperror.ErrUpstream.WithDetails(resp))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	h.writeSnapshot(c, h.service.Snapshot(c.Request.Context()))
}

func (h *Handler) Reload(c *gin.Context) {
	h.writeSnapshot(c, h.service.Reload(c.Request.Context()))
}

func (h *Handler) NextWeek(c *gin.Context) {
	h.writeSnapshot(c, h.service.NextWeek(c.Request.Context()))
}

func (h *Handler) PreviousWeek(c *gin.Context) {
	h.writeSnapshot(c, h.service.PreviousWeek(c.Request.Context()))
}

func (h *Handler) CurrentWeek(c *gin.Context) {
	h.writeSnapshot(c, h.service.CurrentWeek(c.Request.Context()))
}
