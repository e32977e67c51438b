package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sched := r.Group("/schedule")
	{
		sched.GET("", h.Get)
		sched.POST("/reload", h.Reload)
		sched.POST("/next", h.NextWeek)
		sched.POST("/previous", h.PreviousWeek)
		sched.POST("/today", h.CurrentWeek)
	}
}
