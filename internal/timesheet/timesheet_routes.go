package timesheet

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, declareLimiter gin.HandlerFunc) {
	shifts := r.Group("/shifts")
	{
		shifts.GET("/:id/timesheet", h.Form)
		shifts.POST("/:id/declare", declareLimiter, h.Declare)
	}
}
