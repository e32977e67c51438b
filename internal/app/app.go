package app

import (
	"errors"
	"strings"
	"time"

	"orfeo-timesheet/internal/config"
	"orfeo-timesheet/internal/middleware"
	"orfeo-timesheet/internal/orfeo"
	"orfeo-timesheet/internal/schedule"
	"orfeo-timesheet/internal/timesheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires the Orfeo client, the feature services and their routes.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	var client orfeo.Client
	if cfg.Orfeo.DemoMode {
		zap.L().Info("demo mode enabled, serving fixture shifts")
		client = orfeo.NewDemoClient(cfg.EmployeeID, time.Now())
	} else {
		if strings.TrimSpace(cfg.Orfeo.Token) == "" {
			return errors.New("ORFEO_TOKEN is required when demo mode is off")
		}
		client = orfeo.NewHTTPClient(orfeo.ClientConfig{
			BaseURL: cfg.Orfeo.BaseURL,
			Token:   cfg.Orfeo.Token,
			Timeout: cfg.OrfeoTimeout(),
		}, nil)
	}

	view := schedule.NewService(client, cfg.EmployeeID)
	declarations := timesheet.NewService(client, view)

	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())

	schedule.RegisterRoutes(api, schedule.NewHandler(view))
	timesheet.RegisterRoutes(api, timesheet.NewHandler(declarations),
		middleware.RateLimit(rate.Limit(cfg.Declare.RatePerSecond), cfg.Declare.Burst))

	return nil
}
