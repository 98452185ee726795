package handler

import (
	"net/http"

	"github.com/vfg2006/settlement-report-api/internal/api/handler/router"
	"github.com/vfg2006/settlement-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/internal/usecases/tracking"
	"github.com/vfg2006/settlement-report-api/pkg/middleware"
	"github.com/vfg2006/settlement-report-api/pkg/secret"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter, board *tracking.Board, cipher *secret.TokenCipher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     CreateReport(service, board, cipher),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/reports/history/:id/download",
			Method:      http.MethodGet,
			Handler:     DownloadReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/reports/jobs/:id",
			Method:      http.MethodGet,
			Handler:     GetReportJob(board),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/reports/jobs/:id/download",
			Method:      http.MethodGet,
			Handler:     DownloadReportJob(board),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
	}
}

func Periods(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods/weeks",
			Method:      http.MethodGet,
			Handler:     ListRecentWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/periods/quarters",
			Method:      http.MethodGet,
			Handler:     ListQuarters(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
		{
			Path:        "/v1/periods/quarters/:year/:quarter/weeks",
			Method:      http.MethodGet,
			Handler:     ListQuarterWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UserOnly()},
		},
	}
}

func CronJobs(services CronJobServices, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authService)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authService)},
		},
	}
}
