package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/internal/usecases/tracking"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
	"github.com/vfg2006/settlement-report-api/pkg/log"
	"github.com/vfg2006/settlement-report-api/pkg/middleware"
	"github.com/vfg2006/settlement-report-api/pkg/secret"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// createReportRequest aceita uma semana ("DD.MM.YYYY-DD.MM.YYYY") ou datas explícitas
type createReportRequest struct {
	Token       string  `json:"token"`
	StoreName   string  `json:"store_name"`
	StoreID     int64   `json:"store_id"`
	Week        string  `json:"week,omitempty"`
	PeriodStart string  `json:"period_start,omitempty"`
	PeriodEnd   string  `json:"period_end,omitempty"`
	DocNumbers  []int64 `json:"doc_numbers,omitempty"`
}

func (req createReportRequest) period() (domain.Period, error) {
	if req.Week != "" {
		return utils.ParseWeekLabel(req.Week)
	}

	start, err := utils.ParseDate(req.PeriodStart)
	if err != nil {
		return domain.Period{}, fmt.Errorf("period_start: %w", err)
	}
	end, err := utils.ParseDate(req.PeriodEnd)
	if err != nil {
		return domain.Period{}, fmt.Errorf("period_end: %w", err)
	}
	if start.IsZero() || end.IsZero() || end.Before(*start) {
		return domain.Period{}, reporting.ErrInvalidPeriod
	}

	return domain.Period{Start: *start, End: *end}, nil
}

type jobResponse struct {
	tracking.Job
	DownloadURL string `json:"download_url,omitempty"`
}

func newJobResponse(job tracking.Job) jobResponse {
	resp := jobResponse{Job: job}
	if job.Status == tracking.JobDone {
		resp.DownloadURL = fmt.Sprintf("/v1/reports/jobs/%s/download", job.ID)
	}
	return resp
}

// CreateReport valida o pedido e inicia a geração em segundo plano
func CreateReport(service reporting.Reporter, board *tracking.Board, cipher *secret.TokenCipher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if body.Token == "" || body.StoreID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "token e store_id são obrigatórios", nil)
			return
		}

		period, err := body.period()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido", err.Error())
			return
		}

		token, err := cipher.Decrypt(body.Token)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("reports: erro ao decifrar token do marketplace")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Token do marketplace inválido", nil)
			return
		}

		req := domain.ReportRequest{
			Token:      token,
			StoreName:  body.StoreName,
			UserID:     claims.UserID,
			StoreID:    body.StoreID,
			Period:     period,
			DocNumbers: body.DocNumbers,
		}

		jobID, err := board.Start(r.Context(), claims.UserID, body.StoreID, func(ctx context.Context, display reporting.Display) (string, error) {
			return service.Generate(ctx, display, req)
		})
		if err != nil {
			if errors.Is(err, tracking.ErrJobInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrReportInProgress, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar geração", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":      claims.UserID,
			"store_id":     body.StoreID,
			"report_start": period.Start.Format(time.DateOnly),
			"report_end":   period.End.Format(time.DateOnly),
		}).Info("reports: geração agendada")

		job, _ := board.Get(jobID)
		w.Header().Set("Location", fmt.Sprintf("/v1/reports/jobs/%s", jobID))
		if err := utils.WriteJSON(w, http.StatusAccepted, newJobResponse(job)); err != nil {
			logger.WithError(err).Error("reports: erro ao serializar resposta")
		}
	})
}

// GetReportJob retorna o estado e o progresso de um job do usuário
func GetReportJob(board *tracking.Board) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job, ok := userJob(w, r, board)
		if !ok {
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, newJobResponse(job)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro ao serializar resposta")
		}
	})
}

// DownloadReportJob entrega a planilha de um job concluído
func DownloadReportJob(board *tracking.Board) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job, ok := userJob(w, r, board)
		if !ok {
			return
		}

		switch job.Status {
		case tracking.JobRunning:
			apiErrors.WriteError(w, apiErrors.ErrReportNotReady, tracking.ErrJobNotReady.Error(), job.Progress)
			return
		case tracking.JobFailed:
			apiErrors.WriteError(w, job.ErrorCode, job.Error, nil)
			return
		}

		serveSpreadsheet(w, r, job.Path)
	})
}

// ListReports lista o histórico do usuário, opcionalmente filtrado por store_id
func ListReports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var storeID int64
		if raw := r.URL.Query().Get("store_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "store_id inválido", nil)
				return
			}
			storeID = parsed
		}

		entries, err := service.History(r.Context(), claims.UserID, storeID)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reports: erro ao listar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico", nil)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, entries); err != nil {
			logger.WithError(err).Error("reports: erro ao serializar resposta")
		}
	})
}

// DownloadReport entrega uma planilha do histórico
func DownloadReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		reportID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "id inválido", nil)
			return
		}

		entry, err := service.GetReport(r.Context(), claims.UserID, reportID)
		if err != nil {
			if errors.Is(err, repository.ErrReportNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithField("error", err.Error()).Error("reports: erro ao carregar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar relatório", nil)
			return
		}

		serveSpreadsheet(w, r, entry.Path)
	})
}

func userJob(w http.ResponseWriter, r *http.Request, board *tracking.Board) (tracking.Job, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return tracking.Job{}, false
	}

	jobID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	job, err := board.GetForUser(jobID, claims.UserID)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)
		return tracking.Job{}, false
	}

	return job, true
}

func serveSpreadsheet(w http.ResponseWriter, r *http.Request, path string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	http.ServeFile(w, r, path)
}
