package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
	"github.com/vfg2006/settlement-report-api/pkg/log"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

const (
	defaultWeekCount = 6
	maxWeekCount     = 52
)

type weekResponse struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func newWeekResponses(weeks []domain.Week) []weekResponse {
	resp := make([]weekResponse, 0, len(weeks))
	for _, week := range weeks {
		resp = append(resp, weekResponse{
			Label: week.String(),
			Start: week.Start.Format("2006-01-02"),
			End:   week.End.Format("2006-01-02"),
		})
	}
	return resp
}

// ListRecentWeeks retorna as últimas semanas fechadas (?count=, padrão 6)
func ListRecentWeeks(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := defaultWeekCount
		if raw := r.URL.Query().Get("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxWeekCount {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "count deve estar entre 1 e 52", nil)
				return
			}
			count = parsed
		}

		if err := utils.WriteJSON(w, http.StatusOK, newWeekResponses(service.RecentWeeks(count))); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("periods: erro ao serializar resposta")
		}
	})
}

func ListQuarters(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := utils.WriteJSON(w, http.StatusOK, service.Quarters()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("periods: erro ao serializar resposta")
		}
	})
}

func ListQuarterWeeks(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		year, errYear := strconv.Atoi(params.ByName("year"))
		quarter, errQuarter := strconv.Atoi(params.ByName("quarter"))
		if errYear != nil || errQuarter != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ano e trimestre devem ser numéricos", nil)
			return
		}

		weeks, err := service.QuarterWeeks(year, quarter)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidPeriod) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar semanas", nil)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, newWeekResponses(weeks)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("periods: erro ao serializar resposta")
		}
	})
}
