package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository"
	"github.com/vfg2006/settlement-report-api/internal/api/handler/router"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/settlement-report-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/settlement-report-api/internal/usecases/tracking"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
	"github.com/vfg2006/settlement-report-api/pkg/middleware"
	"github.com/vfg2006/settlement-report-api/pkg/secret"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 42

type fixture struct {
	reporter *mocks.MockReporter
	auth     *authmocks.MockAuthenticator
	board    *tracking.Board
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cipher, err := secret.NewTokenCipher("")
	require.NoError(t, err)

	f := &fixture{
		reporter: mocks.NewMockReporter(ctrl),
		auth:     authmocks.NewMockAuthenticator(ctrl),
		board:    tracking.NewBoard(),
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Reports(f.reporter, f.board, cipher)...),
		router.WithRoutes(Periods(f.reporter)...),
		router.WithRoutes(CronJobs(CronJobServices{}, f.auth)...),
	)
	f.handler = rt

	return f
}

func (f *fixture) do(method, target string, body []byte, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if userID != 0 {
		claims := &domain.Claims{UserID: userID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func waitJob(t *testing.T, board *tracking.Board, id string) tracking.Job {
	t.Helper()

	var job tracking.Job
	require.Eventually(t, func() bool {
		var err error
		job, err = board.Get(id)
		return err == nil && job.Finished()
	}, time.Second, 5*time.Millisecond)

	return job
}

func TestHealthcheck(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthcheck", nil, 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCreateReport(t *testing.T) {
	f := newFixture(t)
	reportPath := filepath.Join(t.TempDir(), "report2024-03-04.xlsx")
	require.NoError(t, os.WriteFile(reportPath, []byte("xlsx"), 0o644))

	f.reporter.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, display reporting.Display, req domain.ReportRequest) (string, error) {
			if req.Token != "wb-token" || req.UserID != testUserID || req.StoreID != 7 {
				return "", errors.New("unexpected request")
			}
			if !req.Period.Start.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) || req.Period.End.Day() != 10 {
				return "", errors.New("unexpected period")
			}
			return reportPath, nil
		})

	body := []byte(`{"token":"wb-token","store_name":"Loja","store_id":7,"week":"04.03.2024-10.03.2024"}`)
	rec := f.do(http.MethodPost, "/v1/reports", body, testUserID)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/v1/reports/jobs/"+resp.ID, rec.Header().Get("Location"))

	job := waitJob(t, f.board, resp.ID)
	assert.Equal(t, tracking.JobDone, job.Status)

	status := f.do(http.MethodGet, "/v1/reports/jobs/"+resp.ID, nil, testUserID)
	assert.Equal(t, http.StatusOK, status.Code)
	assert.Contains(t, status.Body.String(), `"download_url":"/v1/reports/jobs/`+resp.ID+`/download"`)

	download := f.do(http.MethodGet, "/v1/reports/jobs/"+resp.ID+"/download", nil, testUserID)
	assert.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, xlsxContentType, download.Header().Get("Content-Type"))
	assert.Equal(t, "xlsx", download.Body.String())
}

func TestCreateReport_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		userID   int64
		wantCode string
	}{
		{
			name:     "sem usuário",
			body:     `{"token":"t","store_id":7,"week":"04.03.2024-10.03.2024"}`,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "json inválido",
			body:     `{`,
			userID:   testUserID,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "sem token",
			body:     `{"store_id":7,"week":"04.03.2024-10.03.2024"}`,
			userID:   testUserID,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "semana invertida",
			body:     `{"token":"t","store_id":7,"week":"10.03.2024-04.03.2024"}`,
			userID:   testUserID,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "datas explícitas invertidas",
			body:     `{"token":"t","store_id":7,"period_start":"2024-03-10","period_end":"2024-03-04"}`,
			userID:   testUserID,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "sem período",
			body:     `{"token":"t","store_id":7}`,
			userID:   testUserID,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "token cifrado sem chave",
			body:     `{"token":"enc:AAAA","store_id":7,"week":"04.03.2024-10.03.2024"}`,
			userID:   testUserID,
			wantCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/v1/reports", []byte(tt.body), tt.userID)

			assert.Equal(t, apiErrors.StatusFor(tt.wantCode), rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			assert.Zero(t, f.board.Len())
		})
	}
}

func TestCreateReport_InProgress(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	defer close(release)

	_, err := f.board.Start(context.Background(), testUserID, 7, func(ctx context.Context, display reporting.Display) (string, error) {
		<-release
		return "", nil
	})
	require.NoError(t, err)

	body := []byte(`{"token":"wb-token","store_id":7,"week":"04.03.2024-10.03.2024"}`)
	rec := f.do(http.MethodPost, "/v1/reports", body, testUserID)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrReportInProgress, decodeError(t, rec).Code)
}

func TestReportJob_NotReadyAndForeignUser(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	defer close(release)

	id, err := f.board.Start(context.Background(), testUserID, 7, func(ctx context.Context, display reporting.Display) (string, error) {
		<-release
		return "", nil
	})
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/v1/reports/jobs/"+id+"/download", nil, testUserID)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNotReady, decodeError(t, rec).Code)

	rec = f.do(http.MethodGet, "/v1/reports/jobs/"+id, nil, 99)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNotFound, decodeError(t, rec).Code)
}

func TestReportJob_FailedDownload(t *testing.T) {
	f := newFixture(t)

	id, err := f.board.Start(context.Background(), testUserID, 7, func(ctx context.Context, display reporting.Display) (string, error) {
		return "", reporting.ErrNoData
	})
	require.NoError(t, err)
	waitJob(t, f.board, id)

	rec := f.do(http.MethodGet, "/v1/reports/jobs/"+id+"/download", nil, testUserID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNoData, decodeError(t, rec).Code)
}

func TestListReports(t *testing.T) {
	f := newFixture(t)
	entries := []domain.ReportEntry{{ID: 1, UserID: testUserID, StoreID: 7, Path: "a.xlsx"}}

	f.reporter.EXPECT().History(gomock.Any(), testUserID, int64(7)).Return(entries, nil)

	rec := f.do(http.MethodGet, "/v1/reports?store_id=7", nil, testUserID)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.ReportEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	rec = f.do(http.MethodGet, "/v1/reports?store_id=abc", nil, testUserID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadReport(t *testing.T) {
	f := newFixture(t)
	reportPath := filepath.Join(t.TempDir(), "report2024-03-04.xlsx")
	require.NoError(t, os.WriteFile(reportPath, []byte("xlsx"), 0o644))

	f.reporter.EXPECT().GetReport(gomock.Any(), testUserID, int64(5)).Return(&domain.ReportEntry{ID: 5, Path: reportPath}, nil)
	f.reporter.EXPECT().GetReport(gomock.Any(), testUserID, int64(6)).Return(nil, repository.ErrReportNotFound)

	rec := f.do(http.MethodGet, "/v1/reports/history/5/download", nil, testUserID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report2024-03-04.xlsx")

	rec = f.do(http.MethodGet, "/v1/reports/history/6/download", nil, testUserID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNotFound, decodeError(t, rec).Code)

	rec = f.do(http.MethodGet, "/v1/reports/history/x/download", nil, testUserID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPeriods(t *testing.T) {
	f := newFixture(t)
	week := domain.Week{
		Start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	f.reporter.EXPECT().RecentWeeks(defaultWeekCount).Return([]domain.Week{week})
	f.reporter.EXPECT().Quarters().Return([]domain.Quarter{{Year: 2024, Quarter: 1, Label: "1 квартал 2024"}})
	f.reporter.EXPECT().QuarterWeeks(2024, 1).Return([]domain.Week{week}, nil)
	f.reporter.EXPECT().QuarterWeeks(2024, 5).Return(nil, reporting.ErrInvalidPeriod)

	rec := f.do(http.MethodGet, "/v1/periods/weeks", nil, testUserID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"04.03.2024-10.03.2024"`)
	assert.Contains(t, rec.Body.String(), `"start":"2024-03-04"`)

	rec = f.do(http.MethodGet, "/v1/periods/weeks?count=0", nil, testUserID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/v1/periods/quarters", nil, testUserID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quarter":1`)

	rec = f.do(http.MethodGet, "/v1/periods/quarters/2024/1/weeks", nil, testUserID)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/v1/periods/quarters/2024/5/weeks", nil, testUserID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)

	rec = f.do(http.MethodGet, "/v1/periods/quarters/ano/1/weeks", nil, testUserID)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCronJobs_AdminKey(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().ValidateAdminKey("").Return(authenticating.ErrInsufficientPrivilege)
	f.auth.EXPECT().ValidateAdminKey("segredo").Return(nil).Times(2)

	rec := f.do(http.MethodGet, "/v1/cron/status", nil, 0)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set(middleware.AdminKeyHeader, "segredo")
	status := httptest.NewRecorder()
	f.handler.ServeHTTP(status, req)
	assert.Equal(t, http.StatusOK, status.Code)
	assert.JSONEq(t, `{}`, status.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/cron/run/desconhecido", nil)
	req.Header.Set(middleware.AdminKeyHeader, "segredo")
	run := httptest.NewRecorder()
	f.handler.ServeHTTP(run, req)
	assert.Equal(t, http.StatusBadRequest, run.Code)
}

func TestRouter_NotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inexistente", nil, testUserID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNotFound, decodeError(t, rec).Code)
}
