package wbclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetReportDetail(ctx context.Context, token string, period domain.Period) ([]wbdomain.ReportDetailRow, error)
	GetCards(ctx context.Context, token string) ([]wbdomain.Card, error)
	GetPaidStorage(ctx context.Context, token string, period domain.Period) ([]wbdomain.PaidStorageRow, error)
	GetAcceptanceReport(ctx context.Context, token string, period domain.Period) ([]wbdomain.AcceptanceRow, error)
	GetAdDocuments(ctx context.Context, token string, from, to time.Time) ([]wbdomain.AdDocument, error)
	GetAdFullStats(ctx context.Context, token string, requests []wbdomain.FullStatsRequest) ([]wbdomain.FullStatsCampaign, error)
}

type WBClient struct {
	httpClient *http.Client
	cfg        config.Wildberries
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient recebe o *http.Client compartilhado do processo; ele não é fechado aqui.
func NewClient(httpClient *http.Client, cfg config.Wildberries) Client {
	return newWBClient(httpClient, cfg)
}

func newWBClient(httpClient *http.Client, cfg config.Wildberries) *WBClient {
	return &WBClient{
		httpClient: httpClient,
		cfg:        cfg,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
