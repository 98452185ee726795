package wbclient

import (
	"context"
	"net/url"
	"time"

	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

const paidStoragePath = "/api/v1/paid_storage"

func (c *WBClient) GetPaidStorage(ctx context.Context, token string, period domain.Period) ([]wbdomain.PaidStorageRow, error) {
	query := url.Values{}
	query.Set("dateFrom", period.Start.Format(time.DateOnly))
	query.Set("dateTo", period.End.Format(time.DateOnly))

	rows := make([]wbdomain.PaidStorageRow, 0)
	if err := c.runTask(ctx, token, paidStoragePath, query, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
