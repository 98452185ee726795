package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

const reportDetailPath = "/api/v5/supplier/reportDetailByPeriod"

// GetReportDetail baixa o relatório de realização inteiro, página por página pelo cursor rrdid
func (c *WBClient) GetReportDetail(ctx context.Context, token string, period domain.Period) ([]wbdomain.ReportDetailRow, error) {
	endpoint, err := url.Parse(c.cfg.StatisticsURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, reportDetailPath)

	limit := c.cfg.LedgerPageSize
	rows := make([]wbdomain.ReportDetailRow, 0)
	var rrdID int64

	for page := 1; ; page++ {
		query := endpoint.Query()
		query.Set("dateFrom", period.Start.Format(time.DateOnly)+"T00:00:00")
		query.Set("dateTo", period.End.Format(time.DateOnly)+"T23:59:59")
		query.Set("rrdid", strconv.FormatInt(rrdID, 10))
		query.Set("limit", strconv.Itoa(limit))
		endpoint.RawQuery = query.Encode()

		resp, err := c.doWithRetry(ctx, request{method: http.MethodGet, endpoint: endpoint.String(), token: token})
		if err != nil {
			return nil, err
		}

		if resp.statusCode == http.StatusNoContent {
			break
		}

		var chunk []wbdomain.ReportDetailRow
		if err := decode(resp, &chunk); err != nil {
			return nil, err
		}
		if len(chunk) == 0 {
			break
		}

		rows = append(rows, chunk...)

		logrus.WithFields(logrus.Fields{
			"page":  page,
			"rows":  len(chunk),
			"total": len(rows),
		}).Debug("wildberries: página do relatório de realização recebida")

		if len(chunk) < limit {
			break
		}

		next := chunk[len(chunk)-1].RrdID
		if next == 0 || next == rrdID {
			break
		}
		rrdID = next

		wait := retryAfter(resp.header)
		if wait <= 0 {
			wait = c.cfg.LedgerPageDelay
		}
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	logrus.WithField("rows", len(rows)).Info("wildberries: relatório de realização carregado")
	return rows, nil
}
