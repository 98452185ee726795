package wbclient

import (
	"context"
	"net/url"
	"time"

	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

const acceptanceReportPath = "/api/v1/acceptance_report"

// GetAcceptanceReport consulta a aceitação paga; o marketplace registra a aceitação um dia
// antes do lançamento no relatório de realização, por isso o período é deslocado.
func (c *WBClient) GetAcceptanceReport(ctx context.Context, token string, period domain.Period) ([]wbdomain.AcceptanceRow, error) {
	query := url.Values{}
	query.Set("dateFrom", period.Start.AddDate(0, 0, -1).Format(time.DateOnly))
	query.Set("dateTo", period.End.AddDate(0, 0, -1).Format(time.DateOnly))

	rows := make([]wbdomain.AcceptanceRow, 0)
	if err := c.runTask(ctx, token, acceptanceReportPath, query, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
