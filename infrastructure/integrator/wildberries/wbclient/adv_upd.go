package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
)

const advUpdPath = "/adv/v1/upd"

// GetAdDocuments lista os documentos de cobrança de publicidade no intervalo
func (c *WBClient) GetAdDocuments(ctx context.Context, token string, from, to time.Time) ([]wbdomain.AdDocument, error) {
	endpoint, err := url.Parse(c.cfg.AdvertURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, advUpdPath)

	query := endpoint.Query()
	query.Set("from", from.Format(time.DateOnly))
	query.Set("to", to.Format(time.DateOnly))
	endpoint.RawQuery = query.Encode()

	resp, err := c.doWithRetry(ctx, request{method: http.MethodGet, endpoint: endpoint.String(), token: token})
	if err != nil {
		return nil, err
	}

	documents := make([]wbdomain.AdDocument, 0)
	if err := decode(resp, &documents); err != nil {
		return nil, err
	}

	return documents, nil
}
