package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
)

const advFullStatsPath = "/adv/v2/fullstats"

// GetAdFullStats busca o detalhamento diário por artigo das campanhas informadas
func (c *WBClient) GetAdFullStats(ctx context.Context, token string, requests []wbdomain.FullStatsRequest) ([]wbdomain.FullStatsCampaign, error) {
	if len(requests) == 0 {
		return []wbdomain.FullStatsCampaign{}, nil
	}

	endpoint, err := url.Parse(c.cfg.AdvertURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, advFullStatsPath)

	resp, err := c.doWithRetry(ctx, request{
		method:   http.MethodPost,
		endpoint: endpoint.String(),
		token:    token,
		body:     requests,
	})
	if err != nil {
		return nil, err
	}

	campaigns := make([]wbdomain.FullStatsCampaign, 0)
	if err := decode(resp, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}
