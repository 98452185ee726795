package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"golang.org/x/time/rate"
)

const cardsListPath = "/content/v2/get/cards/list"

// GetCards percorre o catálogo de cartões pelo cursor (updatedAt, nmID)
func (c *WBClient) GetCards(ctx context.Context, token string) ([]wbdomain.Card, error) {
	endpoint, err := url.Parse(c.cfg.ContentURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, cardsListPath)

	limit := c.cfg.CardsPageSize
	payload := wbdomain.CardsListRequest{
		Settings: wbdomain.CardsSettings{
			Cursor: wbdomain.CardsCursor{Limit: limit},
			Filter: wbdomain.CardsFilter{WithPhoto: -1},
		},
	}

	pacer := rate.NewLimiter(rate.Inf, 1)
	if c.cfg.CardsPageDelay > 0 {
		pacer = rate.NewLimiter(rate.Every(c.cfg.CardsPageDelay), 1)
	}

	cards := make([]wbdomain.Card, 0)
	for {
		if err := pacer.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.doWithRetry(ctx, request{
			method:   http.MethodPost,
			endpoint: endpoint.String(),
			token:    token,
			body:     payload,
		})
		if err != nil {
			return nil, err
		}

		var page wbdomain.CardsListResponse
		if err := decode(resp, &page); err != nil {
			return nil, err
		}

		cards = append(cards, page.Cards...)

		if !page.HasNext(limit) {
			break
		}

		payload.Settings.Cursor = wbdomain.CardsCursor{
			Limit:     limit,
			UpdatedAt: page.Cursor.UpdatedAt,
			NmID:      page.Cursor.NmID,
		}
	}

	logrus.WithField("cards", len(cards)).Info("wildberries: catálogo de cartões carregado")
	return cards, nil
}
