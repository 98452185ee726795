package wbclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
)

const maxErrorBody = 512

type request struct {
	method   string
	endpoint string
	token    string
	body     any
}

type response struct {
	statusCode int
	header     http.Header
	body       []byte
}

// doWithRetry executa a requisição sobrevivendo a 429 e falhas transitórias.
// 429 aguarda o tempo informado pelo servidor; 5xx e erros de transporte usam backoff exponencial.
func (c *WBClient) doWithRetry(ctx context.Context, req request) (*response, error) {
	var payload []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		payload = encoded
	}

	endpointName := endpointPath(req.endpoint)

	for attempt := 0; ; attempt++ {
		resp, err := c.do(ctx, req, payload)

		var wait time.Duration
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt >= c.cfg.MaxRetries {
				return nil, errors.Wrapf(err, "wildberries: falha ao consultar %s", endpointName)
			}
			wait = c.backoff(attempt)

		case resp.statusCode == http.StatusTooManyRequests:
			if attempt >= c.cfg.MaxRetries {
				return nil, errors.Wrapf(wbdomain.ErrRetriesExhausted, "%s após %d tentativas", endpointName, attempt+1)
			}
			wait = retryAfter(resp.header)
			if wait <= 0 {
				wait = c.backoff(attempt)
			}

		case resp.statusCode >= http.StatusInternalServerError:
			if attempt >= c.cfg.MaxRetries {
				return nil, errors.Wrapf(wbdomain.ErrRetriesExhausted, "%s após %d tentativas (status %d)", endpointName, attempt+1, resp.statusCode)
			}
			wait = c.backoff(attempt)

		case resp.statusCode >= 200 && resp.statusCode < 300:
			return resp, nil

		default:
			return nil, &wbdomain.StatusError{
				StatusCode: resp.statusCode,
				Endpoint:   endpointName,
				Body:       truncate(string(resp.body), maxErrorBody),
			}
		}

		logrus.WithFields(logrus.Fields{
			"endpoint": endpointName,
			"attempt":  attempt + 1,
			"wait":     wait.String(),
		}).Warn("wildberries: requisição limitada ou com falha, aguardando nova tentativa")

		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (c *WBClient) do(ctx context.Context, req request, payload []byte) (*response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	httpReq.Header.Set("Authorization", req.token)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return &response{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       data,
	}, nil
}

func (c *WBClient) backoff(attempt int) time.Duration {
	return c.cfg.BaseBackoff * time.Duration(1<<attempt)
}

// retryAfter lê o tempo de espera declarado pelo servidor, em segundos
func retryAfter(header http.Header) time.Duration {
	for _, name := range []string{"X-Ratelimit-Retry", "Retry-After"} {
		value := strings.TrimSpace(header.Get(name))
		if value == "" {
			continue
		}
		if seconds, err := strconv.ParseFloat(value, 64); err == nil && seconds > 0 {
			return time.Duration(seconds * float64(time.Second))
		}
	}
	return 0
}

func endpointPath(endpoint string) string {
	if i := strings.Index(endpoint, "?"); i >= 0 {
		endpoint = endpoint[:i]
	}
	if i := strings.Index(endpoint, "://"); i >= 0 {
		if j := strings.Index(endpoint[i+3:], "/"); j >= 0 {
			return endpoint[i+3+j:]
		}
	}
	return endpoint
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func decode(resp *response, out any) error {
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}
	return nil
}
