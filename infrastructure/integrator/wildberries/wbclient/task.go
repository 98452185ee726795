package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
)

// runTask cria a tarefa assíncrona, aguarda o status "done" e baixa o resultado em out
func (c *WBClient) runTask(ctx context.Context, token, reportPath string, query url.Values, out any) error {
	base, err := url.Parse(c.cfg.AnalyticsURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	base.Path = path.Join(base.Path, reportPath)

	createURL := *base
	createURL.RawQuery = query.Encode()

	resp, err := c.doWithRetry(ctx, request{method: http.MethodGet, endpoint: createURL.String(), token: token})
	if err != nil {
		return err
	}

	var created wbdomain.TaskCreated
	if err := decode(resp, &created); err != nil {
		return err
	}
	if created.Data.TaskID == "" {
		return fmt.Errorf("wildberries: %s não retornou taskId", reportPath)
	}

	taskID := created.Data.TaskID
	logger := logrus.WithFields(logrus.Fields{"report": reportPath, "task_id": taskID})
	logger.Info("wildberries: tarefa criada, aguardando processamento")

	statusURL := *base
	statusURL.Path = path.Join(base.Path, "tasks", taskID, "status")

	for {
		if err := c.sleep(ctx, c.cfg.TaskPollInterval); err != nil {
			return err
		}

		resp, err := c.doWithRetry(ctx, request{method: http.MethodGet, endpoint: statusURL.String(), token: token})
		if err != nil {
			return err
		}

		var status wbdomain.TaskStatus
		if err := decode(resp, &status); err != nil {
			return err
		}

		if status.IsDone() {
			break
		}
		if status.IsFailed() {
			return fmt.Errorf("wildberries: tarefa %s terminou com status %q", taskID, status.Data.Status)
		}

		logger.WithField("status", status.Data.Status).Debug("wildberries: tarefa ainda em processamento")
	}

	downloadURL := *base
	downloadURL.Path = path.Join(base.Path, "tasks", taskID, "download")

	resp, err = c.doWithRetry(ctx, request{method: http.MethodGet, endpoint: downloadURL.String(), token: token})
	if err != nil {
		return err
	}

	return decode(resp, out)
}
