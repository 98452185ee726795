package reporting

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository"
	"github.com/vfg2006/settlement-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/pkg/log"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

const progressTitle = "Генерация отчета"

// Reporter gera relatórios de realização e expõe o histórico e o calendário de períodos
type Reporter interface {
	Generate(ctx context.Context, display Display, req domain.ReportRequest) (string, error)
	History(ctx context.Context, userID, storeID int64) ([]domain.ReportEntry, error)
	GetReport(ctx context.Context, userID, reportID int64) (*domain.ReportEntry, error)
	RecentWeeks(count int) []domain.Week
	Quarters() []domain.Quarter
	QuarterWeeks(year, quarter int) ([]domain.Week, error)
}

type Service struct {
	cfg        *config.Config
	integrator wildberries.Integrator
	emitter    spreadsheet.Emitter
	reportRepo repository.ReportRepository
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator wildberries.Integrator,
	emitter spreadsheet.Emitter,
	reportRepo repository.ReportRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		emitter:    emitter,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Generate executa o pipeline completo sob o Runner e devolve o caminho da planilha
func (s *Service) Generate(ctx context.Context, display Display, req domain.ReportRequest) (string, error) {
	if req.Period.Start.IsZero() || req.Period.End.Before(req.Period.Start) {
		return "", NewReportError(ErrInvalidPeriod, "", req.Period.String())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":      req.UserID,
		"store_id":     req.StoreID,
		"report_start": req.Period.Start.Format(time.DateOnly),
		"report_end":   req.Period.End.Format(time.DateOnly),
	})
	logger.Info("reporting: geração iniciada")

	runner := NewRunner(display, s.cfg.Report.TickInterval, s.cfg.Report.MaxTicks)
	path, err := runner.Run(ctx, progressTitle, func(ctx context.Context, progress *ProgressCell) (string, error) {
		return s.pipeline(ctx, progress, req)
	})
	if err != nil {
		logger.WithField("error", err.Error()).Error("reporting: falha na geração")
		return "", err
	}

	_, err = s.reportRepo.Save(context.WithoutCancel(ctx), &domain.ReportEntry{
		UserID:      req.UserID,
		StoreID:     req.StoreID,
		PeriodStart: req.Period.Start,
		PeriodEnd:   req.Period.End,
		Path:        path,
	})
	if err != nil {
		// a planilha já existe, o histórico é secundário
		logger.WithField("error", err.Error()).Warn("reporting: erro ao registrar histórico do relatório")
	}

	logger.WithField("report_path", path).Info("reporting: geração concluída")

	return path, nil
}

type fetched struct {
	ledger     []domain.LedgerRecord
	directory  domain.Directory
	campaigns  []domain.AdCampaign
	storage    domain.StorageCosts
	acceptance domain.AcceptanceCosts
}

func (s *Service) pipeline(ctx context.Context, progress *ProgressCell, req domain.ReportRequest) (string, error) {
	progress.Set(StageFetch)

	data, err := s.fetchAll(ctx, req)
	if err != nil {
		return "", err
	}

	progress.Set(StageProcess)

	rows, err := Aggregate(AggregationInput{
		Ledger:     data.ledger,
		Directory:  data.directory,
		Campaigns:  data.campaigns,
		Storage:    data.storage,
		Acceptance: data.acceptance,
	})
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	progress.Set(StageSpreadsheet)

	return s.emitter.Emit(req.UserID, req.StoreID, domain.Report{
		StoreName: req.StoreName,
		Period:    req.Period,
		Rows:      rows,
	})
}

// fetchAll dispara as consultas em paralelo; o primeiro erro cancela as demais
func (s *Service) fetchAll(ctx context.Context, req domain.ReportRequest) (*fetched, error) {
	data := &fetched{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		ledger, err := s.integrator.GetLedger(ctx, req.Token, req.Period)
		if err != nil {
			return fmt.Errorf("relatório de realização: %w", err)
		}
		data.ledger = ledger
		return nil
	})

	p.Go(func(ctx context.Context) error {
		directory, err := s.integrator.GetDirectory(ctx, req.Token)
		if err != nil {
			return fmt.Errorf("catálogo de artigos: %w", err)
		}
		data.directory = directory
		return nil
	})

	p.Go(func(ctx context.Context) error {
		campaigns, err := s.integrator.GetAdCampaigns(ctx, req.Token, req.Period, req.DocNumbers)
		if err != nil {
			return fmt.Errorf("campanhas de publicidade: %w", err)
		}
		data.campaigns = campaigns
		return nil
	})

	if s.cfg.Wildberries.StorageSource == config.StorageSourceJob {
		p.Go(func(ctx context.Context) error {
			storage, err := s.integrator.GetStorageCosts(ctx, req.Token, req.Period)
			if err != nil {
				return fmt.Errorf("armazenamento pago: %w", err)
			}
			data.storage = storage
			return nil
		})
	}

	if s.cfg.Wildberries.AcceptanceSource == config.AcceptanceSourceReport {
		p.Go(func(ctx context.Context) error {
			acceptance, err := s.integrator.GetAcceptanceCosts(ctx, req.Token, req.Period)
			if err != nil {
				return fmt.Errorf("relatório de aceitação: %w", err)
			}
			data.acceptance = acceptance
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *Service) History(ctx context.Context, userID, storeID int64) ([]domain.ReportEntry, error) {
	return s.reportRepo.ListByUser(ctx, userID, storeID)
}

// GetReport busca um relatório do histórico garantindo que pertence ao usuário e que o arquivo existe
func (s *Service) GetReport(ctx context.Context, userID, reportID int64) (*domain.ReportEntry, error) {
	entry, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if entry.UserID != userID {
		return nil, repository.ErrReportNotFound
	}

	if _, err := os.Stat(entry.Path); err != nil {
		return nil, repository.ErrReportNotFound
	}

	return entry, nil
}

func (s *Service) RecentWeeks(count int) []domain.Week {
	return utils.RollingWeeks(count, s.now())
}

func (s *Service) Quarters() []domain.Quarter {
	return utils.QuarterList(s.cfg.Report.QuarterEpochYear, s.now())
}

func (s *Service) QuarterWeeks(year, quarter int) ([]domain.Week, error) {
	if quarter < 1 || quarter > 4 || year < s.cfg.Report.QuarterEpochYear {
		return nil, NewReportError(ErrInvalidPeriod, "", fmt.Sprintf("%d_%d", year, quarter))
	}

	weeks := utils.QuarterWeeks(year, quarter, s.now())
	if len(weeks) == 0 {
		return nil, NewReportError(ErrInvalidPeriod, "", fmt.Sprintf("%d_%d", year, quarter))
	}

	return weeks, nil
}
