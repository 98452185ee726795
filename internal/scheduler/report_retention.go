package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository"
	"github.com/vfg2006/settlement-report-api/internal/config"
)

// JobPruner remove jobs finalizados da memória
type JobPruner interface {
	Prune(olderThan time.Duration) int
}

// ReportRetentionConfig representa a configuração do agendador de retenção de relatórios
type ReportRetentionConfig struct {
	CronSchedule     string
	RetentionDays    int
	JobPruneInterval time.Duration
	JobTTL           time.Duration
	SyncEnabled      bool
}

// ReportRetentionService remove planilhas antigas e jobs finalizados
type ReportRetentionService struct {
	scheduler           *gocron.Scheduler
	config              ReportRetentionConfig
	reportRepo          repository.ReportRepository
	jobs                JobPruner
	removeFile          func(path string) error
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemovedFiles    int
}

// NewReportRetentionService cria uma nova instância do serviço de retenção
func NewReportRetentionService(
	reportRepo repository.ReportRepository,
	jobs JobPruner,
	appConfig *config.Config,
) *ReportRetentionService {
	retentionConfig := ReportRetentionConfig{
		CronSchedule:     appConfig.ReportRetention.CronSchedule,
		RetentionDays:    appConfig.ReportRetention.RetentionDays,
		JobPruneInterval: appConfig.ReportRetention.JobPruneInterval,
		JobTTL:           appConfig.Report.JobTTL,
		SyncEnabled:      appConfig.ReportRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      retentionConfig.CronSchedule,
		"retention_days":     retentionConfig.RetentionDays,
		"job_prune_interval": retentionConfig.JobPruneInterval.String(),
		"job_ttl":            retentionConfig.JobTTL.String(),
		"sync_enabled":       retentionConfig.SyncEnabled,
	}).Info("Configuração do agendador de retenção de relatórios carregada")

	return &ReportRetentionService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     retentionConfig,
		reportRepo: reportRepo,
		jobs:       jobs,
		removeFile: os.Remove,
	}
}

// Start inicia o agendador. A limpeza de jobs roda sempre; a retenção de arquivos depende da configuração.
func (s *ReportRetentionService) Start(ctx context.Context) error {
	if s.config.JobPruneInterval > 0 {
		_, err := s.scheduler.Every(s.config.JobPruneInterval).Do(func() {
			s.pruneJobs()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar limpeza de jobs: %w", err)
		}
	}

	if s.config.SyncEnabled {
		logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de relatórios")

		_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
			s.purgeExpiredReports(ctx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar retenção de relatórios: %w", err)
		}
	} else {
		logrus.Info("Retenção de relatórios desabilitada por configuração")
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportRetentionService) pruneJobs() int {
	removed := s.jobs.Prune(s.config.JobTTL)
	if removed > 0 {
		logrus.WithField("removed_jobs", removed).Info("Jobs finalizados removidos da memória")
	}
	return removed
}

// purgeExpiredReports remove do histórico e do disco os relatórios mais antigos que RetentionDays
func (s *ReportRetentionService) purgeExpiredReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	paths, err := s.reportRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover histórico de relatórios expirados")
		return
	}

	removed := 0
	for _, path := range paths {
		if err := s.removeFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", path).Warn("Erro ao remover planilha expirada")
			continue
		}
		removed++
	}

	logrus.WithFields(logrus.Fields{
		"history_rows":  len(paths),
		"removed_files": removed,
	}).Info("Retenção de relatórios concluída")

	s.syncMutex.Lock()
	s.lastRemovedFiles = removed
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente a retenção de relatórios
func (s *ReportRetentionService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando retenção manual de relatórios")
	go s.purgeExpiredReports(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual da retenção
func (s *ReportRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed_files":     s.lastRemovedFiles,
	}
}
