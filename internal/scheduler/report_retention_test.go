package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"go.uber.org/mock/gomock"
)

type fakePruner struct {
	calls     int
	olderThan time.Duration
}

func (p *fakePruner) Prune(olderThan time.Duration) int {
	p.calls++
	p.olderThan = olderThan
	return 2
}

func newRetentionConfig() *config.Config {
	return &config.Config{
		Report: config.Report{JobTTL: time.Hour},
		ReportRetention: config.ReportRetention{
			CronSchedule:     "0 2 * * *",
			RetentionDays:    30,
			JobPruneInterval: 10 * time.Minute,
			Enabled:          true,
		},
	}
}

func TestReportRetentionService_purgeExpiredReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	existing := filepath.Join(dir, "report2024-01-01.xlsx")
	require.NoError(t, os.WriteFile(existing, []byte("xlsx"), 0o644))
	missing := filepath.Join(dir, "report2023-12-25.xlsx")

	tests := []struct {
		name        string
		setup       func(repo *mocks.MockReportRepository)
		wantRemoved int
		wantFile    bool
	}{
		{
			name: "Remove arquivos expirados e ignora os que já não existem",
			setup: func(repo *mocks.MockReportRepository) {
				repo.EXPECT().
					DeleteOlderThan(gomock.Any(), 30).
					Return([]string{existing, missing}, nil)
			},
			wantRemoved: 2,
			wantFile:    false,
		},
		{
			name: "Erro no repositório não remove nada",
			setup: func(repo *mocks.MockReportRepository) {
				repo.EXPECT().
					DeleteOlderThan(gomock.Any(), 30).
					Return(nil, errors.New("connection refused"))
			},
			wantRemoved: 0,
			wantFile:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(existing, []byte("xlsx"), 0o644))

			repo := mocks.NewMockReportRepository(ctrl)
			tt.setup(repo)

			service := NewReportRetentionService(repo, &fakePruner{}, newRetentionConfig())
			service.purgeExpiredReports(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantRemoved, status["last_removed_files"])

			_, err := os.Stat(existing)
			assert.Equal(t, tt.wantFile, err == nil)
		})
	}
}

func TestReportRetentionService_pruneJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pruner := &fakePruner{}
	service := NewReportRetentionService(mocks.NewMockReportRepository(ctrl), pruner, newRetentionConfig())

	assert.Equal(t, 2, service.pruneJobs())
	assert.Equal(t, 1, pruner.calls)
	assert.Equal(t, time.Hour, pruner.olderThan)
}

func TestReportRetentionService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	repo := mocks.NewMockReportRepository(ctrl)
	repo.EXPECT().
		DeleteOlderThan(gomock.Any(), 30).
		DoAndReturn(func(ctx context.Context, days int) ([]string, error) {
			close(done)
			return []string{}, nil
		})

	service := NewReportRetentionService(repo, &fakePruner{}, newRetentionConfig())

	ctx, cancel := context.WithCancel(context.Background())
	service.TriggerManualSync(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retenção manual não executou")
	}

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["last_sync_completed_at"].(time.Time).IsZero()
	}, time.Second, 5*time.Millisecond)
}

func TestReportRetentionService_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewReportRetentionService(mocks.NewMockReportRepository(ctrl), &fakePruner{}, newRetentionConfig())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))
	assert.True(t, service.scheduler.IsRunning())
	assert.Len(t, service.scheduler.Jobs(), 2)

	cancel()
	assert.Eventually(t, func() bool {
		return !service.scheduler.IsRunning()
	}, time.Second, 5*time.Millisecond)
}

func TestReportRetentionService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newRetentionConfig()
	cfg.ReportRetention.CronSchedule = "not a cron"

	service := NewReportRetentionService(mocks.NewMockReportRepository(ctrl), &fakePruner{}, cfg)
	assert.Error(t, service.Start(context.Background()))
}
