package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

func newMockRepository(t *testing.T) (*reportRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewReportRepository(db).(*reportRepository)
	return repo, mock
}

func TestReportRepository_Save(t *testing.T) {
	repo, mock := newMockRepository(t)

	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_history (user_id,store_id,period_start,period_end,path) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at")).
		WithArgs(int64(42), int64(7), start, end, "data/reports/42/7/report2024-03-04.xlsx").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	entry, err := repo.Save(context.Background(), &domain.ReportEntry{
		UserID:      42,
		StoreID:     7,
		PeriodStart: start,
		PeriodEnd:   end,
		Path:        "data/reports/42/7/report2024-03-04.xlsx",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, createdAt, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListByUser(t *testing.T) {
	now := time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "store_id", "period_start", "period_end", "path", "created_at"}

	t.Run("filtra por loja", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, store_id, period_start, period_end, path, created_at FROM report_history WHERE store_id = $1 AND user_id = $2 ORDER BY created_at DESC")).
			WithArgs(int64(7), int64(42)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(2), int64(42), int64(7), now, now, "b.xlsx", now).
				AddRow(int64(1), int64(42), int64(7), now, now, "a.xlsx", now))

		entries, err := repo.ListByUser(context.Background(), 42, 7)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "b.xlsx", entries[0].Path)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem loja lista tudo do usuário", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM report_history WHERE user_id = $1 ORDER BY created_at DESC")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(columns))

		entries, err := repo.ListByUser(context.Background(), 42, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM report_history WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "store_id", "period_start", "period_end", "path", "created_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReportNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := newMockRepository(t)
	repo.now = func() time.Time { return time.Date(2024, time.April, 30, 12, 0, 0, 0, time.UTC) }

	cutoff := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM report_history WHERE created_at < $1 RETURNING path")).
		WithArgs(cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"path"}).AddRow("a.xlsx").AddRow("b.xlsx"))

	paths, err := repo.DeleteOlderThan(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xlsx", "b.xlsx"}, paths)
	assert.NoError(t, mock.ExpectationsWereMet())
}
