// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/settlement-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/settlement-report-api/internal/domain"
)

const (
	reportHistoryTable = "report_history"
)

var ErrReportNotFound = errors.New("relatório não encontrado")

var reportHistoryColumns = []string{
	"id",
	"user_id",
	"store_id",
	"period_start",
	"period_end",
	"path",
	"created_at",
}

type ReportRepository interface {
	Save(ctx context.Context, entry *domain.ReportEntry) (*domain.ReportEntry, error)
	ListByUser(ctx context.Context, userID, storeID int64) ([]domain.ReportEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.ReportEntry, error)
	DeleteOlderThan(ctx context.Context, days int) ([]string, error)
}

type reportRepository struct {
	db  postgres.Queryer
	now func() time.Time
}

// NewReportRepository aceita a conexão do pool ou uma transação
func NewReportRepository(db postgres.Queryer) ReportRepository {
	return &reportRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *reportRepository) Save(ctx context.Context, entry *domain.ReportEntry) (*domain.ReportEntry, error) {
	query, args, err := squirrel.
		Insert(reportHistoryTable).
		Columns("user_id", "store_id", "period_start", "period_end", "path").
		Values(entry.UserID, entry.StoreID, entry.PeriodStart, entry.PeriodEnd, entry.Path).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao salvar histórico do relatório: %w", err)
	}

	return entry, nil
}

// ListByUser lista o histórico do usuário; storeID zero não filtra por loja
func (r *reportRepository) ListByUser(ctx context.Context, userID, storeID int64) ([]domain.ReportEntry, error) {
	where := squirrel.Eq{"user_id": userID}
	if storeID != 0 {
		where["store_id"] = storeID
	}

	query, args, err := squirrel.
		Select(reportHistoryColumns...).
		From(reportHistoryTable).
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ReportEntry, 0)
	for rows.Next() {
		entry, err := scanReportEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.ReportEntry, error) {
	query, args, err := squirrel.
		Select(reportHistoryColumns...).
		From(reportHistoryTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanReportEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("erro ao buscar relatório %d: %w", id, err)
	}

	return entry, nil
}

// DeleteOlderThan remove os registros mais antigos que days dias e retorna os caminhos dos arquivos
func (r *reportRepository) DeleteOlderThan(ctx context.Context, days int) ([]string, error) {
	cutoff := r.now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(reportHistoryTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		Suffix("RETURNING path").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao remover histórico antigo: %w", err)
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReportEntry(row rowScanner) (*domain.ReportEntry, error) {
	var entry domain.ReportEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.StoreID,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&entry.Path,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
