package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vfg2006/settlement-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/settlement-report-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createReportHistoryTable(ctx context.Context, db postgres.Queryer) error {
	log.Println("Criando tabela report_history...")

	var tableExists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'report_history'
		)
	`).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("erro ao verificar tabela existente: %w", err)
	}

	if tableExists {
		log.Println("Tabela report_history já existe")
		return nil
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE report_history (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			store_id BIGINT NOT NULL,
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			path TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("erro ao criar tabela report_history: %w", err)
	}

	log.Println("Tabela report_history criada com sucesso")
	return nil
}

func addReportHistoryIndexes(ctx context.Context, db postgres.Queryer) error {
	log.Println("Adicionando índices na tabela report_history...")

	statements := []string{
		"CREATE INDEX IF NOT EXISTS report_history_user_store_idx ON report_history (user_id, store_id)",
		"CREATE INDEX IF NOT EXISTS report_history_created_at_idx ON report_history (created_at)",
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar índice: %w", err)
		}
	}

	log.Println("Índices criados com sucesso")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	// Tabela e índices entram juntos ou não entram
	err = conn.WithTx(ctx, func(tx postgres.Queryer) error {
		if err := createReportHistoryTable(ctx, tx); err != nil {
			return err
		}
		return addReportHistoryIndexes(ctx, tx)
	})
	if err != nil {
		log.Fatalf("ERRO na migração: %v", err)
	}

	log.Println("Migração concluída")
}
