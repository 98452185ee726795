package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/settlement-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries"
	"github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/settlement-report-api/infrastructure/repository"
	"github.com/vfg2006/settlement-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/settlement-report-api/internal/api"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/scheduler"
	"github.com/vfg2006/settlement-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/internal/usecases/tracking"
	"github.com/vfg2006/settlement-report-api/pkg/secret"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	reportRepo := repository.NewReportRepository(pgConn)

	cipher, err := secret.NewTokenCipher(cfg.Auth.EncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("Chave de criptografia inválida")
	}
	if !cipher.Enabled() {
		logrus.Warn("ENCRYPTION_KEY não configurada, tokens criptografados serão recusados")
	}

	authenticator := authenticating.NewService(cfg)

	// Um único cliente HTTP é compartilhado por todas as chamadas ao marketplace
	httpClient := &http.Client{Timeout: cfg.Wildberries.HTTPTimeout}
	defer httpClient.CloseIdleConnections()

	wbClient := wbclient.NewClient(httpClient, cfg.Wildberries)
	wbIntegrator := wildberries.New(cfg, wbClient)

	emitter := spreadsheet.NewEmitter(cfg)
	reportService := reporting.NewService(cfg, wbIntegrator, emitter, reportRepo)

	board := tracking.NewBoard()

	retentionService := scheduler.NewReportRetentionService(reportRepo, board, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de relatórios")
	} else {
		logrus.Info("Agendador de retenção de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		board,
		cipher,
		authenticator,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
