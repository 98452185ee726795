package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	AcceptanceSourceLedger = "ledger"
	AcceptanceSourceReport = "report"

	StorageSourceJob    = "job"
	StorageSourceLedger = "ledger"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Wildberries     Wildberries     `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	ReportRetention ReportRetention `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret         string   `mapstructure:"auth_secret"`
	AdminKeyHash   string   `mapstructure:"admin_key_hash"`
	EncryptionKey  string   `mapstructure:"encryption_key"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Wildberries agrupa os endereços e limites das APIs do marketplace
type Wildberries struct {
	StatisticsURL    string        `mapstructure:"wb_statistics_url"`
	ContentURL       string        `mapstructure:"wb_content_url"`
	AnalyticsURL     string        `mapstructure:"wb_analytics_url"`
	AdvertURL        string        `mapstructure:"wb_advert_url"`
	HTTPTimeout      time.Duration `mapstructure:"wb_http_timeout"`
	MaxRetries       int           `mapstructure:"wb_max_retries"`
	BaseBackoff      time.Duration `mapstructure:"wb_base_backoff"`
	LedgerPageSize   int           `mapstructure:"wb_ledger_page_size"`
	LedgerPageDelay  time.Duration `mapstructure:"wb_ledger_page_delay"`
	CardsPageSize    int           `mapstructure:"wb_cards_page_size"`
	CardsPageDelay   time.Duration `mapstructure:"wb_cards_page_delay"`
	TaskPollInterval time.Duration `mapstructure:"wb_task_poll_interval"`
	AdLookbackDays   int           `mapstructure:"wb_ad_lookback_days"`
	AcceptanceSource string        `mapstructure:"wb_acceptance_source"`
	StorageSource    string        `mapstructure:"wb_storage_source"`
}

type Report struct {
	DataRoot         string        `mapstructure:"report_data_root"`
	TickInterval     time.Duration `mapstructure:"report_tick_interval"`
	MaxTicks         int           `mapstructure:"report_max_ticks"`
	QuarterEpochYear int           `mapstructure:"report_quarter_epoch_year"`
	JobTTL           time.Duration `mapstructure:"report_job_ttl"`
}

type ReportRetention struct {
	CronSchedule     string        `mapstructure:"report_retention_cron"`
	RetentionDays    int           `mapstructure:"report_retention_days"`
	JobPruneInterval time.Duration `mapstructure:"report_job_prune_interval"`
	Enabled          bool          `mapstructure:"report_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/settlement")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("ADMIN_KEY_HASH", "")             // hash bcrypt da chave de administração
	viper.SetDefault("ENCRYPTION_KEY", "")             // chave AES-256 em base64 dos tokens "enc:"
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("WB_STATISTICS_URL", "https://statistics-api.wildberries.ru")
	viper.SetDefault("WB_CONTENT_URL", "https://content-api.wildberries.ru")
	viper.SetDefault("WB_ANALYTICS_URL", "https://seller-analytics-api.wildberries.ru")
	viper.SetDefault("WB_ADVERT_URL", "https://advert-api.wildberries.ru")
	viper.SetDefault("WB_HTTP_TIMEOUT", "60s")
	viper.SetDefault("WB_MAX_RETRIES", 5)
	viper.SetDefault("WB_BASE_BACKOFF", "500ms")
	viper.SetDefault("WB_LEDGER_PAGE_SIZE", 100000)
	viper.SetDefault("WB_LEDGER_PAGE_DELAY", "1s")
	viper.SetDefault("WB_CARDS_PAGE_SIZE", 100)
	viper.SetDefault("WB_CARDS_PAGE_DELAY", "500ms")
	viper.SetDefault("WB_TASK_POLL_INTERVAL", "5s")
	viper.SetDefault("WB_AD_LOOKBACK_DAYS", 30)
	viper.SetDefault("WB_ACCEPTANCE_SOURCE", AcceptanceSourceLedger) // ledger ou report
	viper.SetDefault("WB_STORAGE_SOURCE", StorageSourceJob)          // job ou ledger

	viper.SetDefault("REPORT_DATA_ROOT", "data")
	viper.SetDefault("REPORT_TICK_INTERVAL", "1s")
	viper.SetDefault("REPORT_MAX_TICKS", 480) // 8 minutos com tick de 1s
	viper.SetDefault("REPORT_QUARTER_EPOCH_YEAR", 2025)
	viper.SetDefault("REPORT_JOB_TTL", "1h")

	viper.SetDefault("REPORT_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("REPORT_RETENTION_DAYS", 30)
	viper.SetDefault("REPORT_JOB_PRUNE_INTERVAL", "10m")
	viper.SetDefault("REPORT_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita combinações que quebrariam o pipeline em tempo de execução
func (c *Config) Validate() error {
	switch c.Wildberries.AcceptanceSource {
	case AcceptanceSourceLedger, AcceptanceSourceReport:
	default:
		return fmt.Errorf("WB_ACCEPTANCE_SOURCE inválido: %q", c.Wildberries.AcceptanceSource)
	}

	switch c.Wildberries.StorageSource {
	case StorageSourceJob, StorageSourceLedger:
	default:
		return fmt.Errorf("WB_STORAGE_SOURCE inválido: %q", c.Wildberries.StorageSource)
	}

	if c.Report.MaxTicks <= 0 {
		return fmt.Errorf("REPORT_MAX_TICKS deve ser positivo: %d", c.Report.MaxTicks)
	}

	if c.Report.TickInterval <= 0 {
		return fmt.Errorf("REPORT_TICK_INTERVAL deve ser positivo: %s", c.Report.TickInterval)
	}

	if c.Auth.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(c.Auth.EncryptionKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("ENCRYPTION_KEY deve ser uma chave de 32 bytes em base64")
		}
	}

	if c.Wildberries.MaxRetries < 0 {
		return fmt.Errorf("WB_MAX_RETRIES não pode ser negativo: %d", c.Wildberries.MaxRetries)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
