package config

import (
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
	DatasetSourceNone     = "none"
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Analysis     Analysis     `mapstructure:",squash"`
	Alerts       Alerts       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	DatasetSync  DatasetSync  `mapstructure:",squash"`
	AlertMonitor AlertMonitor `mapstructure:",squash"`
	Narrative    Narrative    `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
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
	Secret string `mapstructure:"auth_secret"`
}

type Analysis struct {
	RulesFile    string `mapstructure:"rules_file"`
	CacheEnabled bool   `mapstructure:"analysis_cache_enabled"`
	TrendTopN    int    `mapstructure:"trend_top_n"`
}

type Alerts struct {
	TrendWindow     int     `mapstructure:"alert_trend_window"`
	TrendLookback   int     `mapstructure:"alert_trend_lookback"`
	CVDeclineRate   float64 `mapstructure:"alert_cv_decline_rate"`
	CPAIncreaseRate float64 `mapstructure:"alert_cpa_increase_rate"`
	ZeroCostCheck   bool    `mapstructure:"alert_zero_cost_check"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	File   string `mapstructure:"dataset_file"`
	Table  string `mapstructure:"dataset_table"`
}

type DatasetSync struct {
	CronSchedule string `mapstructure:"dataset_sync_cron"`
	Enabled      bool   `mapstructure:"dataset_sync_enabled"`
}

type AlertMonitor struct {
	CronSchedule string `mapstructure:"alert_monitor_cron"`
	Enabled      bool   `mapstructure:"alert_monitor_enabled"`
}

type Narrative struct {
	URL           string        `mapstructure:"narrative_url"`
	APIKey        string        `mapstructure:"narrative_api_key"`
	Model         string        `mapstructure:"narrative_model"`
	MaxTokens     int           `mapstructure:"narrative_max_tokens"`
	APIVersion    string        `mapstructure:"narrative_api_version"`
	Timeout       time.Duration `mapstructure:"narrative_timeout"`
	IncludePrompt bool          `mapstructure:"narrative_include_prompt"` // devolve o prompt junto com o texto
}

type Cache struct {
	RedisURL     string        `mapstructure:"redis_url"`
	NarrativeTTL time.Duration `mapstructure:"narrative_cache_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_report")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "") // vazio desativa a autenticação

	viper.SetDefault("RULES_FILE", "")
	viper.SetDefault("ANALYSIS_CACHE_ENABLED", true)
	viper.SetDefault("TREND_TOP_N", 7)

	// Limiares dos alertas
	viper.SetDefault("ALERT_TREND_WINDOW", 7)
	viper.SetDefault("ALERT_TREND_LOOKBACK", 14)
	viper.SetDefault("ALERT_CV_DECLINE_RATE", -0.20)
	viper.SetDefault("ALERT_CPA_INCREASE_RATE", 0.20)
	viper.SetDefault("ALERT_ZERO_COST_CHECK", true)

	// Origem do dataset para a recarga periódica
	viper.SetDefault("DATASET_SOURCE", DatasetSourceNone)
	viper.SetDefault("DATASET_FILE", "")
	viper.SetDefault("DATASET_TABLE", "ad_report_records")

	viper.SetDefault("DATASET_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DATASET_SYNC_ENABLED", false)

	viper.SetDefault("ALERT_MONITOR_CRON", "30 7 * * *") // Todos os dias às 7h30
	viper.SetDefault("ALERT_MONITOR_ENABLED", false)

	viper.SetDefault("NARRATIVE_URL", "https://api.anthropic.com/v1/messages")
	viper.SetDefault("NARRATIVE_API_KEY", "")
	viper.SetDefault("NARRATIVE_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("NARRATIVE_MAX_TOKENS", 1500)
	viper.SetDefault("NARRATIVE_API_VERSION", "2023-06-01")
	viper.SetDefault("NARRATIVE_TIMEOUT", "0s") // sem timeout
	viper.SetDefault("NARRATIVE_INCLUDE_PROMPT", false)

	viper.SetDefault("REDIS_URL", "") // vazio desativa o cache de narrativas
	viper.SetDefault("NARRATIVE_CACHE_TTL", "1h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

// Validate confere as combinações que impediriam o serviço de funcionar
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceNone, DatasetSourcePostgres:
	case DatasetSourceFile:
		if c.Dataset.File == "" {
			return fmt.Errorf("DATASET_FILE é obrigatório quando DATASET_SOURCE=%s", DatasetSourceFile)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %s", c.Dataset.Source)
	}

	if c.Alerts.TrendWindow <= 0 || c.Alerts.TrendLookback < 0 {
		return fmt.Errorf("janela de alertas inválida: window=%d lookback=%d", c.Alerts.TrendWindow, c.Alerts.TrendLookback)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
