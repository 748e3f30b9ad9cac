package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Query    QueryConfig
}

type AppConfig struct {
	AppName         string   `env:"APP_NAME" envDefault:"jobquery"`
	Environment     string   `env:"APP_ENV" envDefault:"development"`
	HTTPPort        string   `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins     []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	QueryConfigPath string   `env:"QUERY_CONFIG_PATH"`
}

type RedisConfig struct {
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// DatabaseConfig is optional. With an empty DBHost the static synonym table
// is served from memory only.
type DatabaseConfig struct {
	DBHost         string        `env:"DB_HOST"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBName         string        `env:"DB_NAME"`
	DBUser         string        `env:"DB_USER"`
	DBPassword     string        `env:"DB_PASSWORD"`
	DBSSLMode      string        `env:"DB_SSL_MODE" envDefault:"disable"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns   int32         `env:"DB_POOL_MAX_CONNS" envDefault:"4"`
}

func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

const (
	ProviderAuto   = ""
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

type LLMConfig struct {
	Provider      string        `env:"LLM_PROVIDER"`
	GeminiAPIKey  string        `env:"GENAI_API_KEY"`
	GeminiModel   string        `env:"GENAI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiBaseURL string        `env:"GENAI_BASE_URL"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	SynonymCount  int           `env:"LLM_SYNONYM_COUNT" envDefault:"4"`
	Timeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

// ResolvedProvider picks the provider to use. With LLM_PROVIDER unset the
// first configured API key wins, Gemini first.
func (c LLMConfig) ResolvedProvider() string {
	p := strings.ToLower(strings.TrimSpace(c.Provider))
	if p != ProviderAuto {
		return p
	}
	switch {
	case strings.TrimSpace(c.GeminiAPIKey) != "":
		return ProviderGemini
	case strings.TrimSpace(c.OpenAIAPIKey) != "":
		return ProviderOpenAI
	default:
		return ProviderNone
	}
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads an optional .env file, then the process environment, then the
// optional YAML query config named by QUERY_CONFIG_PATH.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errInvalidEnv, err)
	}

	var missing []string
	switch cfg.LLM.ResolvedProvider() {
	case ProviderGemini:
		if strings.TrimSpace(cfg.LLM.GeminiAPIKey) == "" {
			missing = append(missing, "GENAI_API_KEY")
		}
	case ProviderOpenAI:
		if strings.TrimSpace(cfg.LLM.OpenAIAPIKey) == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case ProviderNone:
	default:
		return Config{}, fmt.Errorf("%w: unknown LLM_PROVIDER %q", errInvalidEnv, cfg.LLM.Provider)
	}
	if strings.TrimSpace(cfg.App.HTTPPort) == "" {
		missing = append(missing, "HTTP_PORT")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	q, err := LoadYAMLConfig(cfg.App.QueryConfigPath, DefaultQueryConfig)
	if err != nil {
		return Config{}, fmt.Errorf("load query config: %w", err)
	}
	cfg.Query = *q

	return cfg, nil
}
