package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvTest       = "test"
	EnvProduction = "production"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Port           string         `mapstructure:"port"`
	Environment    string         `mapstructure:"environment"`
	DefaultBhfID   string         `mapstructure:"default_bhf_id"`
	CORSOrigins    []string       `mapstructure:"cors_origins"`
	ItemCodeStrict bool           `mapstructure:"item_code_strict"`
	DatabaseURL    string         `mapstructure:"database_url"`
	EBM            EBMConfig      `mapstructure:"ebm"`
	Redis          RedisConfig    `mapstructure:"redis"`
	Minio          MinioConfig    `mapstructure:"minio"`
	Firebase       FirebaseConfig `mapstructure:"firebase"`
	Log            LogConfig      `mapstructure:"log"`
	Sync           SyncConfig     `mapstructure:"sync"`
	RateLimit      RateLimit      `mapstructure:"rate_limit"`
}

type EBMConfig struct {
	TestURL               string        `mapstructure:"test_url"`
	ProductionURL         string        `mapstructure:"production_url"`
	TestRequestForm       string        `mapstructure:"test_request_form"`
	ProductionRequestForm string        `mapstructure:"production_request_form"`
	Timeout               time.Duration `mapstructure:"timeout"`
	Token                 string        `mapstructure:"token"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type FirebaseConfig struct {
	ProjectID string `mapstructure:"project_id"`
	JWKSURL   string `mapstructure:"jwks_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SyncConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	BatchSize   int           `mapstructure:"batch_size"`
}

type RateLimit struct {
	ItemCodesPerMinute int `mapstructure:"item_codes_per_minute"`
}

// EBMBaseURL is the EBM API URL of the current environment.
func (c *Config) EBMBaseURL() string {
	if c.Environment == EnvProduction {
		return c.EBM.ProductionURL
	}
	return c.EBM.TestURL
}

// RequestFormURL is the taxpayer request form of the current environment.
func (c *Config) RequestFormURL() string {
	if c.Environment == EnvProduction {
		return c.EBM.ProductionRequestForm
	}
	return c.EBM.TestRequestForm
}

// bindings maps config keys to their environment variables and defaults.
var bindings = []struct {
	key    string
	env    string
	defval any
}{
	{"port", "PORT", "5000"},
	{"environment", "RRA_ENVIRONMENT", EnvTest},
	{"default_bhf_id", "DEFAULT_BHF_ID", "00"},
	{"cors_origins", "CORS_ORIGINS", []string{
		"http://localhost:3000",
		"https://schoolfeedingsystem.web.app",
		"https://schoolfeedingsystem.firebaseapp.com",
	}},
	{"item_code_strict", "ITEM_CODE_STRICT", false},
	{"database_url", "DATABASE_URL", ""},
	{"ebm.test_url", "RRA_TEST_URL", "https://sedsandbox.rra.gov.rw"},
	{"ebm.production_url", "RRA_PRODUCTION_URL", "https://api-ebm.rra.gov.rw"},
	{"ebm.test_request_form", "RRA_TEST_REQUEST_FORM", "https://myrrrrest.rra.gov.rw/"},
	{"ebm.production_request_form", "RRA_PRODUCTION_REQUEST_FORM", "https://myrrra.rra.gov.rw"},
	{"ebm.timeout", "EBM_TIMEOUT", 30 * time.Second},
	{"ebm.token", "EBM_TOKEN", ""},
	{"redis.addr", "REDIS_ADDR", "localhost:6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"minio.endpoint", "MINIO_ENDPOINT", "localhost:9000"},
	{"minio.access_key", "MINIO_ACCESS_KEY", "minioadmin"},
	{"minio.secret_key", "MINIO_SECRET_KEY", "minioadmin"},
	{"minio.bucket", "MINIO_BUCKET", "vsdc-receipts"},
	{"minio.use_ssl", "MINIO_USE_SSL", false},
	{"firebase.project_id", "FIREBASE_PROJECT_ID", ""},
	{"firebase.jwks_url", "FIREBASE_JWKS_URL", "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"},
	{"log.level", "LOG_LEVEL", "info"},
	{"log.format", "LOG_FORMAT", "json"},
	{"sync.interval", "SYNC_INTERVAL", time.Duration(0)},
	{"sync.max_attempts", "SYNC_MAX_ATTEMPTS", 5},
	{"sync.batch_size", "SYNC_BATCH_SIZE", 50},
	{"rate_limit.item_codes_per_minute", "ITEM_CODE_RATE_LIMIT", 60},
}

// Load reads .env, the environment and, when configFile is set, a config file.
// Environment variables win over the file.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.defval)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	if cfg.Firebase.ProjectID == "" {
		account, err := LoadServiceAccount()
		if err != nil {
			return nil, err
		}
		cfg.Firebase.ProjectID = account.ProjectID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Environment != EnvTest && c.Environment != EnvProduction {
		return fmt.Errorf("RRA_ENVIRONMENT must be %q or %q, got %q", EnvTest, EnvProduction, c.Environment)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}
	if c.Firebase.ProjectID == "" {
		return errors.New("firebase project id is not configured")
	}
	if c.EBM.Timeout <= 0 {
		return fmt.Errorf("EBM_TIMEOUT must be positive, got %s", c.EBM.Timeout)
	}
	if c.Sync.Interval < 0 {
		return fmt.Errorf("SYNC_INTERVAL must not be negative, got %s", c.Sync.Interval)
	}
	return nil
}
