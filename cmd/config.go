package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"harvest/internal/adapters/out/postgres"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of the service. Values are resolved from
// built-in defaults, then the YAML file named by CONFIG_FILE, then the
// environment.
type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBDriver   string `yaml:"db_driver"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`
	SQLitePath string `yaml:"sqlite_path"`

	CostModelPath string `yaml:"cost_model_path"`

	RabbitMQURL      string `yaml:"rabbitmq_url"`
	RabbitMQExchange string `yaml:"rabbitmq_exchange"`

	RedisAddr          string `yaml:"redis_addr"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`

	ProviderCacheTTL      time.Duration `yaml:"provider_cache_ttl"`
	BacklogReportSchedule string        `yaml:"backlog_report_schedule"`
	SeedDemoUsers         bool          `yaml:"seed_demo_users"`
}

// DefaultConfig runs against a local PostgreSQL with no broker and no rate limiting.
func DefaultConfig() Config {
	return Config{
		HTTPPort:              "8080",
		DBDriver:              postgres.DriverPostgres,
		DBHost:                "localhost",
		DBPort:                "5432",
		DBUser:                "postgres",
		DBPassword:            "postgres",
		DBName:                "harvest",
		DBSslMode:             "disable",
		SQLitePath:            "harvest.db",
		CostModelPath:         "cost_model.json",
		RabbitMQExchange:      "harvest.jobs",
		RateLimitPerMinute:    60,
		ProviderCacheTTL:      5 * time.Minute,
		BacklogReportSchedule: "0 * * * * *",
	}
}

// LoadConfig resolves the configuration. lookup is usually os.LookupEnv.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	env := envReader{lookup: lookup}
	env.setString("HTTP_PORT", &cfg.HTTPPort)
	env.setString("DB_DRIVER", &cfg.DBDriver)
	env.setString("DB_HOST", &cfg.DBHost)
	env.setString("DB_PORT", &cfg.DBPort)
	env.setString("DB_USER", &cfg.DBUser)
	env.setString("DB_PASSWORD", &cfg.DBPassword)
	env.setString("DB_NAME", &cfg.DBName)
	env.setString("DB_SSLMODE", &cfg.DBSslMode)
	env.setString("SQLITE_PATH", &cfg.SQLitePath)
	env.setString("COST_MODEL_PATH", &cfg.CostModelPath)
	env.setString("RABBITMQ_URL", &cfg.RabbitMQURL)
	env.setString("RABBITMQ_EXCHANGE", &cfg.RabbitMQExchange)
	env.setString("REDIS_ADDR", &cfg.RedisAddr)
	env.setInt("RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute)
	env.setDuration("PROVIDER_CACHE_TTL", &cfg.ProviderCacheTTL)
	env.setString("BACKLOG_REPORT_SCHEDULE", &cfg.BacklogReportSchedule)
	env.setBool("SEED_DEMO_USERS", &cfg.SeedDemoUsers)

	if err := errors.Join(env.errs...); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that cannot be caught while parsing.
func (c Config) Validate() error {
	var problems []error
	switch c.DBDriver {
	case postgres.DriverPostgres, postgres.DriverSQLite:
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER: %w: %q", postgres.ErrUnknownDriver, c.DBDriver))
	}
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is empty"))
	}
	if c.RateLimitPerMinute < 0 {
		problems = append(problems, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute))
	}
	return errors.Join(problems...)
}

// DatabaseSettings selects the job store.
func (c Config) DatabaseSettings() postgres.Settings {
	return postgres.Settings{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
	}
}

type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *envReader) setString(key string, dst *string) {
	if v, ok := r.lookup(key); ok {
		*dst = v
	}
}

func (r *envReader) setInt(key string, dst *int) {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (r *envReader) setDuration(key string, dst *time.Duration) {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func (r *envReader) setBool(key string, dst *bool) {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}
