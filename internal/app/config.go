package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Поддерживаемые хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverMySQL    = "mysql"
)

const envPrefix = "MINISTORE"

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr            string        `mapstructure:"http_addr"`
	MetricsAddr         string        `mapstructure:"metrics_addr"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	StorageDriver       string        `mapstructure:"storage_driver"`
	PostgresDSN         string        `mapstructure:"postgres_dsn"`
	PostgresAutoMigrate bool          `mapstructure:"postgres_auto_migrate"`
	PostgresMaxConns    int           `mapstructure:"postgres_max_conns"`
	MySQLDSN            string        `mapstructure:"mysql_dsn"`
	MySQLReplicaDSNs    []string      `mapstructure:"mysql_replica_dsns"`
	LogLevel            string        `mapstructure:"log_level"`
	LogFormat           string        `mapstructure:"log_format"`
}

// DefaultConfig возвращает настройки для локального запуска на памяти.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		RequestTimeout:      5 * time.Second,
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		PostgresMaxConns:    25,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig читает настройки: значения по умолчанию, затем файл из
// MINISTORE_CONFIG (если задан), затем переменные окружения MINISTORE_*.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.MySQLReplicaDSNs = splitList(cfg.MySQLReplicaDSNs)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Unmarshal видит переменные окружения только для известных ключей,
// поэтому каждый ключ регистрируется через SetDefault.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("http_addr", cfg.HTTPAddr)
	v.SetDefault("metrics_addr", cfg.MetricsAddr)
	v.SetDefault("request_timeout", cfg.RequestTimeout)
	v.SetDefault("storage_driver", cfg.StorageDriver)
	v.SetDefault("postgres_dsn", cfg.PostgresDSN)
	v.SetDefault("postgres_auto_migrate", cfg.PostgresAutoMigrate)
	v.SetDefault("postgres_max_conns", cfg.PostgresMaxConns)
	v.SetDefault("mysql_dsn", cfg.MySQLDSN)
	v.SetDefault("mysql_replica_dsns", []string{})
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("config", "")
}

// splitList раскрывает значения вида "a,b" из переменной окружения.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.MetricsAddr == "" {
		errs = append(errs, errors.New("metrics_addr is required"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request_timeout must be positive"))
	}

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres_dsn is required for postgres storage"))
		}
		if c.PostgresMaxConns <= 0 {
			errs = append(errs, errors.New("postgres_max_conns must be positive"))
		}
	case StorageDriverMySQL:
		if c.MySQLDSN == "" {
			errs = append(errs, errors.New("mysql_dsn is required for mysql storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unsupported log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
