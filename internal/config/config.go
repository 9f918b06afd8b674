package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Driver string // postgres | sqlite | memory
	} `mapstructure:"storage"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	SQLite struct {
		Path string
	} `mapstructure:"sqlite"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	Digest struct {
		Interval time.Duration
	} `mapstructure:"digest"`

	Expiry struct {
		SoonDays int `mapstructure:"soon_days"`
	} `mapstructure:"expiry"`

	MockAPI struct {
		Enabled     bool
		BaseDelay   time.Duration `mapstructure:"base_delay"`
		Jitter      time.Duration
		SuccessRate float64 `mapstructure:"success_rate"`
	} `mapstructure:"mockapi"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Load читает YAML (если path не пустой) и переменные APP_*, например
// APP_STORAGE_DRIVER или APP_TELEGRAM_TOKEN.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("sqlite.path", "data/techvault.db")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("digest.interval", 24*time.Hour)
	v.SetDefault("expiry.soon_days", 30)
	v.SetDefault("mockapi.enabled", false)
	v.SetDefault("mockapi.base_delay", 800*time.Millisecond)
	v.SetDefault("mockapi.jitter", 500*time.Millisecond)
	v.SetDefault("mockapi.success_rate", 0.98)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres.dsn is required for storage.driver=postgres"))
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			errs = append(errs, errors.New("sqlite.path is required for storage.driver=sqlite"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("app.timezone: %w", err))
	}
	if c.Expiry.SoonDays <= 0 {
		errs = append(errs, fmt.Errorf("expiry.soon_days must be positive, got %d", c.Expiry.SoonDays))
	}
	if c.MockAPI.SuccessRate < 0 || c.MockAPI.SuccessRate > 1 {
		errs = append(errs, fmt.Errorf("mockapi.success_rate must be in [0,1], got %v", c.MockAPI.SuccessRate))
	}
	if c.MockAPI.BaseDelay < 0 || c.MockAPI.Jitter < 0 {
		errs = append(errs, errors.New("mockapi delays must not be negative"))
	}
	if c.Telegram.Token != "" && c.Digest.Interval <= 0 {
		errs = append(errs, errors.New("digest.interval must be positive"))
	}
	return errors.Join(errs...)
}

// Location — зона, в которой считаются календарные дни.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
