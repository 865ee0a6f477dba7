package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bonus-reconciliation/internal/domain"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for bonuscheck.
// Configuration can come from a YAML file or environment variables.
// Environment variables always override YAML values.
type Config struct {
	// Columns are the header names of the required fields in uploaded files.
	// Source files drift between spellings ("Bonus Amount" vs "bonus Amount"),
	// so they are never hard-coded.
	Columns ColumnsConfig `yaml:"columns"`

	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

// ColumnsConfig names the required columns.
type ColumnsConfig struct {
	ClientID    string `yaml:"client_id" env:"BONUS_CLIENT_ID_COLUMN" env-default:"Client ID"`
	AccrualDate string `yaml:"accrual_date" env:"BONUS_ACCRUAL_DATE_COLUMN" env-default:"Accrual Date"`
	BonusAmount string `yaml:"bonus_amount" env:"BONUS_AMOUNT_COLUMN" env-default:"Bonus Amount"`
}

// ServerConfig holds the HTTP host settings.
type ServerConfig struct {
	Addr          string        `yaml:"addr" env:"BONUS_ADDR" env-default:"127.0.0.1:8501"`
	MaxUploadMB   int64         `yaml:"max_upload_mb" env:"BONUS_MAX_UPLOAD_MB" env-default:"32"`
	ReadTimeout   time.Duration `yaml:"read_timeout" env:"BONUS_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout  time.Duration `yaml:"write_timeout" env:"BONUS_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace" env:"BONUS_SHUTDOWN_GRACE" env-default:"10s"`
}

// LoggingConfig selects the zap logger flavour.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"` // "console" or "json"
}

// ExportConfig holds download file names.
type ExportConfig struct {
	DuplicatesFileName string `yaml:"duplicates_file_name" env:"BONUS_DUPLICATES_FILE" env-default:"duplicated_clients.csv"`
	// ComparisonFileName is a format string receiving the mode name.
	ComparisonFileName string `yaml:"comparison_file_name" env:"BONUS_COMPARISON_FILE" env-default:"comparison_%s.csv"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// Schema returns the engine schema for the configured column names.
func (c *Config) Schema() domain.Schema {
	return domain.Schema{
		ClientID:    c.Columns.ClientID,
		AccrualDate: c.Columns.AccrualDate,
		BonusAmount: c.Columns.BonusAmount,
	}
}

// ComparisonFile returns the download name for a comparison in mode.
func (c *Config) ComparisonFile(mode domain.Mode) string {
	return fmt.Sprintf(c.Export.ComparisonFileName, mode)
}

// Load reads configuration from path (if non-empty and present) with environment
// variable overrides. Without a file, values come from the environment and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			return validated(cfg)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return validated(cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot work with.
func (c *Config) Validate() error {
	seen := make(map[string]string, 3)
	for _, col := range []struct{ key, name string }{
		{"client_id", c.Columns.ClientID},
		{"accrual_date", c.Columns.AccrualDate},
		{"bonus_amount", c.Columns.BonusAmount},
	} {
		if col.name == "" {
			return fmt.Errorf("columns.%s must not be empty", col.key)
		}
		if other, ok := seen[col.name]; ok {
			return fmt.Errorf("columns.%s and columns.%s both name %q", other, col.key, col.name)
		}
		seen[col.name] = col.key
	}

	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	if c.Export.DuplicatesFileName == "" || c.Export.ComparisonFileName == "" {
		return errors.New("export file names must not be empty")
	}
	return nil
}
