package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bonus-reconciliation/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.Schema{
		ClientID:    "Client ID",
		AccrualDate: "Accrual Date",
		BonusAmount: "Bonus Amount",
	}, cfg.Schema())
	assert.Equal(t, "127.0.0.1:8501", cfg.Server.Addr)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "duplicated_clients.csv", cfg.Export.DuplicatesFileName)
	assert.Equal(t, "comparison_join.csv", cfg.ComparisonFile(domain.ModeJoin))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileFallsBackToEnvironment(t *testing.T) {
	t.Setenv("BONUS_AMOUNT_COLUMN", "bonus Amount")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bonus Amount", cfg.Columns.BonusAmount)
}

func TestLoad_YAMLWithEnvironmentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `columns:
  client_id: "ID Cliente"
  accrual_date: "Data"
  bonus_amount: "Valor"
server:
  addr: ":9000"
  max_upload_mb: 4
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("BONUS_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ID Cliente", cfg.Columns.ClientID)
	assert.Equal(t, "Data", cfg.Columns.AccrualDate)
	assert.Equal(t, "Valor", cfg.Columns.BonusAmount)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, int64(4<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "json", cfg.Logging.Format)
	// unset values still receive defaults
	assert.Equal(t, "duplicated_clients.csv", cfg.Export.DuplicatesFileName)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [not, a, map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Columns: ColumnsConfig{ClientID: "Client ID", AccrualDate: "Accrual Date", BonusAmount: "Bonus Amount"},
			Server:  ServerConfig{MaxUploadMB: 1},
			Export:  ExportConfig{DuplicatesFileName: "d.csv", ComparisonFileName: "c_%s.csv"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "empty column name",
			mutate:  func(c *Config) { c.Columns.AccrualDate = "" },
			wantErr: "columns.accrual_date must not be empty",
		},
		{
			name:    "same name for two columns",
			mutate:  func(c *Config) { c.Columns.BonusAmount = "Client ID" },
			wantErr: `columns.client_id and columns.bonus_amount both name "Client ID"`,
		},
		{
			name:    "non-positive upload limit",
			mutate:  func(c *Config) { c.Server.MaxUploadMB = 0 },
			wantErr: "server.max_upload_mb must be positive",
		},
		{
			name:    "missing export name",
			mutate:  func(c *Config) { c.Export.DuplicatesFileName = "" },
			wantErr: "export file names must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
