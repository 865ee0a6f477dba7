package main

import (
	"errors"
	"fmt"
	"os"

	"bonus-reconciliation/internal/config"
	"bonus-reconciliation/internal/domain"
	"bonus-reconciliation/internal/export"
	"bonus-reconciliation/internal/gateway"
	"bonus-reconciliation/internal/logging"
	"bonus-reconciliation/internal/render"
	"bonus-reconciliation/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bonuscheck",
		Short: "Find duplicated clients and compare bonus accrual files",
		Long: `bonuscheck validates bonus accrual CSV files.

Every file must carry the client id, accrual date and bonus amount columns
named in the configuration. Files can be checked for client ids that occur
more than once, or compared against each other by client id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal; the environment and config file still apply.
			_ = godotenv.Load()

			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			level := cfg.Logging.Level
			if verbose {
				level = "debug"
			}
			logger, err = logging.New(level, cfg.Logging.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("configuration loaded",
				zap.String("config", configPath),
				zap.Strings("columns", cfg.Schema().Required()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "bonuscheck.yaml", "YAML config file (optional; environment variables override it)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newDuplicatesCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newUseCase wires the file repository into the usecase.
func newUseCase() *usecase.BonusCheckUseCase {
	repo := gateway.NewCSVDatasetRepository()
	return usecase.NewBonusCheckUseCase(repo, cfg.Schema(), logger)
}

// reportFailure prints the missing columns of a rejected file before the
// error is returned to cobra.
func reportFailure(cmd *cobra.Command, err error) error {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprint(cmd.ErrOrStderr(), render.SchemaFailure(schemaErr, render.DefaultStyles()))
	}
	return err
}

// writeReport saves t as CSV at path.
func writeReport(path string, t domain.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := export.Write(f, t); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// outputPath resolves the --out and --save flags.
func outputPath(out string, save bool, defaultName string) string {
	if out != "" {
		return out
	}
	if save {
		return defaultName
	}
	return ""
}
