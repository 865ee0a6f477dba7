package usecase

import (
	"context"
	"errors"
	"fmt"

	"bonus-reconciliation/internal/domain"
	"bonus-reconciliation/internal/engine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BonusCheckUseCase orchestrates loading datasets and running the engine on them.
type BonusCheckUseCase struct {
	repo   DatasetRepository
	schema domain.Schema
	logger *zap.Logger
}

// NewBonusCheckUseCase creates a new instance of the usecase.
// A nil logger disables logging.
func NewBonusCheckUseCase(repo DatasetRepository, schema domain.Schema, logger *zap.Logger) *BonusCheckUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BonusCheckUseCase{repo: repo, schema: schema, logger: logger}
}

// Schema returns the column names datasets are validated against.
func (uc *BonusCheckUseCase) Schema() domain.Schema {
	return uc.schema
}

// CheckDuplicates loads the file at path and reports its duplicated client ids.
func (uc *BonusCheckUseCase) CheckDuplicates(ctx context.Context, path string) (*domain.DuplicateReport, error) {
	ds, err := uc.repo.GetDataset(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get dataset: %w", err)
	}
	return uc.AnalyzeDuplicates(ctx, ds)
}

// AnalyzeDuplicates reports the duplicated client ids of an already loaded dataset.
func (uc *BonusCheckUseCase) AnalyzeDuplicates(ctx context.Context, ds domain.Dataset) (*domain.DuplicateReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := engine.FindDuplicates(ds, uc.schema)
	if err != nil {
		uc.logFailure("duplicate check rejected", err, zap.String("dataset", ds.Name))
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	report.ReportID = uuid.NewString()

	uc.logger.Info("duplicate check completed",
		zap.String("report_id", report.ReportID),
		zap.String("dataset", ds.Name),
		zap.Int("rows", report.TotalRows),
		zap.Int("duplicate_ids", report.DuplicateIDCount),
		zap.Int("duplicate_rows", len(report.Rows)),
		zap.Stringer("duplicate_fraction", report.DuplicateFraction),
	)
	return report, nil
}

// CompareFiles loads both files and compares them in the given mode.
func (uc *BonusCheckUseCase) CompareFiles(ctx context.Context, mode domain.Mode, pathA, pathB string) (*domain.ComparisonReport, error) {
	datasets, err := uc.repo.GetDatasets(ctx, []string{pathA, pathB})
	if err != nil {
		return nil, fmt.Errorf("could not get datasets: %w", err)
	}
	if len(datasets) != 2 {
		return nil, fmt.Errorf("expected 2 datasets, got %d", len(datasets))
	}
	return uc.CompareDatasets(ctx, mode, datasets[0], datasets[1])
}

// CompareDatasets compares two already loaded datasets in the given mode.
func (uc *BonusCheckUseCase) CompareDatasets(ctx context.Context, mode domain.Mode, a, b domain.Dataset) (*domain.ComparisonReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := engine.Compare(mode, a, b, uc.schema)
	if err != nil {
		uc.logFailure("comparison rejected", err,
			zap.String("mode", string(mode)),
			zap.String("dataset_a", a.Name),
			zap.String("dataset_b", b.Name),
		)
		return nil, fmt.Errorf("comparison failed: %w", err)
	}
	report.ReportID = uuid.NewString()

	uc.logger.Info("comparison completed",
		zap.String("report_id", report.ReportID),
		zap.String("mode", string(mode)),
		zap.String("dataset_a", a.Name),
		zap.String("dataset_b", b.Name),
		zap.Int("rows", report.Len()),
		zap.Int("common_ids", report.Summary.CommonIDCount),
	)
	return report, nil
}

// logFailure logs schema problems with the missing column list so they can be
// told apart from unexpected failures.
func (uc *BonusCheckUseCase) logFailure(msg string, err error, fields ...zap.Field) {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		fields = append(fields, zap.Strings("missing_columns", schemaErr.Missing))
		uc.logger.Warn(msg, fields...)
		return
	}
	uc.logger.Error(msg, append(fields, zap.Error(err))...)
}
