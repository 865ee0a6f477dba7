package usecase

import (
	"context"

	"bonus-reconciliation/internal/domain"
)

// DatasetRepository defines the interface for loading bonus datasets.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go DatasetRepository
type DatasetRepository interface {
	GetDataset(ctx context.Context, path string) (domain.Dataset, error)
	GetDatasets(ctx context.Context, paths []string) ([]domain.Dataset, error)
}
