package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bonus-reconciliation/internal/domain"

	"golang.org/x/sync/errgroup"
)

// utf8BOM is prepended by spreadsheet exports and would otherwise stick to the first header.
const utf8BOM = "\ufeff"

// CSVDatasetRepository implements the DatasetRepository interface for CSV files.
type CSVDatasetRepository struct{}

// NewCSVDatasetRepository creates a new repository instance.
func NewCSVDatasetRepository() *CSVDatasetRepository {
	return &CSVDatasetRepository{}
}

// GetDataset reads and parses one CSV file. The dataset is named after the file.
func (r *CSVDatasetRepository) GetDataset(ctx context.Context, path string) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer file.Close()

	return ReadDataset(filepath.Base(path), file)
}

// GetDatasets reads several CSV files concurrently. Results keep the order of paths;
// the first failure cancels the remaining reads.
func (r *CSVDatasetRepository) GetDatasets(ctx context.Context, paths []string) ([]domain.Dataset, error) {
	datasets := make([]domain.Dataset, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			ds, err := r.GetDataset(gctx, path)
			if err != nil {
				return err
			}
			datasets[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}

// ReadDataset parses CSV from src. The first record is the header; header
// names are kept verbatim apart from a leading byte-order mark.
func ReadDataset(name string, src io.Reader) (domain.Dataset, error) {
	br := bufio.NewReader(src)
	// the mark must go before parsing, or a quoted first header is rejected
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return domain.Dataset{}, fmt.Errorf("failed to read header from %s: %w", name, err)
		}
	}
	reader := csv.NewReader(br)

	header, err := reader.Read()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read header from %s: %w", name, err)
	}

	ds := domain.Dataset{Name: name, Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("error reading record from %s: %w", name, err)
		}
		ds.Rows = append(ds.Rows, record)
	}
	return ds, nil
}
