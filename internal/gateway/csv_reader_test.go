package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"bonus-reconciliation/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVDatasetRepository_GetDataset(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected domain.Dataset
		wantErr  bool
	}{
		{
			name: "valid bonus records",
			csvData: [][]string{
				{"Client ID", "Accrual Date", "Bonus Amount"},
				{"1", "2024-01-01", "10"},
				{"1", "2024-01-02", "20"},
				{"2", "2024-01-01", "5"},
			},
			expected: domain.Dataset{
				Columns: []string{"Client ID", "Accrual Date", "Bonus Amount"},
				Rows: [][]string{
					{"1", "2024-01-01", "10"},
					{"1", "2024-01-02", "20"},
					{"2", "2024-01-01", "5"},
				},
			},
		},
		{
			name: "header only",
			csvData: [][]string{
				{"Client ID", "Accrual Date", "Bonus Amount"},
			},
			expected: domain.Dataset{
				Columns: []string{"Client ID", "Accrual Date", "Bonus Amount"},
			},
		},
		{
			name: "extra columns and quoted values are kept verbatim",
			csvData: [][]string{
				{"Region", "Client ID", "Accrual Date", "Bonus Amount"},
				{"north, east", "C-7", "03/01/2024", "1,000.50"},
			},
			expected: domain.Dataset{
				Columns: []string{"Region", "Client ID", "Accrual Date", "Bonus Amount"},
				Rows: [][]string{
					{"north, east", "C-7", "03/01/2024", "1,000.50"},
				},
			},
		},
		{
			name: "inconsistent field count",
			csvData: [][]string{
				{"Client ID", "Accrual Date", "Bonus Amount"},
				{"1", "2024-01-01"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewCSVDatasetRepository()
			got, err := repo.GetDataset(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.expected.Name = filepath.Base(tmpFile)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVDatasetRepository_GetDataset_FileErrors(t *testing.T) {
	repo := NewCSVDatasetRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetDataset(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "empty_*.csv")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		_, err = repo.GetDataset(ctx, tmpFile.Name())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.GetDataset(cctx, "whatever.csv")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCSVDatasetRepository_GetDatasets(t *testing.T) {
	dir := t.TempDir()
	planA, err := createTempCSVFromLines(dir, []string{
		"Client ID,Accrual Date,Bonus Amount",
		"1,2024-01-01,10",
		"2,2024-01-01,20",
	}, "plan_a.csv")
	require.NoError(t, err)
	planB, err := createTempCSVFromLines(dir, []string{
		"Client ID,Accrual Date,Bonus Amount",
		"2,2024-02-01,5",
	}, "plan_b.csv")
	require.NoError(t, err)

	repo := NewCSVDatasetRepository()
	ctx := context.Background()

	t.Run("keeps the order of the paths", func(t *testing.T) {
		got, err := repo.GetDatasets(ctx, []string{planB, planA})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "plan_b.csv", got[0].Name)
		assert.Equal(t, 1, got[0].Len())
		assert.Equal(t, "plan_a.csv", got[1].Name)
		assert.Equal(t, 2, got[1].Len())
	})

	t.Run("one valid file and one missing file", func(t *testing.T) {
		got, err := repo.GetDatasets(ctx, []string{planA, filepath.Join(dir, "nonexistent.csv")})
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestReadDataset_StripsByteOrderMark(t *testing.T) {
	src := strings.NewReader("\ufeffClient ID,Accrual Date,Bonus Amount\n1,2024-01-01,10\n")

	got, err := ReadDataset("excel.csv", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Client ID", "Accrual Date", "Bonus Amount"}, got.Columns)
	assert.Equal(t, "excel.csv", got.Name)
}

func TestReadDataset_ByteOrderMarkBeforeQuotedHeader(t *testing.T) {
	src := strings.NewReader("\ufeff\"Client ID\",\"Accrual Date\",\"Bonus Amount\"\n1,2024-01-01,10\n")

	got, err := ReadDataset("bom.csv", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Client ID", "Accrual Date", "Bonus Amount"}, got.Columns)
	assert.Equal(t, [][]string{{"1", "2024-01-01", "10"}}, got.Rows)
}

func TestReadDataset_ByteOrderMarkOnly(t *testing.T) {
	_, err := ReadDataset("bom.csv", strings.NewReader("\ufeff"))
	assert.Error(t, err)
}

func TestReadDataset_KeepsHeaderCase(t *testing.T) {
	src := strings.NewReader("Client ID,Accrual Date,bonus Amount\n")

	got, err := ReadDataset("drift.csv", src)
	require.NoError(t, err)
	assert.Equal(t, "bonus Amount", got.Columns[2])
}

// Helper functions

func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)

	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}

func createTempCSVFromLines(dir string, lines []string, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Benchmark tests

func BenchmarkGetDataset(b *testing.B) {
	data := [][]string{{"Client ID", "Accrual Date", "Bonus Amount"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{strconv.Itoa(i % 250), "2024-01-01", "150.00"})
	}

	tmpFile, err := createTempCSV(data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile)

	repo := NewCSVDatasetRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetDataset(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
