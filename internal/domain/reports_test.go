package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFraction(t *testing.T) {
	tests := []struct {
		num, den int
		want     Fraction
	}{
		{57, 200, Fraction{Value: 0.29, Valid: true}},
		{29, 200, Fraction{Value: 0.15, Valid: true}},
		{1, 8, Fraction{Value: 0.13, Valid: true}},
		{1, 3, Fraction{Value: 0.33, Valid: true}},
		{2, 3, Fraction{Value: 0.67, Valid: true}},
		{4, 4, Fraction{Value: 1, Valid: true}},
		{0, 5, Fraction{Value: 0, Valid: true}},
		{3, 0, Fraction{}},
	}

	for _, tt := range tests {
		got := NewFraction(tt.num, tt.den)
		assert.Equal(t, tt.want, got, "NewFraction(%d, %d)", tt.num, tt.den)
	}
	assert.Equal(t, "0.29", NewFraction(57, 200).String())
}

func TestComparisonReport_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		report  ComparisonReport
		present string
		absent  []string
	}{
		{
			name:    "empty join",
			report:  ComparisonReport{Mode: ModeJoin, Joined: []JoinedRow{}},
			present: "joined",
			absent:  []string{"common_rows", "classified"},
		},
		{
			name:    "nil common rows",
			report:  ComparisonReport{Mode: ModeCommonRows},
			present: "common_rows",
			absent:  []string{"classified", "joined"},
		},
		{
			name:    "nil classification",
			report:  ComparisonReport{Mode: ModeClassification},
			present: "classified",
			absent:  []string{"common_rows", "joined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(&tt.report)
			require.NoError(t, err)

			var got map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &got))

			assert.JSONEq(t, "[]", string(got[tt.present]))
			for _, key := range tt.absent {
				assert.NotContains(t, got, key)
			}
			assert.JSONEq(t, `"`+string(tt.report.Mode)+`"`, string(got["mode"]))
			assert.Contains(t, got, "summary")
			assert.NotContains(t, got, "report_id")
		})
	}
}

func TestComparisonReport_MarshalJSONRows(t *testing.T) {
	report := ComparisonReport{
		ReportID: "r-1",
		Mode:     ModeClassification,
		Classified: []ClassifiedID{
			{ClientID: "7", Origin: OriginBoth},
		},
		Summary: ComparisonSummary{CommonIDCount: 1, UnionIDCount: 1, CommonFraction: NewFraction(1, 1)},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"report_id": "r-1",
		"mode": "classification",
		"classified": [{"client_id": "7", "origin": "Both"}],
		"summary": {
			"dataset_a": "", "dataset_b": "",
			"common_id_count": 1, "only_a_count": 0, "only_b_count": 0,
			"union_id_count": 1, "common_fraction": 1
		}
	}`, string(data))
}
