package scheduler

import (
	"testing"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumns(t *testing.T) {
	cols, err := ResolveColumns(testutil.NewTestColumns(), "")
	require.NoError(t, err)
	assert.Equal(t, testColumns(), cols)
}

func TestResolveColumns_CustomFloatTitle(t *testing.T) {
	columns := testutil.NewTestColumns()
	columns = append(columns, domain.Column{ID: 900, Type: "TEXT_NUMBER", Title: "Total Float"})

	cols, err := ResolveColumns(columns, "Total Float")
	require.NoError(t, err)
	assert.Equal(t, int64(900), cols.Float)
}

func TestResolveColumns_Missing(t *testing.T) {
	tests := []struct {
		name string
		drop int64
		kind ColumnKind
	}{
		{"predecessor", testutil.ColPredecessor, ColumnPredecessor},
		{"start", testutil.ColStart, ColumnStartDate},
		{"end", testutil.ColEnd, ColumnEndDate},
		{"float", testutil.ColFloat, ColumnFloat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var columns []domain.Column
			for _, c := range testutil.NewTestColumns() {
				if c.ID != tt.drop {
					columns = append(columns, c)
				}
			}

			_, err := ResolveColumns(columns, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingColumn)

			var colErr *ColumnError
			require.ErrorAs(t, err, &colErr)
			assert.Equal(t, tt.kind, colErr.Kind)
		})
	}
}

func TestResolveColumns_Ambiguous(t *testing.T) {
	columns := append(testutil.NewTestColumns(),
		domain.Column{ID: 777, Type: "DATE", Title: "Baseline Start", Tags: []string{domain.TagGanttStartDate}})

	_, err := ResolveColumns(columns, "")
	assert.ErrorIs(t, err, ErrAmbiguousColumn)
	assert.Contains(t, err.Error(), "start date column")
}
