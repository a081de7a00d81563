// Package report exports a float run and its update batch as a workbook.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	FloatSheet = "Float"
	RunSheet   = "Run"
)

var floatHeader = []string{"Seq", "Row", "Row ID", "Bucket", "Float"}

// WriteXLSX writes run and its updates, in emission order, to w. Updates
// without a value leave the Float cell blank.
func WriteXLSX(w io.Writer, run *domain.Run, updates []domain.FloatUpdate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FloatSheet); err != nil {
		return fmt.Errorf("naming float sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range floatHeader {
		if err := setCell(f, FloatSheet, i+1, 1, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(floatHeader), 1)
	if err := f.SetCellStyle(FloatSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, u := range updates {
		row := i + 2
		values := []any{i + 1, u.RowNumber, u.RowID, string(u.Bucket)}
		if u.Value != nil {
			values = append(values, *u.Value)
		}
		for col, v := range values {
			if err := setCell(f, FloatSheet, col+1, row, v); err != nil {
				return err
			}
		}
	}
	if err := f.SetPanes(FloatSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if run != nil {
		if err := writeRunSheet(f, run, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRunSheet(f *excelize.File, run *domain.Run, style int) error {
	if _, err := f.NewSheet(RunSheet); err != nil {
		return fmt.Errorf("adding run sheet: %w", err)
	}

	completion := ""
	if run.CompletionDate != nil {
		completion = calendar.Format(*run.CompletionDate)
	}
	fields := [][2]any{
		{"Run ID", run.ID},
		{"Sheet ID", run.SheetID},
		{"Status", string(run.Status)},
		{"Completion", completion},
		{"Critical", run.Counts.Critical},
		{"Connected", run.Counts.Connected},
		{"Isolated", run.Counts.Isolated},
		{"Updates", run.Counts.Updates},
		{"Started", run.StartedAt.UTC().Format(time.RFC3339)},
		{"Error", run.Error},
	}
	for i, kv := range fields {
		if err := setCell(f, RunSheet, 1, i+1, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, RunSheet, 2, i+1, kv[1]); err != nil {
			return err
		}
	}
	end, _ := excelize.CoordinatesToCellName(1, len(fields))
	if err := f.SetCellStyle(RunSheet, "A1", end, style); err != nil {
		return fmt.Errorf("styling run labels: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("setting %s!%s: %w", sheet, cell, err)
	}
	return nil
}
