package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/queuebridge/surveyview/pkg/audit"
	"github.com/queuebridge/surveyview/pkg/survey/table"
)

// XLSXOptions holds options for export conversion
type XLSXOptions struct {
	InputFile  string
	OutputFile string
	SheetName  string
}

// ConvertResponsesToXLSX converts a response export to a spreadsheet
// with formatted headers. Extra export header rows are consumed during
// load, so the sheet holds one header row and clean data rows.
func ConvertResponsesToXLSX(ctx context.Context, logger audit.Logger, opts XLSXOptions) error {
	start := time.Now()

	tbl, err := table.Load(opts.InputFile)
	if err != nil {
		logger.Log(ctx, audit.NewEntry(audit.OpConvert, audit.StatusFailure).
			WithSource(opts.InputFile).
			WithError(err))
		return fmt.Errorf("failed to load responses: %w", err)
	}

	sheetName := opts.SheetName
	if sheetName == "" {
		sheetName = "Responses"
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Write headers
	for col, name := range tbl.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// Write data rows
	for rowIdx, row := range tbl.Rows {
		for col, name := range tbl.Columns {
			v := row.Values[name]
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	// Fixed column width keeps wide exports readable
	for col := range tbl.Columns {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			continue
		}
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	if err := f.SaveAs(opts.OutputFile); err != nil {
		logger.Log(ctx, audit.NewEntry(audit.OpConvert, audit.StatusFailure).
			WithSource(opts.InputFile).
			WithOutput(opts.OutputFile).
			WithError(err))
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}

	logger.Log(ctx, audit.NewEntry(audit.OpConvert, audit.StatusSuccess).
		WithSource(opts.InputFile).
		WithOutput(opts.OutputFile).
		WithFingerprint(tbl.Fingerprint).
		WithRecords(len(tbl.Rows)).
		WithDuration(time.Since(start)))

	fmt.Printf("XLSX: %s\n", opts.OutputFile)
	fmt.Printf("  Columns: %d\n", len(tbl.Columns))
	fmt.Printf("  Rows:    %d\n", len(tbl.Rows))
	return nil
}
