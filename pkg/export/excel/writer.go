package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/psy-tools/gcal-extractor/pkg/services/report"
)

const (
	totalsSheet = "totales"
	detailSheet = "detalle"

	totalsHeaderFill = "E6E6FA"
	patientFill      = "FFE4B5"
	calendarFill     = "D3D3D3"
)

// Writer serializes laid-out report tables into a timestamped XLSX file
// under a reports directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a writer targeting dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// Write renders both sheets and saves the workbook. The file name encodes
// the requested year, month and a generation timestamp.
func (w *Writer) Write(totals report.TotalsTable, detail report.DetailGrid, year int, month time.Month) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeTotals(f, totals); err != nil {
		return "", fmt.Errorf("failed to build %s sheet: %w", totalsSheet, err)
	}
	if err := w.writeDetail(f, detail); err != nil {
		return "", fmt.Errorf("failed to build %s sheet: %w", detailSheet, err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	name := fmt.Sprintf("report_%04d_%02d_%s.xlsx", year, int(month), w.now().Format("20060102_150405"))
	path := filepath.Join(w.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	return path, nil
}

func (w *Writer) writeTotals(f *excelize.File, table report.TotalsTable) error {
	if err := f.SetSheetName("Sheet1", totalsSheet); err != nil {
		return err
	}

	style, err := headerStyle(f, totalsHeaderFill)
	if err != nil {
		return err
	}

	widths := make([]int, len(table.Header))
	for col, header := range table.Header {
		if err := setCell(f, totalsSheet, col+1, 1, header); err != nil {
			return err
		}
		widths[col] = len(header)
	}
	if err := f.SetCellStyle(totalsSheet, "A1", "C1", style); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cells := [3]string{row.Calendar, row.Patient, strconv.Itoa(row.Total)}
		if err := setCell(f, totalsSheet, 1, i+2, row.Calendar); err != nil {
			return err
		}
		if err := setCell(f, totalsSheet, 2, i+2, row.Patient); err != nil {
			return err
		}
		if err := setCell(f, totalsSheet, 3, i+2, row.Total); err != nil {
			return err
		}
		for col, v := range cells {
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
	}

	for col, width := range widths {
		if err := setColWidth(f, totalsSheet, col+1, clamp(width+2, 0, 50)); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeDetail(f *excelize.File, grid report.DetailGrid) error {
	if _, err := f.NewSheet(detailSheet); err != nil {
		return err
	}

	labelStyle, err := headerStyle(f, patientFill)
	if err != nil {
		return err
	}
	bandStyle, err := headerStyle(f, calendarFill)
	if err != nil {
		return err
	}

	widths := make([]int, len(grid.Labels))
	for col, label := range grid.Labels {
		if err := setCell(f, detailSheet, col+1, 1, label); err != nil {
			return err
		}
		if err := styleCell(f, detailSheet, col+1, 1, labelStyle); err != nil {
			return err
		}
		widths[col] = len(label)
	}

	for _, band := range grid.Bands {
		start, err := excelize.CoordinatesToCellName(band.StartCol, 2)
		if err != nil {
			return err
		}
		end := start
		if band.Span > 1 {
			end, err = excelize.CoordinatesToCellName(band.StartCol+band.Span-1, 2)
			if err != nil {
				return err
			}
			if err := f.MergeCell(detailSheet, start, end); err != nil {
				return err
			}
		}
		if err := f.SetCellValue(detailSheet, start, band.Calendar); err != nil {
			return err
		}
		if err := f.SetCellStyle(detailSheet, start, end, bandStyle); err != nil {
			return err
		}
	}

	for col, dates := range grid.Columns {
		for row, date := range dates {
			if err := setCell(f, detailSheet, col+1, row+3, date); err != nil {
				return err
			}
			if len(date) > widths[col] {
				widths[col] = len(date)
			}
		}
	}

	for col, width := range widths {
		if err := setColWidth(f, detailSheet, col+1, clamp(width+2, 12, 20)); err != nil {
			return err
		}
	}

	return nil
}

func headerStyle(f *excelize.File, fill string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func styleCell(f *excelize.File, sheet string, col, row int, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func setColWidth(f *excelize.File, sheet string, col int, width int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, name, name, float64(width))
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
