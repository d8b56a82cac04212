package report

import (
	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// TotalsHeader is the fixed header row of the totals table.
var TotalsHeader = [3]string{"calendario", "nombre", "total"}

// TotalsTable is the laid-out totals projection: one header row and one
// data row per (calendar, patient) pair, in the projection's sort order.
type TotalsTable struct {
	Header [3]string
	Rows   []domain.TotalsRow
}

// BuildTotalsTable lays out the totals projection. Rows are consumed in
// the order supplied; the projection already sorted them.
func BuildTotalsTable(rows []domain.TotalsRow) TotalsTable {
	return TotalsTable{Header: TotalsHeader, Rows: rows}
}

// Band records the contiguous column run one calendar occupies in the
// detail grid. StartCol is 1-based; Span is the number of patient columns
// in the run.
type Band struct {
	Calendar string
	StartCol int
	Span     int
}

// DetailGrid is the banded detail layout. Labels holds the per-column
// patient labels (grid row 1), Bands the calendar spans (grid row 2), and
// Columns the per-column date lists whose entries fill rows 3 onward.
// The three slices are index-aligned on grid columns except Bands, which
// addresses columns through StartCol/Span.
type DetailGrid struct {
	Labels  []string
	Bands   []Band
	Columns [][]string
}

// Rows returns the total number of grid rows, the two header rows plus
// the longest date list. An empty grid has no rows at all.
func (g DetailGrid) Rows() int {
	if len(g.Columns) == 0 {
		return 0
	}
	max := 0
	for _, dates := range g.Columns {
		if len(dates) > max {
			max = len(dates)
		}
	}
	return 2 + max
}

// BuildDetailGrid lays out the detail projection. Calendars are processed
// in the order supplied; each contributes one grid column per patient
// column, contiguous and in the calendar's own column order. Calendars
// with no columns occupy no grid space and produce no band.
func BuildDetailGrid(details []domain.CalendarDetail) DetailGrid {
	var grid DetailGrid

	col := 1
	for _, cal := range details {
		if len(cal.Columns) == 0 {
			continue
		}

		grid.Bands = append(grid.Bands, Band{
			Calendar: cal.Calendar,
			StartCol: col,
			Span:     len(cal.Columns),
		})

		for _, pc := range cal.Columns {
			grid.Labels = append(grid.Labels, pc.Label)
			grid.Columns = append(grid.Columns, pc.Dates)
			col++
		}
	}

	return grid
}
