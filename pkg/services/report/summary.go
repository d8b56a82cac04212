package report

import (
	"time"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// Summarize derives the headline numbers of a report from its two
// projections. Per-calendar patient counts follow the detail projection,
// so a patient with both regular and parent sessions counts once per
// column there.
func Summarize(year int, month time.Month, totals []domain.TotalsRow, details []domain.CalendarDetail) domain.ReportSummary {
	summary := domain.ReportSummary{
		Year:          year,
		Month:         int(month),
		TotalPatients: len(totals),
		CalendarCount: len(details),
		Calendars:     make(map[string]domain.CalendarStats, len(details)),
	}

	for _, row := range totals {
		summary.TotalSessions += row.Total
	}

	for _, cal := range details {
		stats := domain.CalendarStats{Patients: len(cal.Columns)}
		for _, col := range cal.Columns {
			stats.Sessions += len(col.Dates)
		}
		summary.Calendars[cal.Calendar] = stats
	}

	return summary
}
