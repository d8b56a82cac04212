package adapters

import (
	"github.com/psy-tools/gcal-extractor/pkg/models/api"
	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

func MapReportSummaryDomainToApi(summary domain.ReportSummary) api.ReportSummary {
	out := api.ReportSummary{
		Year:          summary.Year,
		Month:         summary.Month,
		TotalPatients: summary.TotalPatients,
		TotalSessions: summary.TotalSessions,
		CalendarCount: summary.CalendarCount,
	}
	if len(summary.Calendars) > 0 {
		out.Calendars = make(map[string]api.CalendarStats, len(summary.Calendars))
		for name, stats := range summary.Calendars {
			out.Calendars[name] = api.CalendarStats{
				Patients: stats.Patients,
				Sessions: stats.Sessions,
			}
		}
	}
	return out
}
