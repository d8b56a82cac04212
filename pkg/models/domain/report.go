package domain

// CalendarStats summarizes one calendar's share of a report.
type CalendarStats struct {
	Patients int
	Sessions int
}

// ReportSummary carries the headline numbers of a generated report.
type ReportSummary struct {
	Year          int
	Month         int
	TotalPatients int
	TotalSessions int
	CalendarCount int
	Calendars     map[string]CalendarStats
}

// GeneratedReport is the outcome of one report run: the file written and
// its summary.
type GeneratedReport struct {
	Path    string
	Summary ReportSummary
}
