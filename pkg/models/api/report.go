package api

type CalendarStats struct {
	Patients int `json:"patients"`
	Sessions int `json:"sessions"`
}

type ReportSummary struct {
	Year          int                      `json:"year"`
	Month         int                      `json:"month"`
	TotalPatients int                      `json:"total_patients"`
	TotalSessions int                      `json:"total_sessions"`
	CalendarCount int                      `json:"calendar_count"`
	Calendars     map[string]CalendarStats `json:"calendars,omitempty"`
}

type ReportResult struct {
	Generated bool           `json:"generated"`
	Path      string         `json:"path,omitempty"`
	Message   string         `json:"message,omitempty"`
	Summary   *ReportSummary `json:"summary,omitempty"`
}
