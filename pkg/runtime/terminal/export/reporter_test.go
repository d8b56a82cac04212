package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

func TestReporterHandle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(&domain.GeneratedReport{
		Path: "reports/report_2024_01_20240201_120000.xlsx",
		Summary: domain.ReportSummary{
			Year:          2024,
			Month:         1,
			TotalPatients: 3,
			TotalSessions: 5,
			CalendarCount: 2,
			Calendars: map[string]domain.CalendarStats{
				"Clinic": {Patients: 2, Sessions: 4},
				"Annex":  {Patients: 1, Sessions: 1},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Consultation report 2024-01")
	assert.Contains(t, out, "reports/report_2024_01_20240201_120000.xlsx")
	assert.Contains(t, out, "Patients:  3")
	assert.Contains(t, out, "Sessions:  5")
	assert.Contains(t, out, "=== Clinic ===")
	assert.Contains(t, out, "2 patient(s), 4 session(s)")
}
