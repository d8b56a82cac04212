package consult

import (
	"testing"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedEvent(calID, calName, title, startDateTime string) domain.Event {
	return domain.Event{
		CalendarID:   calID,
		CalendarName: calName,
		Summary:      &title,
		Start:        domain.EventStart{DateTime: startDateTime},
	}
}

func allDayEvent(calID, calName, title, startDate string) domain.Event {
	return domain.Event{
		CalendarID:   calID,
		CalendarName: calName,
		Summary:      &title,
		Start:        domain.EventStart{Date: startDate},
	}
}

func TestGroupEvents(t *testing.T) {
	events := []domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-05T10:00:00Z"),
		timedEvent("c1", "Clinic", "padres de Sofia M", "2024-01-10T10:00:00Z"),
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-20T10:00:00Z"),
	}

	groups := GroupEvents(events)

	require.Len(t, groups.Calendars, 1)
	cal := groups.Calendars["c1"]
	require.NotNil(t, cal)
	assert.Equal(t, "Clinic", cal.CalendarName)
	require.Len(t, cal.Patients, 2)

	juan := cal.Patients["Juan Perez"]
	require.NotNil(t, juan)
	assert.Equal(t, 2, juan.TotalSessions)
	require.Len(t, juan.Sessions, 2)
	assert.Equal(t, "05/01/2024", juan.Sessions[0].Date)
	assert.Equal(t, "20/01/2024", juan.Sessions[1].Date)
	assert.False(t, juan.Sessions[0].ParentSession)

	sofia := cal.Patients["Sofia M"]
	require.NotNil(t, sofia)
	assert.Equal(t, 1, sofia.TotalSessions)
	require.Len(t, sofia.Sessions, 1)
	assert.Equal(t, "10/01/2024", sofia.Sessions[0].Date)
	assert.True(t, sofia.Sessions[0].ParentSession)
	assert.Equal(t, "padres de Sofia M", sofia.Sessions[0].Title)
}

func TestGroupEventsSkipsStructuralGaps(t *testing.T) {
	empty := ""
	events := []domain.Event{
		// No title field at all.
		{CalendarID: "c1", CalendarName: "Clinic", Start: domain.EventStart{Date: "2024-01-05"}},
		// Empty title.
		{CalendarID: "c1", CalendarName: "Clinic", Summary: &empty, Start: domain.EventStart{Date: "2024-01-06"}},
		// No usable start.
		timedEvent("c1", "Clinic", "Juan Perez", ""),
		// Unparseable start.
		timedEvent("c1", "Clinic", "Juan Perez", "not-a-timestamp"),
		// Survivor.
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-07T09:00:00Z"),
	}

	groups := GroupEvents(events)

	require.Len(t, groups.Calendars, 1)
	juan := groups.Calendars["c1"].Patients["Juan Perez"]
	require.NotNil(t, juan)
	assert.Equal(t, 1, juan.TotalSessions)
}

func TestGroupEventsAllDayAndTimedSameDay(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-03-15T16:30:00Z"),
		allDayEvent("c1", "Clinic", "Juan Perez", "2024-03-15"),
	})

	juan := groups.Calendars["c1"].Patients["Juan Perez"]
	require.NotNil(t, juan)
	require.Len(t, juan.Sessions, 2)
	assert.Equal(t, juan.Sessions[0].Date, juan.Sessions[1].Date)
	assert.Equal(t, "15/03/2024", juan.Sessions[0].Date)
}

func TestGroupEventsFirstCalendarNameWins(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-05T10:00:00Z"),
		timedEvent("c1", "Renamed Clinic", "Ana Ruiz", "2024-01-06T10:00:00Z"),
	})

	assert.Equal(t, "Clinic", groups.Calendars["c1"].CalendarName)
}

func TestGroupEventsTracksCalendarOrder(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c2", "Second", "Ana Ruiz", "2024-01-05T10:00:00Z"),
		timedEvent("c1", "First", "Juan Perez", "2024-01-06T10:00:00Z"),
		timedEvent("c2", "Second", "Ana Ruiz", "2024-01-07T10:00:00Z"),
	})

	assert.Equal(t, []string{"c2", "c1"}, groups.Order)
}

func TestTotals(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c2", "Beta", "zoe", "2024-01-05T10:00:00Z"),
		timedEvent("c1", "Alpha", "maria", "2024-01-06T10:00:00Z"),
		timedEvent("c2", "Beta", "ana", "2024-01-07T10:00:00Z"),
		timedEvent("c2", "Beta", "zoe", "2024-01-08T10:00:00Z"),
		timedEvent("c2", "Beta", "Padres de zoe", "2024-01-09T10:00:00Z"),
	})

	rows := Totals(groups)

	assert.Equal(t, []domain.TotalsRow{
		{Calendar: "Alpha", Patient: "Maria", Total: 1},
		{Calendar: "Beta", Patient: "Ana", Total: 1},
		{Calendar: "Beta", Patient: "Zoe", Total: 3},
	}, rows)
}

func TestTotalsSumMatchesSurvivingEvents(t *testing.T) {
	empty := ""
	events := []domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-05T10:00:00Z"),
		timedEvent("c1", "Clinic", "padres de Sofia M", "2024-01-10T10:00:00Z"),
		allDayEvent("c2", "Other", "Ana Ruiz", "2024-01-11"),
		{CalendarID: "c1", CalendarName: "Clinic", Start: domain.EventStart{Date: "2024-01-12"}},
		{CalendarID: "c1", CalendarName: "Clinic", Summary: &empty, Start: domain.EventStart{Date: "2024-01-13"}},
	}

	rows := Totals(GroupEvents(events))

	sum := 0
	for _, r := range rows {
		sum += r.Total
	}
	assert.Equal(t, 3, sum)
}

func TestDetail(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-20T10:00:00Z"),
		timedEvent("c1", "Clinic", "padres de Sofia M", "2024-01-10T10:00:00Z"),
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-05T10:00:00Z"),
	})

	details, err := Detail(groups)
	require.NoError(t, err)

	require.Len(t, details, 1)
	assert.Equal(t, "Clinic", details[0].Calendar)
	assert.Equal(t, []domain.PatientColumn{
		{Label: "Juan Perez", Dates: []string{"05/01/2024", "20/01/2024"}},
		{Label: "Padres de Sofia M", Dates: []string{"10/01/2024"}},
	}, details[0].Columns)
}

func TestDetailSplitsParentSessions(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Sofia M", "2024-02-01T10:00:00Z"),
		timedEvent("c1", "Clinic", "Padres de Sofia M", "2024-01-15T10:00:00Z"),
		timedEvent("c1", "Clinic", "Sofia M", "2024-01-02T10:00:00Z"),
	})

	details, err := Detail(groups)
	require.NoError(t, err)

	require.Len(t, details[0].Columns, 2)
	assert.Equal(t, "Padres de Sofia M", details[0].Columns[0].Label)
	assert.Equal(t, []string{"15/01/2024"}, details[0].Columns[0].Dates)
	assert.Equal(t, "Sofia M", details[0].Columns[1].Label)
	assert.Equal(t, []string{"02/01/2024", "01/02/2024"}, details[0].Columns[1].Dates)
}

func TestDetailDatesSortChronologically(t *testing.T) {
	// Lexicographic order on DD/MM/YYYY would put 02/01 before 15/12 of the
	// previous year; chronological order must not.
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Juan Perez", "2024-01-02T10:00:00Z"),
		timedEvent("c1", "Clinic", "Juan Perez", "2023-12-15T10:00:00Z"),
	})

	details, err := Detail(groups)
	require.NoError(t, err)
	assert.Equal(t, []string{"15/12/2023", "02/01/2024"}, details[0].Columns[0].Dates)
}

func TestDetailParentOnlyPatientHasSingleColumn(t *testing.T) {
	groups := GroupEvents([]domain.Event{
		timedEvent("c1", "Clinic", "Padres de Sofia M", "2024-01-15T10:00:00Z"),
	})

	details, err := Detail(groups)
	require.NoError(t, err)

	require.Len(t, details[0].Columns, 1)
	assert.Equal(t, "Padres de Sofia M", details[0].Columns[0].Label)
}

func TestDetailMalformedStoredDateFailsLoudly(t *testing.T) {
	groups := domain.EventGroups{
		Calendars: map[string]*domain.CalendarGroup{
			"c1": {
				CalendarName: "Clinic",
				Patients: map[string]*domain.PatientGroup{
					"Juan Perez": {
						TotalSessions: 1,
						Sessions:      []domain.Session{{Date: "2024-01-05", Title: "Juan Perez"}},
					},
				},
			},
		},
		Order: []string{"c1"},
	}

	_, err := Detail(groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed session date")
}
