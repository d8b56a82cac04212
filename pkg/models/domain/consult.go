package domain

// DateLayout is the fixed textual form every session date is stored in.
// Detail sorting re-parses dates with this exact layout; anything else in
// the record stream is a defect, not a supported input.
const DateLayout = "02/01/2006"

// Session is one occurrence of a patient consultation, created one-to-one
// from an event that yielded a non-empty patient name.
type Session struct {
	Date          string // DD/MM/YYYY
	Title         string
	ParentSession bool
}

// PatientGroup accumulates the sessions of one patient within a calendar.
// Sessions are kept in arrival order; TotalSessions always equals
// len(Sessions) once aggregation finishes.
type PatientGroup struct {
	TotalSessions int
	Sessions      []Session
}

// CalendarGroup holds the patients of one calendar. The display name is
// taken from the first event seen for the calendar id (first-writer-wins).
type CalendarGroup struct {
	CalendarName string
	Patients     map[string]*PatientGroup
}

// EventGroups is the grouped form of a full event list: calendar id ->
// calendar group. Order records calendar ids in first-seen order so that
// projections can traverse deterministically.
type EventGroups struct {
	Calendars map[string]*CalendarGroup
	Order     []string
}

// Empty reports whether aggregation produced no groups at all.
func (g EventGroups) Empty() bool {
	return len(g.Calendars) == 0
}

// TotalsRow is one row of the totals projection: a (calendar, patient)
// pair with its total session count.
type TotalsRow struct {
	Calendar string
	Patient  string
	Total    int
}

// PatientColumn is one column of the detail projection: a patient-facing
// label with its chronologically sorted consultation dates. A single
// patient produces at most two columns, the second labelled with the
// parent prefix.
type PatientColumn struct {
	Label string
	Dates []string
}

// CalendarDetail lists the patient columns of one calendar, sorted by
// label.
type CalendarDetail struct {
	Calendar string
	Columns  []PatientColumn
}
