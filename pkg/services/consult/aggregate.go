package consult

import (
	"fmt"
	"sort"
	"time"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// GroupEvents folds a flat event list into the two-level grouping
// calendar id -> patient name -> sessions. Events with no title field, no
// usable start, or an empty extracted name are skipped; everything else
// contributes exactly one session. The whole list is consumed in one pass
// and the result is read-only from then on.
func GroupEvents(events []domain.Event) domain.EventGroups {
	groups := domain.EventGroups{Calendars: make(map[string]*domain.CalendarGroup)}

	for _, ev := range events {
		if ev.Summary == nil {
			continue
		}

		date, ok := resolveStartDate(ev.Start)
		if !ok {
			continue
		}

		name, parent := ExtractPatientName(*ev.Summary)
		if name == "" {
			continue
		}

		cal, exists := groups.Calendars[ev.CalendarID]
		if !exists {
			// First writer wins: a later event reusing the id with a
			// different display name does not overwrite it.
			cal = &domain.CalendarGroup{
				CalendarName: ev.CalendarName,
				Patients:     make(map[string]*domain.PatientGroup),
			}
			groups.Calendars[ev.CalendarID] = cal
			groups.Order = append(groups.Order, ev.CalendarID)
		}

		patient, exists := cal.Patients[name]
		if !exists {
			patient = &domain.PatientGroup{}
			cal.Patients[name] = patient
		}

		patient.Sessions = append(patient.Sessions, domain.Session{
			Date:          date,
			Title:         *ev.Summary,
			ParentSession: parent,
		})
		patient.TotalSessions++
	}

	return groups
}

// resolveStartDate formats the event's start moment as DD/MM/YYYY. Timed
// events carry an RFC 3339 timestamp (a trailing Z is treated as UTC);
// all-day events carry a bare date. The moment's own date components are
// used as-is, with no timezone conversion.
func resolveStartDate(start domain.EventStart) (string, bool) {
	switch {
	case start.DateTime != "":
		t, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return "", false
		}
		return t.Format(domain.DateLayout), true
	case start.Date != "":
		t, err := time.Parse("2006-01-02", start.Date)
		if err != nil {
			return "", false
		}
		return t.Format(domain.DateLayout), true
	default:
		return "", false
	}
}

// Totals projects the grouped events into one row per (calendar, patient)
// pair, sorted ascending by calendar display name, then patient name.
func Totals(groups domain.EventGroups) []domain.TotalsRow {
	var rows []domain.TotalsRow
	for _, cal := range groups.Calendars {
		for name, patient := range cal.Patients {
			rows = append(rows, domain.TotalsRow{
				Calendar: cal.CalendarName,
				Patient:  name,
				Total:    patient.TotalSessions,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Calendar != rows[j].Calendar {
			return rows[i].Calendar < rows[j].Calendar
		}
		return rows[i].Patient < rows[j].Patient
	})

	return rows
}

// Detail projects the grouped events into per-calendar patient columns.
// Each patient's sessions are split into regular and parent partitions,
// each non-empty partition becomes one column with chronologically sorted
// dates, and a calendar's columns are sorted by label. Calendars appear
// in the order the grouping step first saw them.
func Detail(groups domain.EventGroups) ([]domain.CalendarDetail, error) {
	details := make([]domain.CalendarDetail, 0, len(groups.Order))

	for _, id := range groups.Order {
		cal := groups.Calendars[id]
		detail := domain.CalendarDetail{Calendar: cal.CalendarName}

		for name, patient := range cal.Patients {
			var regular, parent []string
			for _, s := range patient.Sessions {
				if s.ParentSession {
					parent = append(parent, s.Date)
				} else {
					regular = append(regular, s.Date)
				}
			}

			if len(regular) > 0 {
				if err := sortDates(regular); err != nil {
					return nil, err
				}
				detail.Columns = append(detail.Columns, domain.PatientColumn{
					Label: name,
					Dates: regular,
				})
			}
			if len(parent) > 0 {
				if err := sortDates(parent); err != nil {
					return nil, err
				}
				detail.Columns = append(detail.Columns, domain.PatientColumn{
					Label: ParentPrefix + name,
					Dates: parent,
				})
			}
		}

		sort.Slice(detail.Columns, func(i, j int) bool {
			return detail.Columns[i].Label < detail.Columns[j].Label
		})

		details = append(details, detail)
	}

	return details, nil
}

// sortDates orders DD/MM/YYYY strings chronologically. A string that does
// not parse with the fixed layout is an internal defect and surfaces as
// an error instead of being swallowed.
func sortDates(dates []string) error {
	parsed := make([]time.Time, len(dates))
	for i, d := range dates {
		t, err := time.Parse(domain.DateLayout, d)
		if err != nil {
			return fmt.Errorf("malformed session date %q: %w", d, err)
		}
		parsed[i] = t
	}

	sort.Sort(&byDate{dates: dates, parsed: parsed})
	return nil
}

type byDate struct {
	dates  []string
	parsed []time.Time
}

func (b *byDate) Len() int           { return len(b.dates) }
func (b *byDate) Less(i, j int) bool { return b.parsed[i].Before(b.parsed[j]) }
func (b *byDate) Swap(i, j int) {
	b.dates[i], b.dates[j] = b.dates[j], b.dates[i]
	b.parsed[i], b.parsed[j] = b.parsed[j], b.parsed[i]
}
