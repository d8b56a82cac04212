package domain

// Calendar identifies one calendar source the user can include in a report.
type Calendar struct {
	ID         string
	Name       string
	Primary    bool
	AccessRole string
}

// EventStart carries the start moment of an event as delivered by the
// source. Timed events set DateTime (RFC 3339); all-day events set Date
// (YYYY-MM-DD). Both empty means the event has no usable start.
type EventStart struct {
	DateTime string
	Date     string
}

// Event is one raw calendar event, flattened with the identity of the
// calendar it was listed from. Summary is nil when the event carries no
// title field at all, which is distinct from an empty title.
type Event struct {
	CalendarID   string
	CalendarName string
	Summary      *string
	Start        EventStart
}
