package gcal

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// EventSource exposes the Google Calendar boundary: calendar discovery
// and flattened month-window event listing.
type EventSource interface {
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)
	MonthEvents(ctx context.Context, calendars []domain.Calendar, year int, month time.Month) ([]domain.Event, error)
}

type calendarSource struct {
	svc *calendar.Service
}

// NewEventSource builds an event source over the Calendar API using the
// given token source.
func NewEventSource(ctx context.Context, ts oauth2.TokenSource) (EventSource, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &calendarSource{svc: svc}, nil
}

func (s *calendarSource) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	var calendars []domain.Calendar

	pageToken := ""
	for {
		call := s.svc.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendars: %w", err)
		}

		for _, item := range resp.Items {
			name := item.Summary
			if name == "" {
				name = "Unnamed Calendar"
			}
			calendars = append(calendars, domain.Calendar{
				ID:         item.Id,
				Name:       name,
				Primary:    item.Primary,
				AccessRole: item.AccessRole,
			})
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return calendars, nil
}

// MonthEvents lists every event of the given calendars whose start falls
// in the requested month and flattens them into domain events carrying
// their calendar's identity. Recurring events are delivered expanded by
// the remote.
func (s *calendarSource) MonthEvents(
	ctx context.Context,
	calendars []domain.Calendar,
	year int,
	month time.Month,
) ([]domain.Event, error) {
	logger := zerolog.Ctx(ctx)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var events []domain.Event
	for _, cal := range calendars {
		pageToken := ""
		for {
			call := s.svc.Events.List(cal.ID).
				TimeMin(start.Format(time.RFC3339)).
				TimeMax(end.Format(time.RFC3339)).
				SingleEvents(true).
				OrderBy("startTime").
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			resp, err := call.Do()
			if err != nil {
				return nil, fmt.Errorf("failed to list events for calendar %q: %w", cal.ID, err)
			}

			for _, item := range resp.Items {
				events = append(events, flattenEvent(cal, item))
			}

			pageToken = resp.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}

	logger.Debug().
		Int("events", len(events)).
		Int("calendars", len(calendars)).
		Int("year", year).
		Int("month", int(month)).
		Msg("fetched month events")

	return events, nil
}

// flattenEvent maps one API event onto the domain shape. The wire format
// omits the summary key for untitled events, so an empty API summary
// becomes a nil title.
func flattenEvent(cal domain.Calendar, item *calendar.Event) domain.Event {
	ev := domain.Event{
		CalendarID:   cal.ID,
		CalendarName: cal.Name,
	}
	if item.Summary != "" {
		summary := item.Summary
		ev.Summary = &summary
	}
	if item.Start != nil {
		ev.Start = domain.EventStart{
			DateTime: item.Start.DateTime,
			Date:     item.Start.Date,
		}
	}
	return ev
}
