package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// CalendarStore persists which calendars the user selected for reports.
type CalendarStore interface {
	// Selected returns the current selection. A missing config file is an
	// empty selection, not an error.
	Selected(ctx context.Context) ([]domain.Calendar, error)
	Save(ctx context.Context, calendars []domain.Calendar) error
	Clear(ctx context.Context) error
}

type selectedCalendar struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type selectionFile struct {
	SelectedCalendars []selectedCalendar `json:"selected_calendars"`
}

type fileCalendarStore struct {
	path string
}

// NewCalendarStore creates a store backed by a JSON file at path.
func NewCalendarStore(path string) CalendarStore {
	return &fileCalendarStore{path: path}
}

func (s *fileCalendarStore) Selected(_ context.Context) ([]domain.Calendar, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar selection: %w", err)
	}

	var file selectionFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse calendar selection: %w", err)
	}

	calendars := make([]domain.Calendar, 0, len(file.SelectedCalendars))
	for _, c := range file.SelectedCalendars {
		calendars = append(calendars, domain.Calendar{ID: c.Id, Name: c.Name})
	}
	return calendars, nil
}

func (s *fileCalendarStore) Save(_ context.Context, calendars []domain.Calendar) error {
	file := selectionFile{SelectedCalendars: make([]selectedCalendar, 0, len(calendars))}
	for _, c := range calendars {
		file.SelectedCalendars = append(file.SelectedCalendars, selectedCalendar{Id: c.ID, Name: c.Name})
	}

	b, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode calendar selection: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write calendar selection: %w", err)
	}
	return nil
}

func (s *fileCalendarStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear calendar selection: %w", err)
	}
	return nil
}
