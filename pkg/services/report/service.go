package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
	"github.com/psy-tools/gcal-extractor/pkg/services/consult"
)

// ErrNoConsultations marks the empty-result terminal state: the month had
// no events that survived aggregation. Callers inform the user instead of
// writing an empty report.
var ErrNoConsultations = errors.New("no consultations found for the requested period")

// EventSource supplies the flattened event list for a month window.
type EventSource interface {
	MonthEvents(ctx context.Context, calendars []domain.Calendar, year int, month time.Month) ([]domain.Event, error)
}

// SelectionStore exposes the calendars the user chose to report on.
type SelectionStore interface {
	Selected(ctx context.Context) ([]domain.Calendar, error)
}

// FileWriter serializes the two laid-out tables into a report file and
// returns the written path.
type FileWriter interface {
	Write(totals TotalsTable, detail DetailGrid, year int, month time.Month) (string, error)
}

// Generator runs the full report pipeline for one (year, month).
type Generator interface {
	Generate(ctx context.Context, year int, month time.Month) (*domain.GeneratedReport, error)
}

type generator struct {
	source EventSource
	store  SelectionStore
	writer FileWriter
}

// NewGenerator creates a report generator over the given collaborators.
func NewGenerator(source EventSource, store SelectionStore, writer FileWriter) Generator {
	return &generator{
		source: source,
		store:  store,
		writer: writer,
	}
}

func (g *generator) Generate(ctx context.Context, year int, month time.Month) (*domain.GeneratedReport, error) {
	logger := zerolog.Ctx(ctx)

	calendars, err := g.store.Selected(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar selection: %w", err)
	}
	if len(calendars) == 0 {
		return nil, fmt.Errorf("no calendars selected, configure a selection first")
	}

	events, err := g.source.MonthEvents(ctx, calendars, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	groups := consult.GroupEvents(events)
	if groups.Empty() {
		return nil, ErrNoConsultations
	}

	totals := consult.Totals(groups)
	details, err := consult.Detail(groups)
	if err != nil {
		return nil, err
	}

	path, err := g.writer.Write(BuildTotalsTable(totals), BuildDetailGrid(details), year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	summary := Summarize(year, month, totals, details)
	logger.Info().
		Str("path", path).
		Int("patients", summary.TotalPatients).
		Int("sessions", summary.TotalSessions).
		Msg("report generated")

	return &domain.GeneratedReport{Path: path, Summary: summary}, nil
}
