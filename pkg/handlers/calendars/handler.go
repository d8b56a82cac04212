package calendars

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/psy-tools/gcal-extractor/pkg/adapters"
	"github.com/psy-tools/gcal-extractor/pkg/models/api"
	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
	"github.com/psy-tools/gcal-extractor/pkg/services/config"
)

// Lister is the slice of the event source the calendar endpoints need.
type Lister interface {
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)
}

type Handler struct {
	source Lister
	store  config.CalendarStore
}

func NewHandler(source Lister, store config.CalendarStore) *Handler {
	return &Handler{source: source, store: store}
}

// ListCalendars returns every calendar visible to the authenticated
// account.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	calendars, err := h.source.ListCalendars(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list calendars")
		http.Error(w, "failed to list calendars", http.StatusBadGateway)
		return
	}

	writeJSON(w, logger, adapters.MapCalendarsDomainToApi(calendars))
}

// GetSelection returns the calendars currently selected for reports.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	selection, err := h.store.Selected(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load calendar selection")
		http.Error(w, "failed to load calendar selection", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapCalendarsDomainToApi(selection))
}

// UpdateSelection replaces the selected calendars with the posted ids.
// Display names are resolved against the live calendar list; an id the
// account no longer sees keeps a placeholder name.
func (h *Handler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var body api.CalendarSelection
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid selection payload", http.StatusBadRequest)
		return
	}

	available, err := h.source.ListCalendars(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list calendars")
		http.Error(w, "failed to list calendars", http.StatusBadGateway)
		return
	}

	names := make(map[string]string, len(available))
	for _, cal := range available {
		names[cal.ID] = cal.Name
	}

	selection := make([]domain.Calendar, 0, len(body.Ids))
	for _, id := range body.Ids {
		name, ok := names[id]
		if !ok {
			name = "Unknown Calendar"
		}
		selection = append(selection, domain.Calendar{ID: id, Name: name})
	}

	if err := h.store.Save(ctx, selection); err != nil {
		logger.Error().Err(err).Msg("failed to save calendar selection")
		http.Error(w, "failed to save calendar selection", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapCalendarsDomainToApi(selection))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
