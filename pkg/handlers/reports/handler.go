package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/psy-tools/gcal-extractor/pkg/adapters"
	"github.com/psy-tools/gcal-extractor/pkg/models/api"
	"github.com/psy-tools/gcal-extractor/pkg/services/report"
)

type Handler struct {
	generator report.Generator
}

func NewHandler(generator report.Generator) *Handler {
	return &Handler{generator: generator}
}

// GenerateReport runs the report pipeline for the year and month given as
// query parameters. A month with no consultations is a normal outcome and
// reports generated=false rather than an error.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	year, err := parseIntParam(r, "year", 1, 9999)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	month, err := parseIntParam(r, "month", 1, 12)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	generated, err := h.generator.Generate(ctx, year, time.Month(month))
	if errors.Is(err, report.ErrNoConsultations) {
		writeJSON(w, logger, api.ReportResult{
			Generated: false,
			Message:   err.Error(),
		})
		return
	}
	if err != nil {
		logger.Error().Err(err).Int("year", year).Int("month", month).Msg("report generation failed")
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}

	summary := adapters.MapReportSummaryDomainToApi(generated.Summary)
	writeJSON(w, logger, api.ReportResult{
		Generated: true,
		Path:      generated.Path,
		Summary:   &summary,
	})
}

func parseIntParam(r *http.Request, name string, min, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing required parameter " + name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, errors.New("invalid value for parameter " + name)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
