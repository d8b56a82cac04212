package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	calendarhandlers "github.com/psy-tools/gcal-extractor/pkg/handlers/calendars"
	reporthandlers "github.com/psy-tools/gcal-extractor/pkg/handlers/reports"
	gcalxmiddleware "github.com/psy-tools/gcal-extractor/pkg/server/middleware"
	"github.com/psy-tools/gcal-extractor/pkg/services/config"
	"github.com/psy-tools/gcal-extractor/pkg/services/report"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Source    calendarhandlers.Lister
	Store     config.CalendarStore
	Generator report.Generator
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	calHandler := calendarhandlers.NewHandler(config.Dependencies.Source, config.Dependencies.Store)
	reportHandler := reporthandlers.NewHandler(config.Dependencies.Generator)

	router := chi.NewRouter()

	router.Use(gcalxmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendars", calHandler.ListCalendars)
		r.Get("/calendars/selected", calHandler.GetSelection)
		r.Put("/calendars/selected", calHandler.UpdateSelection)
		r.Post("/reports", reportHandler.GenerateReport)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
