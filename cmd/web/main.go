package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/psy-tools/gcal-extractor/pkg/export/excel"
	"github.com/psy-tools/gcal-extractor/pkg/server"
	"github.com/psy-tools/gcal-extractor/pkg/services/config"
	"github.com/psy-tools/gcal-extractor/pkg/services/gcal"
	"github.com/psy-tools/gcal-extractor/pkg/services/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for GCal Extractor",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults and GCALX_* env vars apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	auth, err := gcal.NewAuthenticator(settings.CredentialsPath, settings.TokenPath)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	ts, err := auth.TokenSource(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated, run the cli login first: %w", err)
	}

	source, err := gcal.NewEventSource(ctx, ts)
	if err != nil {
		return fmt.Errorf("failed to connect to Google Calendar: %w", err)
	}

	store := config.NewCalendarStore(settings.CalendarsPath)
	generator := report.NewGenerator(source, store, excel.NewWriter(settings.ReportsDir))

	logger.Info().
		Str("reports_dir", settings.ReportsDir).
		Str("calendars_path", settings.CalendarsPath).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr: settings.Addr,
		Dependencies: server.Dependencies{
			Source:    source,
			Store:     store,
			Generator: generator,
		},
	})

	return api.Start()
}
