package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/psy-tools/gcal-extractor/pkg/export/excel"
	"github.com/psy-tools/gcal-extractor/pkg/runtime/terminal/export"
	"github.com/psy-tools/gcal-extractor/pkg/services/config"
	"github.com/psy-tools/gcal-extractor/pkg/services/report"
)

type ReportCmd struct {
	configPath string
	year       int
	month      int
	reporter   *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the consultation report for a month",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the settings file")
	cmd.Flags().IntVar(&rc.year, "year", 0, "Report year (e.g. 2024)")
	cmd.Flags().IntVar(&rc.month, "month", 0, "Report month (1-12)")

	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	if rc.month < 1 || rc.month > 12 {
		return fmt.Errorf("invalid month %d, expected 1-12", rc.month)
	}

	settings, err := config.LoadSettings(rc.configPath)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	ctx := logger.WithContext(cmd.Context())

	source, err := newEventSource(ctx, settings)
	if err != nil {
		return err
	}

	generator := report.NewGenerator(
		source,
		config.NewCalendarStore(settings.CalendarsPath),
		excel.NewWriter(settings.ReportsDir),
	)

	generated, err := generator.Generate(ctx, rc.year, time.Month(rc.month))
	if errors.Is(err, report.ErrNoConsultations) {
		fmt.Fprintf(cmd.OutOrStdout(), "No consultations found for %04d-%02d.\n", rc.year, rc.month)
		return nil
	}
	if err != nil {
		return err
	}

	return rc.reporter.Handle(generated)
}
