package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psy-tools/gcal-extractor/pkg/services/config"
)

type CalendarsCmd struct {
	configPath string
}

func NewCalendarsCmd() *cobra.Command {
	cc := &CalendarsCmd{}
	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List available calendars and the current selection",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the settings file")

	return cmd
}

func (cc *CalendarsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := config.LoadSettings(cc.configPath)
	if err != nil {
		return err
	}

	source, err := newEventSource(ctx, settings)
	if err != nil {
		return err
	}

	calendars, err := source.ListCalendars(ctx)
	if err != nil {
		return err
	}

	selected, err := config.NewCalendarStore(settings.CalendarsPath).Selected(ctx)
	if err != nil {
		return err
	}
	selectedIds := make(map[string]bool, len(selected))
	for _, cal := range selected {
		selectedIds[cal.ID] = true
	}

	out := cmd.OutOrStdout()
	if len(calendars) == 0 {
		fmt.Fprintln(out, "No calendars found in this account.")
		return nil
	}

	for _, cal := range calendars {
		marker := " "
		if selectedIds[cal.ID] {
			marker = "x"
		}
		suffix := ""
		if cal.Primary {
			suffix = " (primary)"
		}
		fmt.Fprintf(out, "[%s] %s  %s%s\n", marker, cal.ID, cal.Name, suffix)
	}

	return nil
}
