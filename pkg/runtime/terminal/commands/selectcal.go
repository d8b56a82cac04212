package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
	"github.com/psy-tools/gcal-extractor/pkg/services/config"
)

type SelectCmd struct {
	configPath string
	ids        []string
}

func NewSelectCmd() *cobra.Command {
	sc := &SelectCmd{}
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose the calendars to include in reports",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the settings file")
	cmd.Flags().StringArrayVar(&sc.ids, "id", nil, "Calendar id to include (repeatable)")

	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (sc *SelectCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := config.LoadSettings(sc.configPath)
	if err != nil {
		return err
	}

	source, err := newEventSource(ctx, settings)
	if err != nil {
		return err
	}

	available, err := source.ListCalendars(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(available))
	for _, cal := range available {
		names[cal.ID] = cal.Name
	}

	selection := make([]domain.Calendar, 0, len(sc.ids))
	for _, id := range sc.ids {
		name, ok := names[id]
		if !ok {
			return fmt.Errorf("calendar %q not found in this account", id)
		}
		selection = append(selection, domain.Calendar{ID: id, Name: name})
	}

	if err := config.NewCalendarStore(settings.CalendarsPath).Save(ctx, selection); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Selected %d calendar(s):\n", len(selection))
	for _, cal := range selection {
		fmt.Fprintf(out, "- %s\n", cal.Name)
	}

	return nil
}
