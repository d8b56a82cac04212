package commands

import (
	"context"
	"fmt"

	"github.com/psy-tools/gcal-extractor/pkg/services/config"
	"github.com/psy-tools/gcal-extractor/pkg/services/gcal"
)

// newEventSource builds an authenticated calendar source from the
// settings. It fails when no token has been persisted yet.
func newEventSource(ctx context.Context, settings *config.Settings) (gcal.EventSource, error) {
	auth, err := gcal.NewAuthenticator(settings.CredentialsPath, settings.TokenPath)
	if err != nil {
		return nil, err
	}

	ts, err := auth.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	source, err := gcal.NewEventSource(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Google Calendar: %w", err)
	}
	return source, nil
}
