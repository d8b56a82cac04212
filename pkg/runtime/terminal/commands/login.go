package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psy-tools/gcal-extractor/pkg/services/config"
	"github.com/psy-tools/gcal-extractor/pkg/services/gcal"
)

type LoginCmd struct {
	configPath string
}

func NewLoginCmd() *cobra.Command {
	lc := &LoginCmd{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize read-only access to Google Calendar",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.configPath, "config", "", "Path to the settings file")

	return cmd
}

func (lc *LoginCmd) run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(lc.configPath)
	if err != nil {
		return err
	}

	auth, err := gcal.NewAuthenticator(settings.CredentialsPath, settings.TokenPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Open the following URL in your browser and authorize access:\n\n%s\n\n", auth.AuthURL())
	fmt.Fprint(out, "Paste the authorization code here: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code provided")
	}

	if err := auth.Exchange(cmd.Context(), code); err != nil {
		return err
	}

	fmt.Fprintf(out, "Authenticated. Token saved to %s\n", settings.TokenPath)
	return nil
}

type LogoutCmd struct {
	configPath string
}

func NewLogoutCmd() *cobra.Command {
	lc := &LogoutCmd{}
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored token and calendar selection",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.configPath, "config", "", "Path to the settings file")

	return cmd
}

func (lc *LogoutCmd) run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(lc.configPath)
	if err != nil {
		return err
	}

	auth, err := gcal.NewAuthenticator(settings.CredentialsPath, settings.TokenPath)
	if err != nil {
		return err
	}
	if err := auth.Logout(); err != nil {
		return err
	}

	if err := config.NewCalendarStore(settings.CalendarsPath).Clear(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}
