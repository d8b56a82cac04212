package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the application-level configuration shared by the CLI
// and the web server.
type Settings struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"`
	CalendarsPath   string `mapstructure:"calendars_path"`
	ReportsDir      string `mapstructure:"reports_dir"`
	Addr            string `mapstructure:"addr"`
}

// LoadSettings reads settings from the given file, falling back to
// defaults for anything unset. An empty path loads defaults and
// environment overrides only. Environment variables use the GCALX prefix
// (e.g. GCALX_REPORTS_DIR).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("credentials_path", "credentials.json")
	v.SetDefault("token_path", "tokens.json")
	v.SetDefault("calendars_path", "config.json")
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("addr", "localhost:8080")

	v.SetEnvPrefix("GCALX")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
