package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Authenticator manages the OAuth credentials used to reach the Google
// Calendar API: reads the client config from a Google credentials JSON,
// persists the granted token to a file, and refreshes it transparently,
// re-persisting whenever the refresh produced a new access token.
type Authenticator struct {
	config    *oauth2.Config
	tokenPath string
}

// NewAuthenticator loads the OAuth client config from credentialsPath and
// binds token persistence to tokenPath. Only the read-only calendar scope
// is requested.
func NewAuthenticator(credentialsPath, tokenPath string) (*Authenticator, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return &Authenticator{config: config, tokenPath: tokenPath}, nil
}

// AuthURL returns the authorization URL the user must visit to grant
// calendar access. Offline access is requested so a refresh token is
// issued.
func (a *Authenticator) AuthURL() string {
	return a.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for a token and persists it.
func (a *Authenticator) Exchange(ctx context.Context, code string) error {
	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return a.saveToken(tok)
}

// Authenticated reports whether a persisted token exists.
func (a *Authenticator) Authenticated() bool {
	_, err := a.loadToken()
	return err == nil
}

// Logout discards the persisted token.
func (a *Authenticator) Logout() error {
	err := os.Remove(a.tokenPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// TokenSource returns an auto-refreshing token source backed by the
// persisted token. Refreshed tokens are written back to disk.
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := a.loadToken()
	if err != nil {
		return nil, fmt.Errorf("not authenticated, run login first: %w", err)
	}
	return &persistingSource{
		auth: a,
		src:  a.config.TokenSource(ctx, tok),
		last: tok,
	}, nil
}

func (a *Authenticator) loadToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(a.tokenPath)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

func (a *Authenticator) saveToken(tok *oauth2.Token) error {
	b, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(a.tokenPath, b, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

type persistingSource struct {
	auth *Authenticator
	src  oauth2.TokenSource
	last *oauth2.Token
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != p.last.AccessToken {
		p.last = tok
		if err := p.auth.saveToken(tok); err != nil {
			return nil, err
		}
	}
	return tok, nil
}
