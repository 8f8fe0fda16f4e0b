package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// InstalledAppConfig parses an OAuth desktop-app client secret.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("not an OAuth desktop app credentials file: %w", err)
	}
	return cfg, nil
}

// AuthURL is the consent page the user opens to obtain an authorization code.
func AuthURL(cfg *oauth2.Config) string {
	return cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// ExchangeAndSave trades an authorization code for a token and writes it to
// tokenPath, where NewClientFromCredentialsJSON looks for it.
func ExchangeAndSave(ctx context.Context, cfg *oauth2.Config, code, tokenPath string) (*oauth2.Token, error) {
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(tokenPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return tok, nil
}
