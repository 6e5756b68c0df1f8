package bootstrap

import (
	"context"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// InitSheets builds the Sheets client. Credentials may be a path to a
// service-account JSON file or the JSON itself; when empty, application
// default credentials apply.
func InitSheets(ctx context.Context, credentials string) (*sheets.Service, error) {
	if credentials == "" {
		return sheets.NewService(ctx, option.WithScopes(sheets.SpreadsheetsScope))
	}

	data := []byte(credentials)
	if !strings.HasPrefix(strings.TrimSpace(credentials), "{") {
		b, err := os.ReadFile(credentials)
		if err != nil {
			return nil, err
		}
		data = b
	}

	conf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}
