package bootstrap

import (
	"context"
	"log/slog"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/sheets/v4"

	"github.com/trungle-dev/sheetbook/internal/config"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Sheets   *sheets.Service
	Firebase *auth.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel)

	bs.Sheets, err = InitSheets(applicationCtx, cfg.GoogleCredentials)
	if err != nil {
		return bs, err
	}

	// Auth is optional for local single-user runs.
	if !cfg.AuthDisabled {
		bs.Firebase, err = InitFirebase(applicationCtx)
		if err != nil {
			return bs, err
		}
	}

	return bs, nil
}
