package config

import (
	"context"
	"fmt"

	"backend/internal/sheetstore"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewStore builds the Sheets client once and hands it out as an
// explicit store handle; every component receives it by injection.
// Credentials come from GOOGLE_SERVICE_ACCOUNT_JSON (inline JSON,
// preferred on cloud) or GOOGLE_APPLICATION_CREDENTIALS (file path);
// with neither set the client falls back to application default
// credentials.
func NewStore(ctx context.Context, env Env) (*sheetstore.GoogleStore, error) {
	if env.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID não configurado")
	}

	var opts []option.ClientOption
	switch {
	case env.ServiceAccountJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(env.ServiceAccountJSON)))
	case env.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(env.CredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("criar cliente do Sheets: %w", err)
	}

	return sheetstore.NewGoogleStore(svc, env.SpreadsheetID), nil
}
