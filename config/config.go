// Package config assembles the runtime configuration from the process
// environment. A .env file, if present, is loaded by main before this runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dialworks/campaign-sheets/sheet"
)

// DefaultSpreadsheetId is the production campaign tracking spreadsheet.
const DefaultSpreadsheetId = "17X63rlgieIfCbIi33f1NoqrsccnZyB6vDWZd0JgtgT4"

// DefaultSettingsWorksheet is the worksheet holding the campaign alias table.
const DefaultSettingsWorksheet = "AhmedSettings"

type Config struct {
	Credentials       []byte
	SpreadsheetId     string
	SettingsWorksheet string
	Addr              string
	Retry             sheet.Retry
}

// FromEnv reads the configuration from the environment. Missing credentials
// are a fatal configuration error - nothing can be processed without them.
func FromEnv() (Config, error) {
	credentials := os.Getenv("GOOGLE_CREDENTIALS_JSON")
	if credentials == "" {
		return Config{}, fmt.Errorf("credentials not found in environment (GOOGLE_CREDENTIALS_JSON)")
	}

	retry := sheet.DefaultRetry
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil && n > 0 {
			retry.MaxAttempts = uint(n)
		}
	}

	if v := os.Getenv("RETRY_BASE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			retry.Base = d
		}
	}

	return Config{
		Credentials:       []byte(credentials),
		SpreadsheetId:     envOr("SPREADSHEET_ID", DefaultSpreadsheetId),
		SettingsWorksheet: envOr("SETTINGS_WORKSHEET", DefaultSettingsWorksheet),
		Addr:              envOr("HTTP_ADDR", ":8080"),
		Retry:             retry,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
