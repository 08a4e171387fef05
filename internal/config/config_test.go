package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid defaults",
			config: Config{
				DBPath:        "./test.db",
				CSVExportPath: "./expenses.csv",
				LogLevel:      "info",
			},
			wantErr: false,
		},
		{
			name: "missing database path",
			config: Config{
				DBPath:        "",
				CSVExportPath: "./expenses.csv",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "missing csv export path",
			config: Config{
				DBPath:        "./test.db",
				CSVExportPath: "",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "CSV export path cannot be empty",
		},
		{
			name: "spreadsheet id without sheet name",
			config: Config{
				DBPath:              "./test.db",
				CSVExportPath:       "./expenses.csv",
				GoogleSpreadsheetID: "abc123",
				GoogleSheetName:     "",
				LogLevel:            "info",
			},
			wantErr:     true,
			errorString: "Google sheet name cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				DBPath:        "./test.db",
				CSVExportPath: "./expenses.csv",
				LogLevel:      "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDatabaseDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{
		DBPath:        filepath.Join(dir, "ledger.db"),
		CSVExportPath: "./expenses.csv",
		LogLevel:      "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEDGER_DB_PATH", "")
	t.Setenv("LEDGER_CSV_PATH", "")
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.DBPath != "./data/ledger.db" {
		t.Errorf("DBPath default = %q", cfg.DBPath)
	}
	if cfg.CSVExportPath != "./expenses.csv" {
		t.Errorf("CSVExportPath default = %q", cfg.CSVExportPath)
	}
	if cfg.SheetsExportEnabled() {
		t.Error("sheets export should be disabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel default = %q", cfg.LogLevel)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LEDGER_DB_PATH", "/tmp/other.db")
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-id")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.SheetsExportEnabled() {
		t.Error("sheets export should be enabled")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
}
