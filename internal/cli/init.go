// Package cli provides common initialization for the ledger binary.
package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"ledger/internal/services"
	"ledger/internal/storage"
)

// SetupLogger configures colored structured logging on stderr at the
// given level and installs it as the default logger. Stderr keeps log
// lines out of the interactive menu output.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// InitLedger opens the ledger database and wraps it in the service
// layer. Returns the service or exits the process on failure.
func InitLedger(logger *slog.Logger, dbPath string) *services.LedgerService {
	repo, err := storage.NewRepository(dbPath)
	if err != nil {
		logger.Error("Failed to open ledger database", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return services.NewLedgerService(repo)
}
