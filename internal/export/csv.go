package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"ledger/internal/core"
)

var csvHeader = []string{"id", "date", "amount", "category", "description"}

// CSVSink dumps the ledger to a CSV file: the header row followed by one
// row per record in store order. The file is written to a temp path and
// renamed into place so a failed export never leaves a partial file.
type CSVSink struct {
	Path string
}

func (s CSVSink) Name() string {
	return "csv"
}

func (s CSVSink) Write(ctx context.Context, records []core.ExpenseRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Date,
			strconv.FormatFloat(rec.Amount, 'f', -1, 64),
			rec.Category,
			rec.Description,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize export file: %w", err)
	}

	slog.InfoContext(ctx, "Ledger exported to CSV", "path", s.Path, "records", len(records))
	return nil
}
