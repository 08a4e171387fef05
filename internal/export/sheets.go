package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"ledger/internal/core"
)

// SheetsSink appends the ledger dump to a Google Sheet, five columns per
// record matching the CSV contract. It authenticates with a service
// account.
type SheetsSink struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsSink builds a sink for the given spreadsheet and sheet name.
// Credentials come from GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS.
func NewSheetsSink(ctx context.Context, spreadsheetID, sheetName string) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if sheetName == "" {
		return nil, errors.New("missing sheet name")
	}

	credentialsJSON, err := serviceAccountCredentials()
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsSink{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func serviceAccountCredentials() ([]byte, error) {
	if inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")); inline != "" {
		return []byte(inline), nil
	}

	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if file == "" {
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	credentialsJSON, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return credentialsJSON, nil
}

func (s *SheetsSink) Name() string {
	return "sheets"
}

func (s *SheetsSink) Write(ctx context.Context, records []core.ExpenseRecord) error {
	if s.svc == nil {
		return errors.New("sheets service not initialized")
	}

	// Find the first empty row from the sheet's current dimensions.
	rng := fmt.Sprintf("%s!A:A", s.sheetName)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get sheet dimensions for %s: %w", s.sheetName, err)
	}
	next := len(resp.Values) + 1

	values := make([][]any, 0, len(records)+1)
	if next == 1 {
		values = append(values, []any{"id", "date", "amount", "category", "description"})
	}
	for _, rec := range records {
		values = append(values, []any{rec.ID, rec.Date, rec.Amount, rec.Category, rec.Description})
	}
	if len(values) == 0 {
		return nil
	}

	dataRange := fmt.Sprintf("%s!A%d:E%d", s.sheetName, next, next+len(values)-1)
	vr := &gsheet.ValueRange{Values: values}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, dataRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update sheet %s: %w", s.sheetName, err)
	}

	slog.InfoContext(ctx, "Ledger exported to Google Sheets",
		"sheet", s.sheetName,
		"rows", len(values))
	return nil
}
