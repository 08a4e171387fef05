package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"ledger/internal/cli"
	"ledger/internal/config"
	"ledger/internal/core"
	"ledger/internal/export"
	"ledger/internal/query"
	"ledger/internal/services"
)

const menu = `
===== Personal Expense Tracker =====
1. Add a new expense
2. View all expenses
3. Filter expenses
4. Search expenses by description
5. Summarize expenses
6. Category-wise expense distribution
7. Monthly expense trends
8. Export expenses
9. Exit
`

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.SlogLevel())
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	svc := cli.InitLedger(logger, cfg.DBPath)
	defer svc.Close()

	logger.Info("Ledger opened", "path", cfg.DBPath)

	a := &app{svc: svc, cfg: cfg, in: bufio.NewScanner(os.Stdin)}
	a.run(context.Background())
}

type app struct {
	svc *services.LedgerService
	cfg *config.Config
	in  *bufio.Scanner
}

func (a *app) run(ctx context.Context) {
	for {
		fmt.Print(menu)
		choice, ok := a.prompt("Enter your choice (1-9): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			a.addExpense(ctx)
		case "2":
			a.viewAll(ctx)
		case "3":
			a.filterExpenses(ctx)
		case "4":
			a.searchExpenses(ctx)
		case "5":
			a.summarize(ctx)
		case "6":
			a.categoryDistribution(ctx)
		case "7":
			a.monthlyTrends(ctx)
		case "8":
			a.exportLedger(ctx)
		case "9":
			fmt.Println("Exiting... Have a great day!")
			return
		default:
			fmt.Println("Invalid choice. Please select from the menu.")
		}
	}
}

// prompt reads one trimmed input line. ok is false once stdin is
// closed; callers bail out and the loop in run falls through so the
// deferred cleanup in main still happens.
func (a *app) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !a.in.Scan() {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// promptFilter collects an optional date range. Blank input skips a
// bound; an invalid non-blank date is rejected so the query never sees a
// malformed bound.
func (a *app) promptFilter(withCategory bool) (query.Filter, bool) {
	var f query.Filter
	var ok bool

	if f.Start, ok = a.prompt("Enter start date (YYYY-MM-DD) or press Enter to skip: "); !ok {
		return f, false
	}
	if f.Start != "" && !core.IsValidDate(f.Start) {
		fmt.Println("Invalid start date.")
		return f, false
	}
	if f.End, ok = a.prompt("Enter end date (YYYY-MM-DD) or press Enter to skip: "); !ok {
		return f, false
	}
	if f.End != "" && !core.IsValidDate(f.End) {
		fmt.Println("Invalid end date.")
		return f, false
	}
	if withCategory {
		if f.Category, ok = a.prompt("Enter category to filter or press Enter to skip: "); !ok {
			return f, false
		}
	}
	return f, true
}

func (a *app) addExpense(ctx context.Context) {
	date, ok := a.prompt("Enter date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	if !core.IsValidDate(date) {
		fmt.Println("Invalid date format.")
		return
	}
	rawAmount, ok := a.prompt("Enter amount: ")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		fmt.Println("Invalid amount.")
		return
	}
	category, ok := a.prompt("Enter category: ")
	if !ok {
		return
	}
	description, ok := a.prompt("Enter description: ")
	if !ok {
		return
	}

	id, err := a.svc.Add(ctx, date, amount, category, description)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	fmt.Printf("Expense added successfully! (id %d)\n", id)
}

func (a *app) viewAll(ctx context.Context) {
	records, err := a.svc.Records(ctx)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No expenses found.")
		return
	}
	printRecords(records)
}

func (a *app) filterExpenses(ctx context.Context) {
	f, ok := a.promptFilter(true)
	if !ok {
		return
	}
	records, err := a.svc.Filter(ctx, f)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No matching records found.")
		return
	}
	printRecords(records)
}

func (a *app) searchExpenses(ctx context.Context) {
	keyword, ok := a.prompt("Enter keyword to search in description: ")
	if !ok {
		return
	}
	records, err := a.svc.Search(ctx, keyword)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No matching records found.")
		return
	}
	printRecords(records)
}

func (a *app) summarize(ctx context.Context) {
	f, ok := a.promptFilter(false)
	if !ok {
		return
	}
	summary, err := a.svc.Summarize(ctx, f)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}

	fmt.Printf("Total expenses: %.2f\n", summary.Total)
	if summary.Count == 0 {
		return
	}
	fmt.Printf("Average daily spending: %.2f\n", summary.Average)
	fmt.Printf("Highest expense: %s (%s, %.2f)\n", summary.Max.Description, summary.Max.Date, summary.Max.Amount)
	fmt.Printf("Lowest expense: %s (%s, %.2f)\n", summary.Min.Description, summary.Min.Date, summary.Min.Amount)
}

func (a *app) categoryDistribution(ctx context.Context) {
	f, ok := a.promptFilter(false)
	if !ok {
		return
	}
	totals, err := a.svc.CategoryBreakdown(ctx, f)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	if len(totals) == 0 {
		fmt.Println("No expenses found for the selected period.")
		return
	}

	categories := make([]string, 0, len(totals))
	var grand float64
	for category, total := range totals {
		categories = append(categories, category)
		grand += total
	}
	sort.Strings(categories)

	fmt.Println("Category-wise expense distribution:")
	for _, category := range categories {
		total := totals[category]
		if grand != 0 {
			fmt.Printf("  %-20s %10.2f  (%.1f%%)\n", category, total, total/grand*100)
		} else {
			fmt.Printf("  %-20s %10.2f\n", category, total)
		}
	}
}

func (a *app) monthlyTrends(ctx context.Context) {
	f, ok := a.promptFilter(false)
	if !ok {
		return
	}
	trend, err := a.svc.MonthlyTrend(ctx, f)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		return
	}
	if len(trend) == 0 {
		fmt.Println("No expenses found for the selected period.")
		return
	}

	fmt.Println("Monthly expense trends:")
	for _, mt := range trend {
		fmt.Printf("  %s %10.2f\n", mt.Month, mt.Total)
	}
}

func (a *app) exportLedger(ctx context.Context) {
	sinks := []export.Sink{export.CSVSink{Path: a.cfg.CSVExportPath}}

	if a.cfg.SheetsExportEnabled() {
		sheets, err := export.NewSheetsSink(ctx, a.cfg.GoogleSpreadsheetID, a.cfg.GoogleSheetName)
		if err != nil {
			fmt.Printf("Google Sheets export unavailable: %v\n", err)
		} else {
			sinks = append(sinks, sheets)
		}
	}

	n, err := a.svc.ExportAll(ctx, sinks...)
	if err != nil {
		fmt.Printf("An error occurred while exporting: %v\n", err)
		return
	}
	fmt.Printf("Exported %d expenses to %s\n", n, a.cfg.CSVExportPath)
}

func printRecords(records []core.ExpenseRecord) {
	fmt.Printf("%-5s %-11s %10s  %-16s %s\n", "ID", "Date", "Amount", "Category", "Description")
	for _, r := range records {
		fmt.Printf("%-5d %-11s %10.2f  %-16s %s\n", r.ID, r.Date, r.Amount, r.Category, r.Description)
	}
}
