package report

import (
	"errors"
	"reflect"
	"testing"

	"ledger/internal/core"
)

func rec(id int64, date string, amount float64, category, description string) core.ExpenseRecord {
	return core.ExpenseRecord{ID: id, Date: date, Amount: amount, Category: category, Description: description}
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(nil)
	if err != nil {
		t.Fatalf("empty input must not be an error: %v", err)
	}
	if s.Count != 0 || s.Total != 0 || s.Average != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
	if s.Max != nil || s.Min != nil {
		t.Errorf("extrema must be nil for empty input, got max=%v min=%v", s.Max, s.Min)
	}
}

func TestSummarizeSingleDateFallsBackToTotal(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 10, "Food", "Lunch"),
		rec(2, "2023-10-27", 20, "Food", "Dinner"),
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Total != 30 {
		t.Errorf("total = %v, want 30", s.Total)
	}
	if s.Average != 30 {
		t.Errorf("single-date average must equal total, got %v", s.Average)
	}
}

func TestSummarizeDividesByDaySpan(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 10, "Food", "Lunch"),
		rec(2, "2023-10-29", 20, "Food", "Dinner"),
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Total != 30 {
		t.Errorf("total = %v, want 30", s.Total)
	}
	// Span is 2 days, not 2 records: 30 / 2 = 15.
	if s.Average != 15 {
		t.Errorf("average = %v, want 15", s.Average)
	}
}

func TestSummarizeSpanIgnoresInputOrder(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-29", 20, "Food", "Dinner"),
		rec(2, "2023-10-27", 10, "Food", "Lunch"),
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Average != 15 {
		t.Errorf("average = %v, want 15", s.Average)
	}
}

func TestSummarizeExtrema(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 50, "Food", "Lunch"),
		rec(2, "2023-10-28", 100, "Clothes", "Shirt"),
		rec(3, "2023-10-29", 10, "Food", "Coffee"),
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Max == nil || s.Max.ID != 2 {
		t.Errorf("max = %+v, want record 2", s.Max)
	}
	if s.Min == nil || s.Min.ID != 3 {
		t.Errorf("min = %+v, want record 3", s.Min)
	}
}

func TestSummarizeTiesKeepFirstOccurrence(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 10, "Food", "first"),
		rec(2, "2023-10-28", 10, "Food", "second"),
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Max == nil || s.Max.ID != 1 {
		t.Errorf("max tie should keep first occurrence, got %+v", s.Max)
	}
	if s.Min == nil || s.Min.ID != 1 {
		t.Errorf("min tie should keep first occurrence, got %+v", s.Min)
	}
}

func TestSummarizeMalformedDate(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 10, "Food", "ok"),
		rec(2, "garbage", 20, "Food", "bad"),
	}

	_, err := Summarize(records)
	if err == nil {
		t.Fatal("expected error for malformed stored date")
	}
	if !errors.Is(err, core.ErrMalformedDate) {
		t.Errorf("error should wrap core.ErrMalformedDate, got %v", err)
	}
}

func TestCategoryTotals(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-10-27", 10, "Food", "a"),
		rec(2, "2023-10-28", 5, "Food", "b"),
		rec(3, "2023-10-29", 3, "Transport", "c"),
	}

	got := CategoryTotals(records)
	want := map[string]float64{"Food": 15, "Transport": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTotals = %v, want %v", got, want)
	}
}

func TestCategoryTotalsEmpty(t *testing.T) {
	got := CategoryTotals(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []core.ExpenseRecord{
		rec(1, "2023-11-15", 20, "Food", "Dinner"),
		rec(2, "2023-10-27", 10, "Food", "Lunch"),
	}

	got, err := MonthlyTotals(records)
	if err != nil {
		t.Fatalf("MonthlyTotals failed: %v", err)
	}
	want := []MonthTotal{{"2023-10", 10}, {"2023-11", 20}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlyTotals = %v, want %v", got, want)
	}
}

func TestMonthlyTotalsSparse(t *testing.T) {
	// September has no records and must not appear as a zero bucket.
	records := []core.ExpenseRecord{
		rec(1, "2023-08-01", 1, "Misc", "a"),
		rec(2, "2023-10-01", 2, "Misc", "b"),
	}

	got, err := MonthlyTotals(records)
	if err != nil {
		t.Fatalf("MonthlyTotals failed: %v", err)
	}
	want := []MonthTotal{{"2023-08", 1}, {"2023-10", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlyTotals = %v, want %v", got, want)
	}
}

func TestMonthlyTotalsEmpty(t *testing.T) {
	got, err := MonthlyTotals(nil)
	if err != nil {
		t.Fatalf("empty input must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no buckets, got %v", got)
	}
}

func TestMonthlyTotalsMalformedDate(t *testing.T) {
	_, err := MonthlyTotals([]core.ExpenseRecord{rec(1, "2023-13-01", 1, "Misc", "bad")})
	if err == nil {
		t.Fatal("expected error for malformed stored date")
	}
	if !errors.Is(err, core.ErrMalformedDate) {
		t.Errorf("error should wrap core.ErrMalformedDate, got %v", err)
	}
}
