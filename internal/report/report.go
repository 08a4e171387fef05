// Package report computes summary statistics and rollups over a set of
// expense records, typically the result of a query. It never touches the
// store itself.
package report

import (
	"fmt"
	"sort"

	"ledger/internal/core"
)

// Summary describes a record set in aggregate. Max and Min point at the
// highest and lowest expense (first occurrence wins on ties) and are nil
// for an empty set: "no expenses in period" is a valid outcome, not an
// error.
type Summary struct {
	Count   int
	Total   float64
	Average float64
	Max     *core.ExpenseRecord
	Min     *core.ExpenseRecord
}

// MonthTotal is one month's summed spending.
type MonthTotal struct {
	Month string // YYYY-MM
	Total float64
}

// Summarize computes total, daily average and extrema for records.
//
// The average divides the total by the calendar-day span between the
// earliest and latest record dates, not by the record count. When every
// record falls on a single date the span is zero and the average falls
// back to the total instead of dividing by zero.
//
// The only error condition is a stored date that does not parse; it wraps
// core.ErrMalformedDate and is never raised for empty input.
func Summarize(records []core.ExpenseRecord) (Summary, error) {
	var s Summary
	if len(records) == 0 {
		return s, nil
	}

	first, err := core.ParseDate(records[0].Date)
	if err != nil {
		return Summary{}, fmt.Errorf("record %d: %w", records[0].ID, err)
	}
	last := first

	for i := range records {
		rec := &records[i]

		d, err := core.ParseDate(rec.Date)
		if err != nil {
			return Summary{}, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}

		s.Total += rec.Amount
		if s.Max == nil || rec.Amount > s.Max.Amount {
			s.Max = rec
		}
		if s.Min == nil || rec.Amount < s.Min.Amount {
			s.Min = rec
		}
	}

	s.Count = len(records)
	if span := core.DaySpan(first, last); span > 0 {
		s.Average = s.Total / float64(span)
	} else {
		s.Average = s.Total
	}

	return s, nil
}

// CategoryTotals sums amounts grouped by exact category string.
// Categories with no records are absent from the map; empty input yields
// an empty map.
func CategoryTotals(records []core.ExpenseRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[rec.Category] += rec.Amount
	}
	return totals
}

// MonthlyTotals buckets records by calendar month and returns the
// buckets sorted ascending by month key. Months with no records are
// omitted entirely; nothing is interpolated. A stored date that does not
// parse yields an error wrapping core.ErrMalformedDate.
func MonthlyTotals(records []core.ExpenseRecord) ([]MonthTotal, error) {
	totals := make(map[string]float64)
	for _, rec := range records {
		d, err := core.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		totals[core.MonthKey(d)] += rec.Amount
	}

	out := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out, nil
}
