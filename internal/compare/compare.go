// Package compare decides whether a produced transaction table matches
// the reference table. Blank numeric cells and numeric zero collapse
// into one comparison class on both sides.
package compare

import (
	"fmt"
	"strings"

	"github.com/parsegen-dev/parsegen/internal/model"
	"github.com/parsegen-dev/parsegen/internal/statement"
)

// Status is the comparison outcome.
type Status string

const (
	// Pass means every cell matched, row order preserved.
	Pass Status = "pass"
	// PassLenient means shape, Date and Balance columns matched;
	// Description/Debit/Credit mismatches were tolerated.
	PassLenient Status = "pass-lenient"
	// Fail means the tables disagree.
	Fail Status = "fail"
)

// Result carries the outcome and, on failure, diagnostics for the
// error log.
type Result struct {
	Status      Status
	Diagnostics []string
}

// Passed reports whether either acceptance path matched.
func (r Result) Passed() bool {
	return r.Status != Fail
}

// Tables compares a produced table against the expected reference.
// The exact path requires equal row count and every normalized cell
// equal at the same row index; no sorting or matching by key. When
// exact fails, the lenient path accepts equal row counts with
// elementwise-equal Date and Balance columns.
func Tables(produced, expected model.Table) Result {
	if equalExact(produced, expected) {
		return Result{Status: Pass}
	}
	if equalLenient(produced, expected) {
		return Result{Status: PassLenient}
	}
	return Result{Status: Fail, Diagnostics: diagnostics(produced, expected)}
}

func equalExact(produced, expected model.Table) bool {
	if len(produced) != len(expected) {
		return false
	}
	for i := range produced {
		p, e := produced[i], expected[i]
		if p.Date != e.Date || p.Description != e.Description {
			return false
		}
		if !p.Debit.Equal(e.Debit) || !p.Credit.Equal(e.Credit) || !p.Balance.Equal(e.Balance) {
			return false
		}
	}
	return true
}

func equalLenient(produced, expected model.Table) bool {
	if len(produced) != len(expected) {
		return false
	}
	for i := range produced {
		if produced[i].Date != expected[i].Date {
			return false
		}
		if !produced[i].Balance.Equal(expected[i].Balance) {
			return false
		}
	}
	return true
}

// diagnosticRows caps how many rows of each side the diagnostics show.
const diagnosticRows = 3

func diagnostics(produced, expected model.Table) []string {
	lines := []string{
		fmt.Sprintf("expected shape: (%d, %d), got shape: (%d, %d)",
			len(expected), len(statement.Columns), len(produced), len(statement.Columns)),
		fmt.Sprintf("columns: %s", strings.Join(statement.Columns, ", ")),
	}
	lines = append(lines, "expected first rows:")
	lines = append(lines, headRows(expected)...)
	lines = append(lines, "got first rows:")
	lines = append(lines, headRows(produced)...)
	return lines
}

func headRows(table model.Table) []string {
	n := len(table)
	if n > diagnosticRows {
		n = diagnosticRows
	}
	rows := make([]string, 0, n)
	for _, rec := range table[:n] {
		rows = append(rows, fmt.Sprintf("  %s | %s | %s | %s | %s",
			rec.Date, rec.Description, rec.Debit, rec.Credit, rec.Balance))
	}
	return rows
}
