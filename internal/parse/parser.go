// Package parse implements the heuristic that segments raw statement
// text into transaction records. It is line-local and greedy: no
// cross-line context and no column-position awareness.
package parse

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/parsegen-dev/parsegen/internal/model"
)

var (
	// dateRe matches a DD-MM-YYYY token anywhere in a line. Day and
	// month ranges are deliberately not validated.
	dateRe = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)

	// amountRe matches an amount token prefix: digits with optional
	// thousands separators and exactly two decimal digits.
	amountRe = regexp.MustCompile(`^[\d,]+\.\d{2}`)
)

// minTokens is the fewest whitespace tokens a transaction line can
// carry: date, description, one amount.
const minTokens = 3

// LineParser extracts transaction records from raw statement text
// using a bank profile's keyword hints.
type LineParser struct {
	profile Profile
	logger  *log.Logger
}

// NewLineParser creates a parser for the given profile.
func NewLineParser(profile Profile, logger *log.Logger) *LineParser {
	return &LineParser{profile: profile, logger: logger}
}

// Parse segments text into records. Lines without a date token, with
// fewer than three tokens, without amounts, or without a description
// are dropped.
func (p *LineParser) Parse(text string) model.Table {
	var table model.Table

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !dateRe.MatchString(line) {
			continue
		}

		if rec, ok := p.parseLine(line); ok {
			table = append(table, rec)
		}
	}
	return table
}

// parseLine applies the amount-count heuristic to one date-bearing
// line. ok is false when the line carries no usable record.
func (p *LineParser) parseLine(line string) (model.TransactionRecord, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < minTokens {
		return model.TransactionRecord{}, false
	}

	// First token is the date, unconditionally.
	date := tokens[0]

	var descParts []string
	var amounts []model.Amount
	for _, tok := range tokens[1:] {
		if !amountRe.MatchString(tok) {
			descParts = append(descParts, tok)
			continue
		}
		amt, err := model.ParseAmount(tok)
		if err != nil {
			// Amount-shaped token with trailing garbage: coerce to a
			// blank cell, same as the CSV codec does on read.
			p.logger.Debug("coercing unparseable amount token", "token", tok)
			amt = model.Amount{}
		}
		amounts = append(amounts, amt)
	}

	rec := model.TransactionRecord{
		Date:        date,
		Description: strings.Join(descParts, " "),
	}

	switch len(amounts) {
	case 0:
		// No debit/credit signal.
	case 1:
		if p.profile.IsDebit(rec.Description) {
			rec.Debit = amounts[0]
		} else {
			rec.Credit = amounts[0]
		}
	case 2:
		if p.profile.IsDebit(rec.Description) {
			rec.Debit = amounts[0]
		} else {
			rec.Credit = amounts[0]
		}
		rec.Balance = amounts[1]
	default:
		// Positional assignment, keywords ignored. Tokens past the
		// third are dropped.
		rec.Debit = amounts[0]
		rec.Credit = amounts[1]
		rec.Balance = amounts[2]
	}

	// A routed amount token counts as a debit/credit signal even when
	// its value is zero; acceptance is about presence, not magnitude.
	if rec.Description == "" || len(amounts) == 0 {
		return model.TransactionRecord{}, false
	}
	return rec, true
}
