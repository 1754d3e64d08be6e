package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DateFormat is the statement date layout (DD-MM-YYYY).
const DateFormat = "02-01-2006"

// TransactionRecord is one parsed statement row. Field tags match the
// reference CSV header exactly.
type TransactionRecord struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Debit       Amount `csv:"Debit Amt"`
	Credit      Amount `csv:"Credit Amt"`
	Balance     Amount `csv:"Balance"`
}

// Table is an ordered sequence of records, in order of appearance in
// the source text. It is never re-sorted after construction.
type Table []TransactionRecord

// Amount is one numeric statement cell. The zero value means the cell
// is blank; a stored numeric zero is treated identically, matching how
// statements leave unused debit/credit cells empty.
type Amount struct {
	d decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// ParseAmount converts a statement token to an Amount. Thousands
// separators are stripped first. An empty string is the blank cell.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// IsZero reports whether the cell is blank or holds numeric zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Decimal returns the underlying value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Equal compares two cells, collapsing blank and numeric zero into one
// comparison class.
func (a Amount) Equal(b Amount) bool {
	if a.IsZero() && b.IsZero() {
		return true
	}
	return a.d.Equal(b.d)
}

// String renders the cell for CSV output: empty for blank/zero, fixed
// two decimals otherwise.
func (a Amount) String() string {
	if a.IsZero() {
		return ""
	}
	return a.d.StringFixed(2)
}

// MarshalCSV implements the gocsv field marshaler.
func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

// UnmarshalCSV implements the gocsv field unmarshaler. Cells that do
// not parse as numbers are coerced to blank rather than failing the
// whole table.
func (a *Amount) UnmarshalCSV(s string) error {
	v, err := ParseAmount(s)
	if err != nil {
		*a = Amount{}
		return nil
	}
	*a = v
	return nil
}
