// Package statement reads and writes transaction tables in the
// reference CSV schema and locates per-bank input files.
package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/parsegen-dev/parsegen/internal/model"
)

// Header is the CSV header every reference and results table carries.
const Header = "Date,Description,Debit Amt,Credit Amt,Balance"

// Columns is Header split into its column names.
var Columns = strings.Split(Header, ",")

// ReadTable decodes a transaction table. The header row must match
// Columns exactly; blank and non-numeric amount cells decode as the
// blank Amount.
func ReadTable(r io.Reader) (model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var records []model.TransactionRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	return model.Table(records), nil
}

// WriteTable encodes a transaction table, header included.
func WriteTable(w io.Writer, table model.Table) error {
	if err := gocsv.Marshal([]model.TransactionRecord(table), w); err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return nil
}

func checkHeader(data []byte) error {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("reading table header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) != len(Columns) {
		return fmt.Errorf("expected columns %v, got %v", Columns, header)
	}
	for i, want := range Columns {
		if header[i] != want {
			return fmt.Errorf("expected columns %v, got %v", Columns, header)
		}
	}
	return nil
}
