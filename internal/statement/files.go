package statement

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parsegen-dev/parsegen/internal/model"
)

// ErrMissingInput indicates a required input file is absent. Retrying
// cannot fix it.
var ErrMissingInput = errors.New("input file not found")

// ReferenceNames are the accepted reference table file names, in
// preference order.
var ReferenceNames = []string{"expected_result.csv", "result.csv"}

// resultsName is the results artifact written beside the document.
const resultsName = "results.csv"

// FindDocument returns the first PDF (by name) in a bank directory.
func FindDocument(bankDir string) (string, error) {
	entries, err := os.ReadDir(bankDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("bank directory %s: %w", bankDir, ErrMissingInput)
		}
		return "", fmt.Errorf("reading %s: %w", bankDir, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		return "", fmt.Errorf("no PDF files in %s: %w", bankDir, ErrMissingInput)
	}
	sort.Strings(pdfs)
	return filepath.Join(bankDir, pdfs[0]), nil
}

// FindReference returns the reference table path for a bank directory:
// expected_result.csv if present, else result.csv. The returned path
// may not exist; Stat it before use.
func FindReference(bankDir string) string {
	for _, name := range ReferenceNames {
		p := filepath.Join(bankDir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(bankDir, ReferenceNames[len(ReferenceNames)-1])
}

// LoadReference reads the reference table next to a document,
// normalizing dates through a DD-MM-YYYY round trip.
func LoadReference(bankDir string) (model.Table, string, error) {
	path := FindReference(bankDir)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, path, fmt.Errorf("reference table %s: %w", path, ErrMissingInput)
		}
		return nil, path, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, path, err
	}

	for i, rec := range table {
		d, err := time.Parse(model.DateFormat, rec.Date)
		if err != nil {
			return nil, path, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec.Date, err)
		}
		table[i].Date = d.Format(model.DateFormat)
	}
	return table, path, nil
}

// WriteResults writes the results artifact beside the source document,
// overwriting any previous run.
func WriteResults(docPath string, table model.Table) (string, error) {
	path := filepath.Join(filepath.Dir(docPath), resultsName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	if err := WriteTable(f, table); err != nil {
		return "", err
	}
	return path, nil
}
