package extract

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// PDFReader extracts text in-process.
type PDFReader struct{}

// Name returns the provider name.
func (e *PDFReader) Name() string { return "pdfreader" }

// Available reports whether the provider can run. The in-process
// reader always can.
func (e *PDFReader) Available() bool { return true }

// Extract reads the document and returns its plain text. The
// underlying reader panics on some malformed files; those surface as
// ordinary errors.
func (e *PDFReader) Extract(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}

	body, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", fmt.Errorf("reading extracted text: %w", err)
	}
	return buf.String(), nil
}
