package extract

import (
	"fmt"
	"os/exec"
)

// pdftotextBin is the poppler-utils binary name.
const pdftotextBin = "pdftotext"

// PDFToText extracts text by shelling out to pdftotext.
type PDFToText struct{}

// Name returns the provider name.
func (e *PDFToText) Name() string { return pdftotextBin }

// Available reports whether the binary is on PATH.
func (e *PDFToText) Available() bool {
	_, err := exec.LookPath(pdftotextBin)
	return err == nil
}

// Extract runs pdftotext -layout and returns its stdout.
func (e *PDFToText) Extract(path string) (string, error) {
	out, err := exec.Command(pdftotextBin, "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("running %s on %s: %w", pdftotextBin, path, err)
	}
	return string(out), nil
}
