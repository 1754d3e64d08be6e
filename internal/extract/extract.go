// Package extract turns PDF documents into raw text. Two providers
// exist; the first one available on the host wins for the whole run.
package extract

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrNoExtractor indicates no extraction provider is usable on this
// host. This is an environment error, not retried.
var ErrNoExtractor = errors.New("no PDF extraction provider available")

// Extractor converts a PDF document into plain text, pages
// concatenated in order.
type Extractor interface {
	Name() string
	Available() bool
	Extract(path string) (string, error)
}

// Chain picks the first available provider and delegates to it.
type Chain struct {
	extractors []Extractor
	logger     *log.Logger
}

// NewChain builds the default provider chain: the in-process PDF
// reader, then the pdftotext binary.
func NewChain(logger *log.Logger) *Chain {
	return &Chain{
		extractors: []Extractor{&PDFReader{}, &PDFToText{}},
		logger:     logger,
	}
}

// NewChainWith builds a chain from explicit providers.
func NewChainWith(logger *log.Logger, extractors ...Extractor) *Chain {
	return &Chain{extractors: extractors, logger: logger}
}

// Extract runs the first available provider against the document.
func (c *Chain) Extract(path string) (string, error) {
	for _, e := range c.extractors {
		if !e.Available() {
			continue
		}
		c.logger.Debug("extracting text", "provider", e.Name(), "path", path)
		text, err := e.Extract(path)
		if err != nil {
			return "", fmt.Errorf("%s: %w", e.Name(), err)
		}
		return text, nil
	}
	return "", ErrNoExtractor
}
