// Package agent drives the generate-test-retry loop for one bank.
package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/parsegen-dev/parsegen/internal/attemptlog"
	"github.com/parsegen-dev/parsegen/internal/compare"
	"github.com/parsegen-dev/parsegen/internal/extract"
	"github.com/parsegen-dev/parsegen/internal/gen"
	"github.com/parsegen-dev/parsegen/internal/model"
	"github.com/parsegen-dev/parsegen/internal/parse"
	"github.com/parsegen-dev/parsegen/internal/runner"
	"github.com/parsegen-dev/parsegen/internal/statement"
)

// ErrExhausted indicates the attempt ceiling was reached without a
// passing parser.
var ErrExhausted = errors.New("attempt ceiling exhausted")

// DefaultMaxAttempts is the generate-test cycle ceiling.
const DefaultMaxAttempts = 3

// State names the driver's position in the attempt cycle.
type State string

// Driver states.
const (
	StateAnalyzing  State = "analyzing"
	StateGenerating State = "generating"
	StateTesting    State = "testing"
	StateRetrying   State = "retrying"
	StateSucceeded  State = "succeeded"
	StateExhausted  State = "exhausted"
)

// Options configures an Agent. Zero fields get defaults.
type Options struct {
	DataDir     string
	ParsersDir  string
	MaxAttempts int
	Profile     parse.Profile // resolved profile, overrides applied
	Runner      runner.Runner // defaults to the in-process pipeline
	Logger      *log.Logger
}

// Agent owns the generation state for one target bank.
type Agent struct {
	bank         string
	dataDir      string
	bankDir      string
	docPath      string
	refPath      string
	parsersDir   string
	artifactPath string
	profile      parse.Profile
	generator    *gen.Generator
	runner       runner.Runner
	maxAttempts  int
	logger       *log.Logger

	state    State
	attempt  int
	success  bool
	errorLog []string
}

// New discovers the bank's input files and prepares an agent. A bank
// directory without any PDF is a fatal environment error; nothing is
// retried for it.
func New(bank string, opts Options) (*Agent, error) {
	bank = strings.ToLower(bank)
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Profile.Label == "" {
		opts.Profile = gen.ProfileFor(bank)
	}

	bankDir := filepath.Join(opts.DataDir, bank)
	docPath, err := statement.FindDocument(bankDir)
	if err != nil {
		return nil, err
	}

	generator, err := gen.NewGenerator()
	if err != nil {
		return nil, err
	}

	r := opts.Runner
	if r == nil {
		r = runner.NewPipeline(opts.Profile, extract.NewChain(opts.Logger), runner.PrimaryExtraction, opts.Logger)
	}

	return &Agent{
		bank:         bank,
		dataDir:      opts.DataDir,
		bankDir:      bankDir,
		docPath:      docPath,
		refPath:      statement.FindReference(bankDir),
		parsersDir:   opts.ParsersDir,
		artifactPath: gen.ArtifactPath(opts.ParsersDir, bank),
		profile:      opts.Profile,
		generator:    generator,
		runner:       r,
		maxAttempts:  opts.MaxAttempts,
		logger:       opts.Logger.With("bank", bank),
		state:        StateAnalyzing,
		attempt:      1,
	}, nil
}

// ArtifactPath returns the fixed per-bank artifact location.
func (a *Agent) ArtifactPath() string { return a.artifactPath }

// MaxAttempts returns the attempt ceiling.
func (a *Agent) MaxAttempts() int { return a.maxAttempts }

// Errors returns the accumulated error log, in order.
func (a *Agent) Errors() []string { return a.errorLog }

// State returns the driver's current state.
func (a *Agent) State() State { return a.state }

// Run executes attempt cycles until a generated parser passes
// validation or the ceiling is reached. Errors inside one cycle are
// recorded and trigger the next attempt; they never crash the run.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("starting parser generation", "max_attempts", a.maxAttempts)

	for a.attempt <= a.maxAttempts && !a.success {
		a.logger.Info("attempt", "n", a.attempt, "max", a.maxAttempts)

		passed, err := a.cycle(ctx)
		switch {
		case err != nil:
			msg := fmt.Sprintf("error in attempt %d: %v", a.attempt, err)
			a.logger.Error("attempt failed", "error", err)
			a.errorLog = append(a.errorLog, msg)
			a.record("error", err.Error())
			a.attempt++
		case passed:
			a.success = true
			a.state = StateSucceeded
			a.record("pass", "parser output matches reference")
			a.logger.Info("parser generated and tested successfully", "artifact", a.artifactPath)
		default:
			a.state = StateRetrying
			a.errorLog = append(a.errorLog, fmt.Sprintf("attempt %d: parser output does not match reference", a.attempt))
			a.record("fail", "parser output does not match reference")
			a.attempt++
			if a.attempt <= a.maxAttempts {
				a.logger.Warn("test failed, retrying", "attempt", a.attempt)
			}
		}
	}

	if !a.success {
		a.state = StateExhausted
		return fmt.Errorf("%w after %d attempts", ErrExhausted, a.maxAttempts)
	}
	return nil
}

// cycle runs one analyze-generate-test pass.
func (a *Agent) cycle(ctx context.Context) (bool, error) {
	a.state = StateAnalyzing
	expected, err := a.analyze()
	if err != nil {
		return false, err
	}

	a.state = StateGenerating
	if err := a.generate(); err != nil {
		return false, err
	}

	a.state = StateTesting
	return a.test(ctx, expected)
}

// analyze validates that the document and reference table exist and
// loads the reference for the comparison step.
func (a *Agent) analyze() (model.Table, error) {
	f, err := os.Open(a.refPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("reference table %s: %w", a.refPath, statement.ErrMissingInput)
		}
		return nil, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close()

	expected, err := statement.ReadTable(f)
	if err != nil {
		return nil, err
	}
	a.logger.Info("analyzed inputs", "reference_rows", len(expected), "columns", strings.Join(statement.Columns, ", "))

	if _, err := os.Stat(a.docPath); err != nil {
		return nil, fmt.Errorf("document %s: %w", a.docPath, statement.ErrMissingInput)
	}
	return expected, nil
}

// generate materializes the parser artifact for the bank profile.
func (a *Agent) generate() error {
	code, err := a.generator.Render(a.bank, a.profile)
	if err != nil {
		return err
	}
	path, err := gen.WriteArtifact(a.parsersDir, a.bank, code)
	if err != nil {
		return err
	}
	a.logger.Info("parser written", "path", path, "profile", a.profile.Label)
	return nil
}

// test runs the generated parser against the document and compares the
// produced table with the reference.
func (a *Agent) test(ctx context.Context, expected model.Table) (bool, error) {
	produced, err := a.runner.Run(ctx, a.artifactPath, a.docPath)
	if err != nil {
		return false, fmt.Errorf("parser test failed: %w", err)
	}

	result := compare.Tables(produced, expected)
	switch result.Status {
	case compare.Pass:
		a.logger.Info("parser test passed, output matches reference")
	case compare.PassLenient:
		a.logger.Info("parser test passed, core data matches (formatting differences ignored)")
	default:
		a.logger.Warn("parser test failed, output does not match reference")
		for _, line := range result.Diagnostics {
			a.logger.Warn(line)
		}
	}
	return result.Passed(), nil
}

// record appends one attempt outcome to the attempt log. Log failures
// never affect the run.
func (a *Agent) record(outcome, details string) {
	err := attemptlog.Append(a.dataDir, []attemptlog.Entry{{
		Timestamp: time.Now(),
		Bank:      a.bank,
		Attempt:   a.attempt,
		Outcome:   outcome,
		Details:   details,
	}})
	if err != nil {
		a.logger.Warn("writing attempt log", "error", err)
	}
}
