package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/parsegen-dev/parsegen/internal/model"
	"github.com/parsegen-dev/parsegen/internal/statement"
)

// ExecRunner runs the generated artifact as a subprocess via `go run`
// and decodes the CSV table it prints. This exercises the artifact
// exactly as an end user would run it.
type ExecRunner struct {
	logger *log.Logger
}

// NewExecRunner creates a subprocess runner.
func NewExecRunner(logger *log.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes the artifact against the document.
func (r *ExecRunner) Run(ctx context.Context, artifactPath, docPath string) (model.Table, error) {
	cmd := exec.CommandContext(ctx, "go", "run", artifactPath, docPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running artifact", "artifact", artifactPath, "doc", docPath)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running artifact %s: %w: %s", artifactPath, err, stderr.String())
	}

	table, err := statement.ReadTable(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decoding artifact output: %w", err)
	}
	return table, nil
}
