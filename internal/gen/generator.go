// Package gen materializes standalone parser artifacts from a single
// parameterized template. Per-bank variation is data (keyword list and
// label), not separate template bodies.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/parsegen-dev/parsegen/internal/parse"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const parserTemplate = "parser.go.tmpl"

// Generator renders parser artifacts.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator loads the embedded artifact template.
func NewGenerator() (*Generator, error) {
	funcMap := template.FuncMap{
		"quoteList": quoteList,
	}

	tmpl, err := template.New(parserTemplate).Funcs(funcMap).ParseFS(templateFS, "templates/"+parserTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact template: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

// artifactData is the template parameter set.
type artifactData struct {
	Bank     string
	Label    string
	Keywords []string
}

// Render instantiates the artifact source for a bank and profile.
func (g *Generator) Render(bank string, profile parse.Profile) ([]byte, error) {
	var buf bytes.Buffer
	data := artifactData{
		Bank:     strings.ToLower(bank),
		Label:    profile.Label,
		Keywords: profile.Keywords,
	}
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering artifact for %s: %w", bank, err)
	}
	return buf.Bytes(), nil
}

// ArtifactPath is the fixed per-bank artifact location.
func ArtifactPath(parsersDir, bank string) string {
	return filepath.Join(parsersDir, strings.ToLower(bank)+"_parser.go")
}

// WriteArtifact writes rendered artifact source to its per-bank path,
// creating the parsers directory and overwriting any previous attempt.
func WriteArtifact(parsersDir, bank string, code []byte) (string, error) {
	if err := os.MkdirAll(parsersDir, 0o755); err != nil {
		return "", fmt.Errorf("creating parsers dir: %w", err)
	}
	path := ArtifactPath(parsersDir, bank)
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	return path, nil
}

// quoteList renders a string slice as Go source list elements.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
