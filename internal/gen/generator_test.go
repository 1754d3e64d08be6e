package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	icici := ProfileFor("ICICI")
	assert.Equal(t, "ICICI Bank", icici.Label)
	assert.NotContains(t, icici.Keywords, "atm")
	assert.Contains(t, icici.Keywords, "withdrawal")

	generic := ProfileFor("sbi")
	assert.Equal(t, "Generic Bank", generic.Label)
	assert.Contains(t, generic.Keywords, "atm")
	assert.Contains(t, generic.Keywords, "card")
}

func TestRender(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	code, err := g.Render("sbi", ProfileFor("sbi"))
	require.NoError(t, err)

	src := string(code)
	assert.Contains(t, src, "package main")
	assert.Contains(t, src, "Generic Bank statement parser")
	assert.Contains(t, src, `"debit", "withdrawal", "payment", "purchase", "atm", "card"`)
	assert.Contains(t, src, "expected_result.csv")
	assert.Contains(t, src, "results.csv")
}

func TestRender_ProfilesDifferOnlyInParameters(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	icici, err := g.Render("icici", ProfileFor("icici"))
	require.NoError(t, err)
	generic, err := g.Render("hdfc", ProfileFor("hdfc"))
	require.NoError(t, err)

	assert.NotContains(t, string(icici), `"atm"`)
	assert.Contains(t, string(generic), `"atm"`)

	// Same template body: strip the parameterized bits and the rest
	// must be identical.
	norm := func(src, bank, label string) string {
		s := strings.ReplaceAll(src, bank, "X")
		s = strings.ReplaceAll(s, label, "Y")
		return s
	}
	a := norm(strings.ReplaceAll(string(icici), `"debit", "withdrawal", "payment", "purchase"`, "K"), "icici", "ICICI Bank")
	b := norm(strings.ReplaceAll(string(generic), `"debit", "withdrawal", "payment", "purchase", "atm", "card"`, "K"), "hdfc", "Generic Bank")
	assert.Equal(t, a, b)
}

func TestRender_Deterministic(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	first, err := g.Render("icici", ProfileFor("icici"))
	require.NoError(t, err)
	second, err := g.Render("icici", ProfileFor("icici"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom_parsers")

	path, err := WriteArtifact(dir, "ICICI", []byte("package main\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "icici_parser.go"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(data))
}

func TestWriteArtifact_Overwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteArtifact(dir, "sbi", []byte("first"))
	require.NoError(t, err)
	path, err := WriteArtifact(dir, "sbi", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
