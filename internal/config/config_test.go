package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "custom_parsers", cfg.ParsersDir)
	assert.Equal(t, 3, cfg.MaxAttempts)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.DataDir = "statements"
	cfg.Banks = map[string]BankConfig{
		"hdfc": {Label: "HDFC Bank", Keywords: []string{"debit", "emi"}},
	}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestProfileFor_BuiltIn(t *testing.T) {
	cfg := Default()

	icici := cfg.ProfileFor("icici")
	assert.Equal(t, "ICICI Bank", icici.Label)
	assert.NotContains(t, icici.Keywords, "atm")

	generic := cfg.ProfileFor("sbi")
	assert.Contains(t, generic.Keywords, "atm")
}

func TestProfileFor_Override(t *testing.T) {
	cfg := Default()
	cfg.Banks = map[string]BankConfig{
		"sbi": {Keywords: []string{"debit", "upi"}},
	}

	p := cfg.ProfileFor("sbi")
	assert.Equal(t, "Generic Bank", p.Label)
	assert.Equal(t, []string{"debit", "upi"}, p.Keywords)
}
