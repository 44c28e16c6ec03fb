package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Bambang", cfg.Campus.Target)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "bambang_filtered.csv", cfg.Export.Filename)
	assert.False(t, cfg.Export.BOMPrefix)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "progdash.yaml")
	content := `
campus:
  target: Bayombong
logging:
  level: debug
export:
  filename: bayombong_filtered.csv
  bom_prefix: true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "Bayombong", cfg.Campus.Target)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "bayombong_filtered.csv", cfg.Export.Filename)
	assert.True(t, cfg.Export.BOMPrefix)
	// Untouched sections keep their defaults
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "progdash.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: loud\n"), 0644))

	_, err := Load(configFile)
	assert.Error(t, err)
}

func TestExportPath(t *testing.T) {
	cfg := &Config{
		Paths:  PathsConfig{ReportsDir: "reports"},
		Export: ExportConfig{Filename: "bambang_filtered.csv"},
	}
	assert.Equal(t, filepath.Join("reports", "bambang_filtered.csv"), cfg.ExportPath())

	cfg.Export.Filename = filepath.Join(string(filepath.Separator), "tmp", "out.csv")
	assert.Equal(t, cfg.Export.Filename, cfg.ExportPath())
}
