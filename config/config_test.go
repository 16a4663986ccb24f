package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/generator"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Extract.RepairPalette)
	assert.True(t, cfg.Extract.MasterShapes)
	assert.True(t, cfg.Extract.PostProcess)
	assert.Equal(t, []string{"json", "markdown"}, cfg.Output.Formats)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileMeansDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx-masters.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[extract]
repair_palette = false

[output]
dir = "build"
formats = ["go", "xlsx"]
preview = ["pdf"]

[log]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Extract.RepairPalette)
	assert.True(t, cfg.Extract.MasterShapes, "unset keys keep their defaults")
	assert.Equal(t, "build", cfg.Output.Dir)
	assert.Equal(t, []string{"go", "xlsx"}, cfg.Output.Formats)
	assert.Equal(t, []string{"pdf"}, cfg.Output.Preview)
	assert.Equal(t, "brand", cfg.Output.Package)
	assert.Equal(t, "text", cfg.Log.Format)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx-masters.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\ndir = \"build\"\n"), 0o644))
	t.Setenv(EnvPrefix+"OUTPUT_DIR", "dist")
	t.Setenv(EnvPrefix+"MASTER_SHAPES", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Output.Dir)
	assert.False(t, cfg.Extract.MasterShapes)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformats = [\"pdf\"]\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"PPTX_MASTERS_FORMATS":        "theme, csv,,",
		"PPTX_MASTERS_PREVIEW":        "html",
		"PPTX_MASTERS_PACKAGE":        " acme ",
		"PPTX_MASTERS_POST_PROCESS":   "0",
		"PPTX_MASTERS_REPAIR_PALETTE": "FALSE",
		"PPTX_MASTERS_LOG_FORMAT":     "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"theme", "csv"}, cfg.Output.Formats)
	assert.Equal(t, []string{"html"}, cfg.Output.Preview)
	assert.Equal(t, "acme", cfg.Output.Package)
	assert.False(t, cfg.Extract.PostProcess)
	assert.False(t, cfg.Extract.RepairPalette)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestApplyEnv_BadBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{"PPTX_MASTERS_PRETTY": "sometimes"}))
	assert.ErrorContains(t, err, "PPTX_MASTERS_PRETTY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"preview", func(c *Config) { c.Output.Preview = []string{"png"} }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"format", func(c *Config) { c.Output.Formats = []string{"yaml"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestOutputFormats(t *testing.T) {
	cfg := Default()
	cfg.Output.Formats = []string{"md", "go"}
	formats, err := cfg.OutputFormats()
	require.NoError(t, err)
	assert.Equal(t, []generator.Format{generator.FormatMarkdown, generator.FormatGo}, formats)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pptx-masters.toml")
	cfg := Default()
	cfg.Output.Formats = []string{"xlsx"}
	cfg.Extract.MasterShapes = false
	require.NoError(t, Save(cfg, path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx-masters.toml")
	require.NoError(t, Generate(path, false))
	assert.Error(t, Generate(path, false))
	assert.NoError(t, Generate(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PPTX_MASTERS_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PPTX_MASTERS_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("PPTX_MASTERS_TEST_DOTENV"))
}
