// Package config loads pptx-masters settings from a TOML file, a .env file
// and PPTX_MASTERS_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/anotb/pptx-masters/generator"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "pptx-masters.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PPTX_MASTERS_"

type Config struct {
	Extract ExtractConfig `toml:"extract"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

type ExtractConfig struct {
	RepairPalette bool `toml:"repair_palette"`
	MasterShapes  bool `toml:"master_shapes"`
	// PostProcess enables text-color backfill and footer cleanup.
	PostProcess bool `toml:"post_process"`
}

type OutputConfig struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
	// Preview lists preview renderings: pdf, html.
	Preview []string `toml:"preview"`
	Package string   `toml:"package"`
	Pretty  bool     `toml:"pretty"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Extract: ExtractConfig{
			RepairPalette: true,
			MasterShapes:  true,
			PostProcess:   true,
		},
		Output: OutputConfig{
			Dir:     "out",
			Formats: []string{"json", "markdown"},
			Preview: []string{},
			Package: "brand",
			Pretty:  true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file means defaults; an empty path means
// DefaultFile.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from PPTX_MASTERS_* variables found by lookup.
// List values are comma separated.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(name string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = splitList(v)
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	if err := boolean("REPAIR_PALETTE", &c.Extract.RepairPalette); err != nil {
		return err
	}
	if err := boolean("MASTER_SHAPES", &c.Extract.MasterShapes); err != nil {
		return err
	}
	if err := boolean("POST_PROCESS", &c.Extract.PostProcess); err != nil {
		return err
	}
	if err := boolean("PRETTY", &c.Output.Pretty); err != nil {
		return err
	}
	str("OUTPUT_DIR", &c.Output.Dir)
	list("FORMATS", &c.Output.Formats)
	list("PREVIEW", &c.Output.Preview)
	str("PACKAGE", &c.Output.Package)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	for _, f := range c.Output.Formats {
		if _, err := generator.ParseFormat(f); err != nil {
			return err
		}
	}
	for _, p := range c.Output.Preview {
		switch strings.ToLower(p) {
		case "pdf", "html":
		default:
			return fmt.Errorf("unknown preview kind %q", p)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// OutputFormats returns the parsed output formats.
func (c Config) OutputFormats() ([]generator.Format, error) {
	out := make([]generator.Format, 0, len(c.Output.Formats))
	for _, name := range c.Output.Formats {
		f, err := generator.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// Save writes cfg to path atomically.
func Save(cfg Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// Generate writes the default config to path. An existing file is kept
// unless force is set.
func Generate(path string, force bool) error {
	if path == "" {
		path = DefaultFile
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	return Save(Default(), path)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
