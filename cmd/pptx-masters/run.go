package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	masters "github.com/anotb/pptx-masters"
	themecolor "github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/config"
	"github.com/anotb/pptx-masters/generator"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
	"github.com/anotb/pptx-masters/preview"
)

// loadConfig reads .env, the config file and the environment, then applies
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Dir = opts.outputDir
	}
	if flags.Changed("format") {
		cfg.Output.Formats = opts.formats
	}
	if flags.Changed("preview") {
		cfg.Output.Preview = opts.previews
	}
	if flags.Changed("package") {
		cfg.Output.Package = opts.pkg
	}
	if flags.Changed("no-repair") {
		cfg.Extract.RepairPalette = !opts.noRepair
	}
	if flags.Changed("no-master-shapes") {
		cfg.Extract.MasterShapes = !opts.noMaster
	}
	if flags.Changed("raw") {
		cfg.Extract.PostProcess = !opts.raw
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// extract opens the template and runs the extraction configured by cfg. The
// returned archive stays open for image lookups and must be closed by the
// caller.
func extract(path string, cfg config.Config, logger *slog.Logger) (*pptx.Archive, *model.Result, []masters.Warning, error) {
	a, err := pptx.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	ext := masters.FromArchive(a).
		Logger(logger).
		RepairPalette(cfg.Extract.RepairPalette).
		MasterShapes(cfg.Extract.MasterShapes)
	if !cfg.Extract.PostProcess {
		ext = ext.Raw()
	}

	res, warnings, err := ext.Extract()
	if err != nil {
		a.Close()
		return nil, nil, nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return a, res, warnings, nil
}

func runExtract(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a, res, warnings, err := extract(path, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	written, err := writeOutputs(path, res, cfg, preview.NewImageCache(a))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range written {
		fmt.Fprintf(out, "  %s (%s)\n", file.path, humanize.Bytes(uint64(file.size)))
	}
	printWarnings(out, warnings)
	fmt.Fprintln(out, color.GreenString("Extracted %d layout(s) from %s", len(res.Layouts), filepath.Base(path)))
	return nil
}

type writtenFile struct {
	path string
	size int64
}

// outputName returns the file name for one output format. Generated Go
// source is named after its package.
func outputName(base string, f generator.Format, pkg string) string {
	switch f {
	case generator.FormatThemeJSON:
		return "theme" + f.FileExtension()
	case generator.FormatGo:
		return pkg + f.FileExtension()
	case generator.FormatCSV:
		return base + "-objects" + f.FileExtension()
	case generator.FormatXLSX:
		return base + "-swatches" + f.FileExtension()
	default:
		return base + f.FileExtension()
	}
}

// writeOutputs writes every configured format and preview into the output
// directory and returns the files in the order written.
func writeOutputs(path string, res *model.Result, cfg config.Config, images *preview.ImageCache) ([]writtenFile, error) {
	formats, err := cfg.OutputFormats()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var written []writtenFile
	record := func(name string) error {
		info, err := os.Stat(name)
		if err != nil {
			return err
		}
		written = append(written, writtenFile{path: name, size: info.Size()})
		return nil
	}

	for _, f := range formats {
		gen := generator.NewWithConfig(generator.Config{
			Format:          f,
			PrettyPrint:     cfg.Output.Pretty,
			Package:         cfg.Output.Package,
			IncludeWarnings: true,
		})
		name := filepath.Join(cfg.Output.Dir, outputName(base, f, gen.Config().Package))
		if err := gen.GenerateToFile(res, name); err != nil {
			return written, fmt.Errorf("writing %s: %w", f, err)
		}
		if err := record(name); err != nil {
			return written, err
		}
	}

	for _, kind := range cfg.Output.Preview {
		kind = strings.ToLower(kind)
		name := filepath.Join(cfg.Output.Dir, base+"-preview."+kind)
		switch kind {
		case "pdf":
			err = preview.PDFFile(name, res, images)
		case "html":
			err = preview.HTMLFile(name, res, images)
		default:
			err = fmt.Errorf("unknown preview kind %q", kind)
		}
		if err != nil {
			return written, fmt.Errorf("writing %s preview: %w", kind, err)
		}
		if err := record(name); err != nil {
			return written, err
		}
	}
	return written, nil
}

func printWarnings(w io.Writer, warnings []masters.Warning) {
	if len(warnings) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	fmt.Fprintln(w, yellow.Sprintf("%d warning(s):", len(warnings)))
	for _, warn := range warnings {
		fmt.Fprintln(w, yellow.Sprintf("  - %s", warn))
	}
}

func runInspect(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a, res, warnings, err := extract(path, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	title := res.Theme.Name
	if res.Metadata.Title != "" {
		title = res.Metadata.Title
	}
	fmt.Fprintln(out, bold.Sprint(title))
	fmt.Fprintf(out, "Slide size: %.4g x %.4g in\n\n", res.Dimensions.Width, res.Dimensions.Height)

	fmt.Fprintln(out, bold.Sprint("Theme colors"))
	for _, slot := range themecolor.SchemeSlots {
		hex := res.Theme.Colors[slot]
		r, g, b := themecolor.HexToRGB(hex)
		swatch := color.BgRGB(r, g, b).Sprint("    ")
		fmt.Fprintf(out, "  %s %-9s #%s\n", swatch, slot, hex)
	}
	fmt.Fprintf(out, "  Heading font: %s\n  Body font:    %s\n", res.Theme.Fonts.Major, res.Theme.Fonts.Minor)
	if res.Palette.Limited {
		fmt.Fprintf(out, "  Limited palette, %d substitution(s)\n", len(res.Palette.Substitutions))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, bold.Sprint("Layouts"))
	for i, l := range res.Layouts {
		bg := "inherited"
		if l.Background != nil {
			if l.Background.Image != "" {
				bg = "image " + l.Background.Image
			} else {
				bg = "#" + l.Background.Color
			}
		}
		fmt.Fprintf(out, "  %2d. %-28s %-10s %d object(s), %s\n", i+1, l.Name, l.Type, len(l.Objects), bg)
	}
	printWarnings(out, warnings)
	return nil
}

func runConfigGenerate(cmd *cobra.Command, opts *options) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultFile
	}
	if err := config.Generate(path, opts.force); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Wrote %s", path))
	return nil
}
