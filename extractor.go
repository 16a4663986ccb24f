package masters

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/anotb/pptx-masters/format"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// layoutNamespace seeds the name-based layout IDs, so a layout part keeps
// its ID across runs.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/anotb/pptx-masters/layouts"))

// Extractor provides a fluent interface for extracting masters and layouts
// from a template. Each configuration method returns a new Extractor
// instance, allowing method chaining.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	archive *pptx.Archive

	// Lifecycle
	ownsArchive bool // true if we opened the archive and should close it
	opened      bool

	// Configuration
	options ExtractOptions
	logger  *slog.Logger
}

// clone creates a shallow copy of the Extractor.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}

// ensureArchive opens the archive if not already open and detects its format.
func (e *Extractor) ensureArchive() error {
	if !e.opened {
		if e.filename == "" {
			return fmt.Errorf("no filename specified")
		}
		a, err := pptx.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", e.filename, err)
		}
		e.archive = a
		e.ownsArchive = true
		e.opened = true
	}

	if !e.archive.Has(pptx.PresentationPath) {
		return fmt.Errorf("not a presentation package: %s is missing", pptx.PresentationPath)
	}
	if data, err := e.archive.ReadFile("[Content_Types].xml"); err == nil {
		e.format = format.DetectFromContentTypes(data)
	}
	if e.format == format.Unknown {
		e.format = format.Detect(e.filename)
	}
	if e.format == format.Unknown {
		e.format = format.Presentation
	}
	return nil
}

// Close releases the archive if the Extractor opened it. It is safe to call
// Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsArchive || e.archive == nil {
		return nil
	}
	err := e.archive.Close()
	e.archive = nil
	e.ownsArchive = false
	e.opened = false
	return err
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger sets the logger extraction progress is reported to. A nil logger
// discards everything, which is also the default.
//
// Example:
//
//	res, _, err := masters.Open("brand.potx").Logger(slog.Default()).Extract()
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	if l == nil {
		l = discardLogger()
	}
	newExt.logger = l
	return newExt
}

// RepairPalette controls whether a limited accent palette is repaired with
// colors mined from the template's backgrounds. It is on by default; when
// off, the palette is only reported.
func (e *Extractor) RepairPalette(on bool) *Extractor {
	newExt := e.clone()
	newExt.options.repairPalette = on
	return newExt
}

// MasterShapes controls whether master decoration (logos, bars, background
// text) is copied into layouts that show master shapes. It is on by default.
func (e *Extractor) MasterShapes(on bool) *Extractor {
	newExt := e.clone()
	newExt.options.masterShapes = on
	return newExt
}

// Raw disables the post-processing passes: text-color backfill and
// footer-zone cleanup.
//
// Example:
//
//	res, _, err := masters.Open("brand.potx").Raw().Extract()
func (e *Extractor) Raw() *Extractor {
	newExt := e.clone()
	newExt.options.backfillColors = false
	newExt.options.cleanFooter = false
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Format returns the detected package format.
func (e *Extractor) Format() (format.Format, error) {
	if err := e.ensureArchive(); err != nil {
		return format.Unknown, err
	}
	defer e.Close()
	return e.format, nil
}

// Theme returns the template's theme without resolving any layout.
func (e *Extractor) Theme() (model.Theme, error) {
	if err := e.ensureArchive(); err != nil {
		return model.Theme{}, err
	}
	defer e.Close()

	masterPaths, err := pptx.MasterPaths(e.archive)
	if err != nil {
		return model.Theme{}, err
	}
	theme, err := loadTheme(e.archive, masterPaths)
	if err != nil {
		return model.Theme{}, err
	}
	return theme.Model(), nil
}

// Extract resolves every master and layout of the template. It returns the
// result, warnings about content that was approximated or skipped, and an
// error if the package is not a usable presentation.
//
// Example:
//
//	res, warnings, err := masters.Open("brand.potx").Extract()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", masters.FormatWarnings(warnings))
//	}
func (e *Extractor) Extract() (*model.Result, []Warning, error) {
	if err := e.ensureArchive(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	e.logger.Debug("extracting template", "file", e.filename, "format", e.format.String())

	x := &extraction{
		archive: e.archive,
		opts:    e.options,
		log:     e.logger,
		images:  make(map[string]string),
	}
	res, err := x.run()
	if err != nil {
		return nil, nil, err
	}

	warnings := CollectWarnings(res)
	for _, w := range warnings {
		e.logger.Warn(w.Message, "layout", w.Layout)
	}
	e.logger.Info("extracted template", "file", e.filename, "summary", summary(res))

	return res, warnings, nil
}

func loadTheme(a *pptx.Archive, masterPaths []string) (*pptx.Theme, error) {
	path, err := pptx.ThemePath(a, masterPaths)
	if err != nil {
		return nil, err
	}
	root, err := a.ReadXML(path)
	if err != nil {
		return nil, err
	}
	theme, err := pptx.ParseTheme(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}
