// Package masters provides a fluent API for turning a PowerPoint template
// into a resolved model of its theme, slide masters and layouts.
//
// Basic usage:
//
//	res, warnings, err := masters.Open("brand.potx").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", masters.FormatWarnings(warnings))
//	}
//
// With options:
//
//	res, _, err := masters.Open("brand.potx").
//	    Logger(slog.Default()).
//	    RepairPalette(false).
//	    Extract()
//
// Every color in the result is a resolved hex value and every text style is
// fully merged, ready for the generator and preview packages.
package masters

import (
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// Open opens a template file and returns an Extractor for fluent
// configuration. The file is read by a terminal operation such as Extract,
// which also closes it.
//
// Example:
//
//	res, warnings, err := masters.Open("brand.potx").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
		logger:   discardLogger(),
	}
}

// FromArchive creates an Extractor from an already-opened archive. The
// caller is responsible for closing the archive.
//
// Example:
//
//	a, err := pptx.Open("brand.potx")
//	if err != nil {
//	    // handle error
//	}
//	defer a.Close()
//	res, warnings, err := masters.FromArchive(a).Extract()
func FromArchive(a *pptx.Archive) *Extractor {
	return &Extractor{
		archive: a,
		opened:  true,
		options: defaultOptions(),
		logger:  discardLogger(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	theme := masters.Must(masters.Open("brand.potx").Theme())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Extract and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	res := masters.MustResult(masters.Open("brand.potx").Extract())
func MustResult(res *model.Result, _ []Warning, err error) *model.Result {
	if err != nil {
		panic(err)
	}
	return res
}
