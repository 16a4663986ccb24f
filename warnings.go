package masters

import (
	"fmt"
	"strings"

	"github.com/anotb/pptx-masters/model"
)

// Warning is a non-fatal issue found while extracting a layout. Extraction
// still produced a usable result, but some content was approximated or
// skipped.
type Warning struct {
	// Layout is the name of the layout the warning belongs to.
	Layout  string
	Message string
}

// String returns the warning as "layout: message".
func (w Warning) String() string {
	if w.Layout == "" {
		return w.Message
	}
	return w.Layout + ": " + w.Message
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// CollectWarnings flattens the per-layout warnings of a result in layout
// order.
func CollectWarnings(res *model.Result) []Warning {
	var out []Warning
	for _, l := range res.Layouts {
		for _, msg := range l.Warnings {
			out = append(out, Warning{Layout: l.Name, Message: msg})
		}
	}
	return out
}

// summary describes a result in one line for logging.
func summary(res *model.Result) string {
	return fmt.Sprintf("%d master(s), %d layout(s), %d warning(s)",
		len(res.Masters), len(res.Layouts), res.WarningCount())
}
