package masters

// ExtractOptions holds configuration for template extraction.
type ExtractOptions struct {
	// Replace degenerate accent colors with colors mined from backgrounds.
	repairPalette bool

	// Inherit master decoration into layouts that show master shapes.
	masterShapes bool

	// Post-processing passes.
	backfillColors bool
	cleanFooter    bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		repairPalette:  true,
		masterShapes:   true,
		backfillColors: true,
		cleanFooter:    true,
	}
}
