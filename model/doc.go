// Package model provides the resolved representation of a presentation
// template that code and documentation generators consume.
//
// Everything in this package is fully resolved: colors are six-digit hex
// strings, text styling is merged down to a single [TextOptions] per object,
// and every layout carries a flat, de-duplicated object list ready for direct
// serialization.
//
// # Result Structure
//
// A [Result] holds the document-wide [Theme], slide [Dimensions], one
// [Master] summary per slide master, and one [Layout] per slide layout:
//
//	for _, l := range result.Layouts {
//	    fmt.Println(l.Name, len(l.Objects), len(l.Warnings))
//	}
//
// # Objects
//
// Layout content implements the [Object] interface. The concrete types are:
//
//   - [Placeholder] - a typed content region (title, body, pic, ...)
//   - [Shape] - a filled/outlined preset geometry
//   - [Text] - a static text box (including footer/date/header text)
//   - [Image] - a picture resolved to an archive media path
//   - [Line] - a straight line, which may legitimately have zero width or height
//
// Slide numbers are carried separately in [Layout.SlideNumber].
//
// # Geometry
//
// Positions are in inches relative to the slide's top-left corner. See
// [Position].
//
// # Palette Repair
//
// When a theme's accent colors are degenerate, [PaletteReport] records which
// accent slots were replaced and with what, so generators can document the
// substitution.
package model
