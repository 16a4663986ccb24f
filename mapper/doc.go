// Package mapper turns parsed master and layout shapes into the resolved
// output model.
//
// Every mapper takes a [Context] that binds the color resolver in effect
// for the layout (or master) being mapped, the relationships used to resolve
// image references, and a warning list. Unsupported input never fails a
// mapping; it produces a best-effort value and a warning instead:
//
//   - gradient fills and backgrounds use their first stop color
//   - pattern fills use their foreground color
//   - unresolvable image references and bgRef colors are dropped
//
// The text-options cascade is implemented by [MapTextOptions]. Its fallback
// order is fixed: paragraph properties, then list-style properties, then the
// first run, then inherited master placeholder and master text styles.
package mapper
