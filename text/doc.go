// Package text extracts paragraph and run styling from DrawingML text bodies
// (a:txBody / p:txBody).
//
// # Text Extraction
//
// [Extract] walks a text body and produces a [Props] value holding the body
// properties, the paragraphs with their runs, a flattened plain-text
// projection and the list-style defaults:
//
//	r := color.NewResolver(theme.Colors, cmap, theme.Fonts)
//	props := text.Extract(txBody, r)
//	fmt.Println(props.PlainText, props.Body.Margin)
//
// Every field that can be inherited is kept tri-state. Absent booleans are nil
// pointers, absent measurements are nil *float64 values, and a nil [Bullet]
// means "unspecified" while a bullet with None set means "explicitly no
// bullet". Callers merging styles across the master/layout/paragraph cascade
// rely on these distinctions.
//
// # Runs
//
// Text runs and field runs (slide numbers, dates) keep document order. Line
// breaks are placed between neighboring runs when there is exactly one fewer
// break than runs; otherwise they are appended after the last run.
//
// # Text Direction
//
// [DetectDirection] classifies text by its strong directional characters and
// is used to flag right-to-left paragraphs that do not declare rtl="1".
package text
