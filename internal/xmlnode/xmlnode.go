// Package xmlnode provides nil-safe navigation helpers over parsed XML trees.
//
// OOXML parts are parsed into generic [xmlquery.Node] trees. Elements are
// matched on their local name so that documents using non-standard namespace
// prefixes are still understood, and every helper accepts a nil node so that
// callers can chain lookups through optional elements without checking each
// level.
package xmlnode

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Parse parses an XML document.
func Parse(data []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return doc, nil
}

// Root returns the document element of doc, or nil. When doc is already an
// element it is returned unchanged.
func Root(doc *xmlquery.Node) *xmlquery.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == xmlquery.ElementNode {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// Name returns the local name of an element.
func Name(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.Data
}

// Child returns the first child element with the given local name.
func Child(n *xmlquery.Node, name string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// Path follows a chain of child names, returning nil as soon as one is missing.
func Path(n *xmlquery.Node, names ...string) *xmlquery.Node {
	for _, name := range names {
		n = Child(n, name)
		if n == nil {
			return nil
		}
	}
	return n
}

// Children returns all child elements with the given local name, in
// document order. A single child and repeated children are returned the
// same way.
func Children(n *xmlquery.Node, name string) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns all child elements of n in document order.
func Elements(n *xmlquery.Node) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FirstOf returns the first child element whose local name is one of names,
// together with the matched name.
func FirstOf(n *xmlquery.Node, names ...string) (*xmlquery.Node, string) {
	if n == nil {
		return nil, ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		for _, name := range names {
			if c.Data == name {
				return c, name
			}
		}
	}
	return nil, ""
}

// Attr returns the value of the attribute with the given local name and
// whether it is present. An attribute that is present but empty reports ok.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// QualifiedAttr returns the value of a namespace-prefixed attribute, such
// as r:id, ignoring an unprefixed attribute with the same local name.
func QualifiedAttr(n *xmlquery.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == name && a.Name.Space != "" && a.Name.Space != "xmlns" {
			return a.Value
		}
	}
	return ""
}

// AttrString returns the attribute value or "".
func AttrString(n *xmlquery.Node, name string) string {
	v, _ := Attr(n, name)
	return v
}

// AttrInt returns the attribute parsed as an integer. ok is false when the
// attribute is absent or not a number.
func AttrInt(n *xmlquery.Node, name string) (int64, bool) {
	v, present := Attr(n, name)
	if !present {
		return 0, false
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if ferr != nil {
			return 0, false
		}
		return int64(f), true
	}
	return i, true
}

// AttrBool returns a three-valued boolean: nil when the attribute is absent,
// otherwise true for "1"/"true"/"on" and false for anything else.
func AttrBool(n *xmlquery.Node, name string) *bool {
	v, present := Attr(n, name)
	if !present {
		return nil
	}
	b := ParseBool(v)
	return &b
}

// ParseBool parses an XML schema boolean.
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on":
		return true
	}
	return false
}

// Text returns the concatenated character data of n.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}

// Has reports whether n has a child element with the given local name. An
// empty self-closing element counts as present.
func Has(n *xmlquery.Node, name string) bool {
	return Child(n, name) != nil
}
