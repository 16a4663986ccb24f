package mapper

import (
	"fmt"
	"strings"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// Context carries what mapping one master or layout needs.
type Context struct {
	Resolver *color.Resolver
	Theme    *pptx.Theme
	// Master supplies the text styles; it may be nil.
	Master *pptx.Master
	Rels   pptx.Relationships
	// Part is the path of the part whose relationships are in Rels.
	Part   string
	Source model.Source

	Warnings []string
}

// Warnf records a warning.
func (c *Context) Warnf(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// resolveImage resolves a relationship ID to an archive path and the path
// relative to ppt/. It warns when the reference is broken.
func (c *Context) resolveImage(rid, owner string) (archivePath, mediaPath string, ok bool) {
	if rid == "" {
		c.Warnf("Image in %q has no relationship reference", owner)
		return "", "", false
	}
	target, ok := c.Rels.Resolve(c.Part, rid)
	if !ok {
		c.Warnf("Image reference %s in %q could not be resolved", rid, owner)
		return "", "", false
	}
	return target, strings.TrimPrefix(target, "ppt/"), true
}
