package fixture

import (
	"fmt"
	"strings"
)

// DefaultColors returns the Office 2013 color scheme.
func DefaultColors() map[string]string {
	return map[string]string{
		"dk1": "000000", "lt1": "FFFFFF", "dk2": "44546A", "lt2": "E7E6E6",
		"accent1": "4472C4", "accent2": "ED7D31", "accent3": "A5A5A5",
		"accent4": "FFC000", "accent5": "5B9BD5", "accent6": "70AD47",
		"hlink": "0563C1", "folHlink": "954F72",
	}
}

var slots = []string{
	"dk1", "lt1", "dk2", "lt2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// Theme renders a theme part. dk1 and lt1 are written as system colors the
// way PowerPoint does.
func Theme(name string, colors map[string]string) string {
	var scheme strings.Builder
	for _, slot := range slots {
		hex, ok := colors[slot]
		if !ok {
			continue
		}
		switch slot {
		case "dk1":
			fmt.Fprintf(&scheme, `<a:dk1><a:sysClr val="windowText" lastClr="%s"/></a:dk1>`, hex)
		case "lt1":
			fmt.Fprintf(&scheme, `<a:lt1><a:sysClr val="window" lastClr="%s"/></a:lt1>`, hex)
		default:
			fmt.Fprintf(&scheme, `<a:%s><a:srgbClr val="%s"/></a:%s>`, slot, hex, slot)
		}
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme %s name="%s">
  <a:themeElements>
    <a:clrScheme name="Office">%s</a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/></a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Office">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="50000"/></a:schemeClr></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:shade val="50000"/></a:schemeClr></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst><a:outerShdw blurRad="57150" dist="19050" dir="5400000"><a:srgbClr val="000000"><a:alpha val="63000"/></a:srgbClr></a:outerShdw></a:effectLst></a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="95000"/></a:schemeClr></a:solidFill>
        <a:gradFill><a:gsLst><a:gs pos="0"><a:schemeClr val="phClr"/></a:gs><a:gs pos="100000"><a:schemeClr val="phClr"><a:shade val="50000"/></a:schemeClr></a:gs></a:gsLst></a:gradFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
</a:theme>`, Namespaces, name, scheme.String())
}

// Master renders a slide master. bg may be empty; shapes are spTree
// children.
func Master(bg, shapes string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster %s>
  <p:cSld>%s<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>%s</p:spTree></p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  {{LAYOUTS}}
  <p:txStyles>
    <p:titleStyle><a:lvl1pPr algn="l"><a:defRPr sz="4400"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mj-lt"/></a:defRPr></a:lvl1pPr></p:titleStyle>
    <p:bodyStyle><a:lvl1pPr marL="228600" indent="-228600"><a:buFont typeface="Arial"/><a:buChar char="•"/><a:defRPr sz="2800"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/></a:defRPr></a:lvl1pPr></p:bodyStyle>
    <p:otherStyle><a:lvl1pPr><a:defRPr sz="1800"/></a:lvl1pPr></p:otherStyle>
  </p:txStyles>
</p:sldMaster>`, Namespaces, bg, shapes)
}

// Layout renders a slide layout. attrs are extra sldLayout attributes
// (e.g. `type="title"`), extra is inserted after cSld (e.g. a clrMapOvr).
func Layout(name, attrs, bg, shapes, extra string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout %s %s>
  <p:cSld name="%s">%s<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>%s</p:spTree></p:cSld>
  %s
</p:sldLayout>`, Namespaces, attrs, name, bg, shapes, extra)
}

// SolidBackground renders a p:bg with an srgb solid fill.
func SolidBackground(hex string) string {
	return fmt.Sprintf(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, hex)
}

// Xfrm renders an a:xfrm in EMUs.
func Xfrm(x, y, cx, cy int64) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
}

// Placeholder renders a placeholder p:sp. phAttrs are p:ph attributes;
// xfrm and body may be empty.
func Placeholder(id int, name, phAttrs, xfrm, body string) string {
	txBody := ""
	if body != "" {
		txBody = "<p:txBody><a:bodyPr/><a:lstStyle/>" + body + "</p:txBody>"
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph %s/></p:nvPr></p:nvSpPr><p:spPr>%s</p:spPr>%s</p:sp>`,
		id, name, phAttrs, xfrm, txBody)
}

// Shape renders a static p:sp. spPr is the content after the xfrm.
func Shape(id int, name, xfrm, spPr, txBody string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>%s%s</p:spPr>%s</p:sp>`,
		id, name, xfrm, spPr, txBody)
}

// TextBox renders a text box with one paragraph body.
func TextBox(id int, name, xfrm, paragraphs string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr><p:txBody><a:bodyPr wrap="none"/><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, name, xfrm, paragraphs)
}

// Picture renders a p:pic referencing rid.
func Picture(id int, name, rid, xfrm string) string {
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, name, rid, xfrm)
}

// Group renders an empty group shape.
func Group(id int, name string) string {
	return fmt.Sprintf(`<p:grpSp><p:nvGrpSpPr><p:cNvPr id="%d" name="%s"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:grpSp>`, id, name)
}

// Connector renders a straight connector.
func Connector(id int, name, xfrm string) string {
	return fmt.Sprintf(`<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="%s"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr>%s<a:prstGeom prst="line"><a:avLst/></a:prstGeom></p:spPr></p:cxnSp>`, id, name, xfrm)
}

// Table renders a graphic frame holding a table.
func Table(id int, name string) string {
	return fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="%s"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr><p:xfrm><a:off x="0" y="0"/><a:ext cx="914400" cy="914400"/></p:xfrm><a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl/></a:graphicData></a:graphic></p:graphicFrame>`, id, name)
}

// SlideNumberField renders a paragraph holding only a slide-number field.
func SlideNumberField(sz int) string {
	return fmt.Sprintf(`<a:p><a:fld id="{B6F15528-21DE-4FAA-801E-634DDDAF4B2B}" type="slidenum"><a:rPr lang="en-US" sz="%d"/><a:t>‹#›</a:t></a:fld><a:endParaRPr lang="en-US"/></a:p>`, sz)
}

// Paragraph renders a single-run paragraph.
func Paragraph(text string) string {
	return fmt.Sprintf(`<a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p>`, text)
}
