// Package pptx reads the parts of a PresentationML package that define its
// look: theme, slide masters and slide layouts.
package pptx

import "encoding/xml"

// presentationXML represents the parts of ppt/presentation.xml used here.
type presentationXML struct {
	XMLName         xml.Name            `xml:"presentation"`
	SlideMasterList *slideMasterListXML `xml:"sldMasterIdLst"`
	SlideSz         *slideSzXML         `xml:"sldSz"`
}

type slideMasterListXML struct {
	SlideMasterID []idRefXML `xml:"sldMasterId"`
}

// idRefXML is an sldMasterId or sldLayoutId entry.
type idRefXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type slideSzXML struct {
	Cx *int64 `xml:"cx,attr"` // Width in EMUs
	Cy *int64 `xml:"cy,attr"` // Height in EMUs
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Title    string   `xml:"title"`
	Subject  string   `xml:"subject"`
	Creator  string   `xml:"creator"`
	Keywords string   `xml:"keywords"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName xml.Name `xml:"Properties"`
	Company string   `xml:"Company"`
}
