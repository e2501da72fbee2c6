// Package pptx reads the layout inventory of a PPTX (Office Open XML
// Presentation) template.
package pptx

import "encoding/xml"

// slideLayoutXML represents a ppt/slideLayouts/slideLayout*.xml file
// structure. Only the parts needed to inventory placeholders are
// mapped.
type slideLayoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	Type    string   `xml:"type,attr"` // title, obj, secHead, twoObj, etc.
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Name   string    `xml:"name,attr"` // Layout display name
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML represents the shape tree containing all shapes on a layout.
type spTreeXML struct {
	Sp []spXML `xml:"sp"`
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML `xml:"nvSpPr"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"` // Placeholder info
}

type phXML struct {
	Type string `xml:"type,attr"` // title, ctrTitle, subTitle, body, ftr, dt, sldNum, ...
	Idx  int    `xml:"idx,attr"`
}
