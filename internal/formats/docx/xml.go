package docx

import (
	"encoding/xml"
	"strconv"
)

// WordProcessingML structures for word/document.xml. Prefixed tag names
// are emitted literally with the namespace declared on the root, which
// keeps encoding/xml's marshaler in charge of all text escaping.

type document struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    body     `xml:"w:body"`
}

type body struct {
	Paragraphs []paragraph `xml:"w:p"`
	SectPr     *sectPr     `xml:"w:sectPr"`
}

type paragraph struct {
	Props *paraProps `xml:"w:pPr,omitempty"`
	Runs  []run      `xml:"w:r"`
}

type paraProps struct {
	Style   *val     `xml:"w:pStyle,omitempty"`
	Spacing *spacing `xml:"w:spacing,omitempty"`
	Indent  *indent  `xml:"w:ind,omitempty"`
	Justify *val     `xml:"w:jc,omitempty"`
}

type spacing struct {
	After    int    `xml:"w:after,attr"`
	Line     int    `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type indent struct {
	FirstLine int `xml:"w:firstLine,attr"`
}

type val struct {
	Val string `xml:"w:val,attr"`
}

// run is one discrete output fragment: either literal text carrying
// boolean style attributes, or a break token.
type run struct {
	Props *runProps `xml:"w:rPr,omitempty"`
	Break *brk      `xml:"w:br,omitempty"`
	Text  *text     `xml:"w:t,omitempty"`
}

type runProps struct {
	Fonts     *fonts  `xml:"w:rFonts,omitempty"`
	Bold      *toggle `xml:"w:b,omitempty"`
	Italic    *toggle `xml:"w:i,omitempty"`
	Underline *val    `xml:"w:u,omitempty"`
	Size      *val    `xml:"w:sz,omitempty"`
}

type fonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type toggle struct{}

type brk struct {
	Type string `xml:"w:type,attr,omitempty"`
}

type text struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type sectPr struct {
	PageSize    pageSize    `xml:"w:pgSz"`
	PageMargins pageMargins `xml:"w:pgMar"`
}

type pageSize struct {
	Width  int `xml:"w:w,attr"`
	Height int `xml:"w:h,attr"`
}

type pageMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Static package parts.
const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// twipsPerMM converts millimetres to twentieths of a point.
const twipsPerMM = 1440.0 / 25.4

// pageDimensions maps the profile page size to twips; A4 is the default.
func pageDimensions(name string) pageSize {
	if name == "Letter" {
		return pageSize{Width: 12240, Height: 15840}
	}
	return pageSize{Width: 11906, Height: 16838}
}

// halfPoints converts a font size in points to the sz attribute unit.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt*2 + 0.5))
}

func twips(mm float64) int {
	return int(mm*twipsPerMM + 0.5)
}
