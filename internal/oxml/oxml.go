// Package oxml inspects emitted word-processor packages: zip structure,
// XML well-formedness, and XPath queries over the document part. It is
// used by artifact verification and by the docx emitter's tests.
package oxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document is a parsed XML part.
type Document struct {
	root *xmlquery.Node
}

// Parse parses XML data.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Query returns the nodes matching an XPath expression. The expression
// is compiled first so malformed paths surface as errors, not panics.
func (d *Document) Query(expr string) ([]*xmlquery.Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid XPath %q: %w", expr, err)
	}
	return xmlquery.QueryAll(d.root, expr)
}

// Count returns the number of nodes matching an XPath expression.
func (d *Document) Count(expr string) (int, error) {
	nodes, err := d.Query(expr)
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// InnerText returns the concatenated text of the first match, or ""
// when nothing matches.
func (d *Document) InnerText(expr string) (string, error) {
	nodes, err := d.Query(expr)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", nil
	}
	return nodes[0].InnerText(), nil
}

// ParsePackagePart extracts one named part from a zip package and
// parses it as XML.
func ParsePackagePart(pkg []byte, name string) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, fmt.Errorf("not a valid package archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", name, err)
		}
		defer rc.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", name, err)
		}
		return Parse(buf.Bytes())
	}
	return nil, fmt.Errorf("package has no part %s", name)
}

// PackageReport summarizes a verified word-processor package.
type PackageReport struct {
	Parts          []string
	ParagraphCount int
	RunCount       int
}

// requiredParts are the package parts every emitted docx must carry.
var requiredParts = []string{
	"[Content_Types].xml",
	"_rels/.rels",
	"word/document.xml",
}

// VerifyPackage checks a word-processor artifact: required zip parts
// present and the document part well-formed. It returns a structural
// summary on success.
func VerifyPackage(data []byte) (*PackageReport, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a valid package archive: %w", err)
	}

	parts := make(map[string][]byte, len(zr.File))
	report := &PackageReport{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to read part %s: %w", f.Name, err)
		}
		rc.Close()
		parts[f.Name] = buf.Bytes()
		report.Parts = append(report.Parts, f.Name)
	}

	for _, name := range requiredParts {
		if _, ok := parts[name]; !ok {
			return nil, fmt.Errorf("package missing required part %s", name)
		}
	}

	doc, err := Parse(parts["word/document.xml"])
	if err != nil {
		return nil, fmt.Errorf("document part is not well-formed: %w", err)
	}
	if report.ParagraphCount, err = doc.Count("//*[local-name()='p']"); err != nil {
		return nil, err
	}
	if report.RunCount, err = doc.Count("//*[local-name()='r']"); err != nil {
		return nil, err
	}
	return report, nil
}

// IsPackagePath reports whether path names a word-processor package by
// extension.
func IsPackagePath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".docx")
}
