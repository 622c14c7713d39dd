package oxml

import (
	"archive/zip"
	"bytes"
	"testing"
)

const sampleXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>one</w:t></w:r><w:r><w:t>two</w:t></w:r></w:p>
    <w:p><w:r><w:t>three</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestParseAndQuery(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	n, err := doc.Count("//*[local-name()='p']")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("paragraph count = %d, want 2", n)
	}

	n, err = doc.Count("//*[local-name()='r']")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("run count = %d, want 3", n)
	}

	text, err := doc.InnerText("//*[local-name()='t']")
	if err != nil {
		t.Fatalf("InnerText failed: %v", err)
	}
	if text != "one" {
		t.Errorf("InnerText = %q, want first match", text)
	}

	text, err = doc.InnerText("//*[local-name()='nothing']")
	if err != nil {
		t.Fatalf("InnerText failed: %v", err)
	}
	if text != "" {
		t.Errorf("no-match InnerText = %q, want empty", text)
	}
}

func TestQueryInvalidXPath(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := doc.Query("//*[unclosed"); err == nil {
		t.Error("malformed XPath should return an error, not panic")
	}
}

func TestParseMalformedXML(t *testing.T) {
	if _, err := Parse([]byte("<w:document><unclosed")); err == nil {
		t.Error("malformed XML should fail to parse")
	}
}

func buildPackage(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestVerifyPackage(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"_rels/.rels":         "<Relationships/>",
		"word/document.xml":   sampleXML,
	})

	report, err := VerifyPackage(data)
	if err != nil {
		t.Fatalf("VerifyPackage failed: %v", err)
	}
	if report.ParagraphCount != 2 || report.RunCount != 3 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Parts) != 3 {
		t.Errorf("Parts = %v", report.Parts)
	}
}

func TestVerifyPackageMissingPart(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"word/document.xml":   sampleXML,
	})
	if _, err := VerifyPackage(data); err == nil {
		t.Error("missing _rels/.rels should fail verification")
	}
}

func TestVerifyPackageNotAZip(t *testing.T) {
	if _, err := VerifyPackage([]byte("definitely not a zip")); err == nil {
		t.Error("non-zip data should fail verification")
	}
}

func TestVerifyPackageMalformedDocument(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"_rels/.rels":         "<Relationships/>",
		"word/document.xml":   "<w:document><broken",
	})
	if _, err := VerifyPackage(data); err == nil {
		t.Error("malformed document part should fail verification")
	}
}

func TestIsPackagePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"draft.docx", true},
		{"DRAFT.DOCX", true},
		{"draft.md", false},
		{"draft.docx.bak", false},
	}
	for _, tt := range tests {
		if got := IsPackagePath(tt.path); got != tt.want {
			t.Errorf("IsPackagePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
