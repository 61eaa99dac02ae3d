package folio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tsawler/folio/model"
)

func layoutSample(t *testing.T) *model.LayoutResult {
	t.Helper()
	elements := []model.Element{
		&model.Heading{ElementID: "h1", Content: "Title", Level: 1},
		&model.Text{ElementID: "p1", Content: "A short paragraph."},
		&model.Table{
			ElementID: "tab",
			Header:    []string{"Name", "Value"},
			Rows:      [][]string{{"a", "1"}, {"b", "2"}},
		},
	}

	result, _, err := Compose(elements...).Result()
	if err != nil {
		t.Fatalf("Expected layout to succeed, got %v", err)
	}
	return result
}

func TestExportFormat_Strings(t *testing.T) {
	tests := []struct {
		format ExportFormat
		name   string
		ext    string
	}{
		{ExportFormatJSON, "json", ".json"},
		{ExportFormatJSONL, "jsonl", ".jsonl"},
		{ExportFormat(99), "unknown", ".txt"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("Expected format name %q, got %q", tt.name, got)
		}
		if got := tt.format.FileExtension(); got != tt.ext {
			t.Errorf("Expected extension %q, got %q", tt.ext, got)
		}
	}
}

func TestExportJSON(t *testing.T) {
	result := layoutSample(t)

	var buf bytes.Buffer
	if err := ExportJSON(result, &buf); err != nil {
		t.Fatalf("Expected export to succeed, got %v", err)
	}

	var decoded resultDTO
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	if len(decoded.Pages) != result.PageCount() {
		t.Errorf("Expected %d pages, got %d", result.PageCount(), len(decoded.Pages))
	}
	page := decoded.Pages[0]
	if page.ID != "page-1" {
		t.Errorf("Expected page ID page-1, got %q", page.ID)
	}
	if len(page.Elements) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(page.Elements))
	}
	if page.Elements[0].Type != "heading" || page.Elements[0].Content.Level != 1 {
		t.Errorf("Expected a level-1 heading first, got %+v", page.Elements[0])
	}
	if got := page.Elements[2].Content.Header; len(got) != 2 || got[0] != "Name" {
		t.Errorf("Expected table header preserved, got %v", got)
	}
}

func TestExportJSONL(t *testing.T) {
	result := layoutSample(t)

	var buf bytes.Buffer
	if err := ExportJSONL(result, &buf); err != nil {
		t.Fatalf("Expected export to succeed, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(result.Elements) {
		t.Fatalf("Expected %d lines, got %d", len(result.Elements), len(lines))
	}

	for i, line := range lines {
		var el elementDTO
		if err := json.Unmarshal([]byte(line), &el); err != nil {
			t.Fatalf("Line %d: expected valid JSON, got %v", i, err)
		}
		if el.ID != result.Elements[i].Element.ID() {
			t.Errorf("Line %d: expected ID %q, got %q", i, result.Elements[i].Element.ID(), el.ID)
		}
	}
}

func TestExport_Dispatch(t *testing.T) {
	result := layoutSample(t)

	var buf bytes.Buffer
	if err := Export(result, &buf, ExportFormatJSONL); err != nil {
		t.Fatalf("Expected export to succeed, got %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output to be written")
	}

	if err := Export(result, &buf, ExportFormat(99)); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestExport_NilResult(t *testing.T) {
	if err := ExportJSON(nil, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for nil result")
	}
	if err := ExportJSONL(nil, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for nil result")
	}
}

func TestExportJSONL_Deterministic(t *testing.T) {
	result := layoutSample(t)

	var a, b bytes.Buffer
	if err := ExportJSONL(result, &a); err != nil {
		t.Fatal(err)
	}
	if err := ExportJSONL(result, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("Expected byte-identical export for identical input")
	}
}
