package neo4j

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func TestDocumentRecord(t *testing.T) {
	node := neo4j.Node{
		ElementId: "4:abc:12",
		Labels:    []string{"Document"},
		Props: map[string]any{
			"id":       "0190cafe-0000-7000-8000-000000000001",
			"filename": "report.txt",
			"content":  "Ada Lovelace visited Paris.",
		},
	}

	got := documentRecord(node)
	if got.NodeID != "4:abc:12" {
		t.Errorf("NodeID = %q, want %q", got.NodeID, "4:abc:12")
	}
	if got.Document.ID != "0190cafe-0000-7000-8000-000000000001" {
		t.Errorf("Document.ID = %q", got.Document.ID)
	}
	if got.Document.Filename != "report.txt" {
		t.Errorf("Document.Filename = %q", got.Document.Filename)
	}
	if got.Document.Content != "Ada Lovelace visited Paris." {
		t.Errorf("Document.Content = %q", got.Document.Content)
	}
}

func TestDocumentRecordMissingProps(t *testing.T) {
	got := documentRecord(neo4j.Node{ElementId: "4:abc:13", Props: map[string]any{}})
	if got.NodeID != "4:abc:13" {
		t.Errorf("NodeID = %q", got.NodeID)
	}
	if got.Document.ID != "" || got.Document.Filename != "" || got.Document.Content != "" {
		t.Errorf("expected zero-valued document, got %+v", got.Document)
	}
}

func TestEntityRecord(t *testing.T) {
	node := neo4j.Node{
		ElementId: "4:abc:77",
		Labels:    []string{"Entity"},
		Props: map[string]any{
			"text":  "Paris",
			"label": "GPE",
		},
	}

	got := entityRecord(node)
	if got.NodeID != "4:abc:77" {
		t.Errorf("NodeID = %q", got.NodeID)
	}
	if got.Text != "Paris" || got.Label != "GPE" {
		t.Errorf("got %+v, want Paris/GPE", got)
	}
}

func TestNodeValue(t *testing.T) {
	if _, ok := nodeValue(nil); ok {
		t.Error("nodeValue(nil) should not be ok")
	}
	if _, ok := nodeValue("not a node"); ok {
		t.Error("nodeValue(string) should not be ok")
	}
	if _, ok := nodeValue(neo4j.Node{ElementId: "4:abc:1"}); !ok {
		t.Error("nodeValue(Node) should be ok")
	}
}

func TestStringValue(t *testing.T) {
	if got := stringValue("x"); got != "x" {
		t.Errorf("stringValue(\"x\") = %q", got)
	}
	if got := stringValue(nil); got != "" {
		t.Errorf("stringValue(nil) = %q", got)
	}
	if got := stringValue(7); got != "" {
		t.Errorf("stringValue(7) = %q", got)
	}
}
