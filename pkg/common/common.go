package common

// Span is a single entity mention recognized in a chunk of text: the exact
// matched substring and the category assigned by the recognizer.
//
// The label vocabulary is open-ended and owned by the recognizer backend;
// nothing in this codebase assumes a closed set of labels.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Document is an uploaded document as persisted in the graph store.
// Documents are immutable after creation and are never deleted.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// DocumentRef is a catalog entry for listing stored documents.
type DocumentRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Node is one node of the visualization graph. The ID is the underlying
// store-node identity, not the document or entity key, so the same stored
// node maps to exactly one view node.
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Edge is a directed edge of the visualization graph.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// GraphView is the node/edge structure returned to a visualization client.
// It is assembled at query time and never persisted.
type GraphView struct {
	ID    string `json:"id"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
