package store

import (
	"context"
	"errors"

	"github.com/graphmind-ai/backend/pkg/common"
)

// ErrDocumentNotFound is returned when an operation references a document id
// that does not exist in the graph.
var ErrDocumentNotFound = errors.New("document not found")

// ErrUnavailable marks graph store infrastructure failures (connection lost,
// query execution failed). Callers can distinguish these from domain errors
// like ErrDocumentNotFound.
var ErrUnavailable = errors.New("graph store unavailable")

// DocumentRecord is a stored Document node together with its underlying
// node identity.
type DocumentRecord struct {
	NodeID   string
	Document common.Document
}

// EntityRecord is a stored Entity node together with its underlying node
// identity.
type EntityRecord struct {
	NodeID string
	Text   string
	Label  string
}

// GraphStore is the persistence contract of the ingestion pipeline and the
// graph query service.
//
// Entity identity is global: for any (text, label) pair the store holds at
// most one Entity node, and for any (document, entity) pair at most one
// HAS_ENTITY edge. Implementations must provide these invariants with atomic
// merge primitives (unique constraints); callers never emulate them with
// read-then-write sequences.
type GraphStore interface {
	// CreateDocument persists a new Document node with a server-generated
	// unique id and returns the stored document.
	CreateDocument(ctx context.Context, filename string, content string) (common.Document, error)

	// AttachEntities upserts one Entity node per span and creates the
	// HAS_ENTITY edge from the document where it does not already exist.
	// Calling it twice with the same arguments is a no-op the second time.
	// Returns ErrDocumentNotFound if the document id is unknown, so an edge
	// is never created from a missing source.
	AttachEntities(ctx context.Context, documentID string, entities []common.Span) error

	// DocumentWithEntities returns the document node and every entity it has
	// a HAS_ENTITY edge to. A document without entities returns an empty
	// entity slice; an unknown id returns ErrDocumentNotFound.
	DocumentWithEntities(ctx context.Context, documentID string) (DocumentRecord, []EntityRecord, error)

	// ListDocuments returns every stored document ordered by filename
	// ascending, ties broken by id. An empty store yields an empty slice.
	ListDocuments(ctx context.Context) ([]common.DocumentRef, error)
}
