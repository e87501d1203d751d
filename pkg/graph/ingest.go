package graph

import (
	"context"
	"fmt"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/logger"
)

// IngestResult is the outcome of ingesting a single document: the stored
// document and the full deduplicated entity set that was attached to it.
type IngestResult struct {
	Document common.Document
	Entities []common.Span
}

// IngestDocument runs the full pipeline for one decoded document: persist the
// document node, extract entities from its content and attach them. The
// entity set is deduplicated on exact (text, label) before persistence, first
// occurrence winning.
func (c *GraphClient) IngestDocument(ctx context.Context, filename string, content string) (IngestResult, error) {
	doc, err := c.store.CreateDocument(ctx, filename, content)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to store document %q: %w", filename, err)
	}

	spans, err := c.extractEntities(ctx, content)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to extract entities from %q: %w", filename, err)
	}
	entities := dedupeSpans(spans)

	if err := c.store.AttachEntities(ctx, doc.ID, entities); err != nil {
		return IngestResult{}, fmt.Errorf("failed to attach entities to %q: %w", filename, err)
	}

	logger.Info("Ingested document", "id", doc.ID, "filename", filename, "entities", len(entities))

	return IngestResult{
		Document: doc,
		Entities: entities,
	}, nil
}
