package graph

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/store"
)

const viewPreviewRunes = 140

// ListDocuments returns catalog entries for every stored document, ordered by
// filename.
func (c *GraphClient) ListDocuments(ctx context.Context) ([]common.DocumentRef, error) {
	return c.store.ListDocuments(ctx)
}

// DocumentGraph assembles the visualization graph for one document: the
// document node plus one node and one edge per attached entity. An unknown id
// surfaces store.ErrDocumentNotFound; a document without entities yields a
// single-node view with no edges.
func (c *GraphClient) DocumentGraph(ctx context.Context, documentID string) (common.GraphView, error) {
	doc, entities, err := c.store.DocumentWithEntities(ctx, documentID)
	if err != nil {
		return common.GraphView{}, fmt.Errorf("failed to load graph for document %s: %w", documentID, err)
	}
	return buildView(doc, entities), nil
}

func buildView(doc store.DocumentRecord, entities []store.EntityRecord) common.GraphView {
	view := common.GraphView{
		ID:    doc.Document.ID,
		Nodes: make([]common.Node, 0, len(entities)+1),
		Edges: make([]common.Edge, 0, len(entities)),
	}

	docLabel := doc.Document.Filename
	if docLabel == "" {
		docLabel = "Document"
	}
	docDescription := truncateRunes(doc.Document.Content, viewPreviewRunes)
	if docDescription == "" {
		docDescription = "Uploaded document"
	}
	view.Nodes = append(view.Nodes, common.Node{
		ID:          doc.NodeID,
		Label:       docLabel,
		Description: docDescription,
	})

	seen := map[string]struct{}{doc.NodeID: {}}
	for _, entity := range entities {
		if _, ok := seen[entity.NodeID]; !ok {
			seen[entity.NodeID] = struct{}{}
			label := entity.Label
			if label == "" {
				label = "Entity"
			}
			view.Nodes = append(view.Nodes, common.Node{
				ID:          entity.NodeID,
				Label:       label,
				Description: entity.Text,
			})
		}
		view.Edges = append(view.Edges, common.Edge{
			Source: doc.NodeID,
			Target: entity.NodeID,
			Label:  "HAS_ENTITY",
		})
	}

	return view
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
