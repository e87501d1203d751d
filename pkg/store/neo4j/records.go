package neo4j

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/store"
)

// Typed record construction happens here, at the storage boundary; nothing
// outside this package touches driver-shaped property maps.

func documentRecord(node neo4j.Node) store.DocumentRecord {
	return store.DocumentRecord{
		NodeID: node.ElementId,
		Document: common.Document{
			ID:       stringValue(node.Props["id"]),
			Filename: stringValue(node.Props["filename"]),
			Content:  stringValue(node.Props["content"]),
		},
	}
}

func entityRecord(node neo4j.Node) store.EntityRecord {
	return store.EntityRecord{
		NodeID: node.ElementId,
		Text:   stringValue(node.Props["text"]),
		Label:  stringValue(node.Props["label"]),
	}
}

func nodeValue(value any) (neo4j.Node, bool) {
	node, ok := value.(neo4j.Node)
	return node, ok
}

func stringValue(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}
