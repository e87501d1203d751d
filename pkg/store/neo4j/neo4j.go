package neo4j

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/logger"
	"github.com/graphmind-ai/backend/pkg/store"
)

// Store implements store.GraphStore on a Neo4j database.
//
// A Store owns its driver: create one at process start with NewStore and
// release it with Close on shutdown. Entity and edge uniqueness is enforced
// by constraints created at open time, so every merge is a single atomic
// Cypher MERGE under those constraints.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewStoreParams configures a Store.
type NewStoreParams struct {
	URI      string
	Username string
	Password string
	Database string
}

// NewStore connects to Neo4j, verifies connectivity and ensures the
// uniqueness constraints the merge semantics depend on.
func NewStore(ctx context.Context, params NewStoreParams) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(params.URI, neo4j.BasicAuth(params.Username, params.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	s := &Store{
		driver:   driver,
		database: params.Database,
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	if err := s.ensureConstraints(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, err
	}

	logger.Info("Connected to graph store", "uri", params.URI, "database", params.Database)
	return s, nil
}

// Close releases the underlying driver and all its connections.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// run executes a Cypher query and buffers the full result.
func (s *Store) run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		s.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return result, nil
}

func (s *Store) ensureConstraints(ctx context.Context) error {
	constraints := []string{
		`CREATE CONSTRAINT document_id IF NOT EXISTS
		 FOR (d:Document) REQUIRE d.id IS UNIQUE`,
		`CREATE CONSTRAINT entity_identity IF NOT EXISTS
		 FOR (e:Entity) REQUIRE (e.text, e.label) IS UNIQUE`,
	}
	for _, constraint := range constraints {
		if _, err := s.run(ctx, constraint, nil); err != nil {
			return err
		}
	}
	return nil
}

// CreateDocument persists a Document node with a fresh UUID.
func (s *Store) CreateDocument(ctx context.Context, filename string, content string) (common.Document, error) {
	doc := common.Document{
		ID:       uuid.NewString(),
		Filename: filename,
		Content:  content,
	}

	_, err := s.run(ctx,
		`CREATE (d:Document {id: $id, filename: $filename, content: $content})`,
		map[string]any{
			"id":       doc.ID,
			"filename": doc.Filename,
			"content":  doc.Content,
		},
	)
	if err != nil {
		return common.Document{}, err
	}

	return doc, nil
}

// AttachEntities merges Entity nodes and HAS_ENTITY edges for a document.
// The document must already exist; the MERGEs run under the uniqueness
// constraints, so concurrent ingestion of a shared entity cannot create a
// second node.
func (s *Store) AttachEntities(ctx context.Context, documentID string, entities []common.Span) error {
	result, err := s.run(ctx,
		`MATCH (d:Document {id: $id}) RETURN d.id AS id`,
		map[string]any{"id": documentID},
	)
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return fmt.Errorf("%w: %s", store.ErrDocumentNotFound, documentID)
	}

	if len(entities) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		rows = append(rows, map[string]any{
			"text":  entity.Text,
			"label": entity.Label,
		})
	}

	_, err = s.run(ctx,
		`MATCH (d:Document {id: $id})
		 UNWIND $entities AS ent
		 MERGE (e:Entity {text: ent.text, label: ent.label})
		 MERGE (d)-[:HAS_ENTITY]->(e)`,
		map[string]any{
			"id":       documentID,
			"entities": rows,
		},
	)
	return err
}

// DocumentWithEntities fetches a document node and all entities it links to.
func (s *Store) DocumentWithEntities(ctx context.Context, documentID string) (store.DocumentRecord, []store.EntityRecord, error) {
	result, err := s.run(ctx,
		`MATCH (d:Document {id: $id})
		 OPTIONAL MATCH (d)-[:HAS_ENTITY]->(e:Entity)
		 RETURN d, e`,
		map[string]any{"id": documentID},
	)
	if err != nil {
		return store.DocumentRecord{}, nil, err
	}
	if len(result.Records) == 0 {
		return store.DocumentRecord{}, nil, fmt.Errorf("%w: %s", store.ErrDocumentNotFound, documentID)
	}

	docNode, ok := nodeValue(result.Records[0].AsMap()["d"])
	if !ok {
		return store.DocumentRecord{}, nil, fmt.Errorf("%w: query returned no document node", store.ErrUnavailable)
	}
	doc := documentRecord(docNode)

	entities := make([]store.EntityRecord, 0, len(result.Records))
	for _, record := range result.Records {
		entityNode, ok := nodeValue(record.AsMap()["e"])
		if !ok {
			// OPTIONAL MATCH misses leave e null for entity-less documents.
			continue
		}
		entities = append(entities, entityRecord(entityNode))
	}

	return doc, entities, nil
}

// ListDocuments returns catalog entries for every stored document, sorted by
// filename with id as tiebreak.
func (s *Store) ListDocuments(ctx context.Context) ([]common.DocumentRef, error) {
	result, err := s.run(ctx,
		`MATCH (d:Document)
		 RETURN d.id AS id, d.filename AS filename
		 ORDER BY d.filename ASC, d.id ASC`,
		nil,
	)
	if err != nil {
		return nil, err
	}

	refs := make([]common.DocumentRef, 0, len(result.Records))
	for _, record := range result.Records {
		values := record.AsMap()
		refs = append(refs, common.DocumentRef{
			ID:    stringValue(values["id"]),
			Title: stringValue(values["filename"]),
		})
	}

	return refs, nil
}
