package graph

import (
	"time"

	"github.com/graphmind-ai/backend/pkg/ner"
	"github.com/graphmind-ai/backend/pkg/store"
)

const (
	defaultMaxChunkWords     = 500
	defaultParallelRecognize = 4
	defaultMaxRetries        = 3
	defaultRecognizeTimeout  = 60 * time.Second
)

// GraphClient runs the ingestion pipeline (normalize, chunk, recognize,
// dedupe, persist) and assembles visualization views from the store. It is
// safe for concurrent use.
type GraphClient struct {
	store             store.GraphStore
	recognizer        ner.Recognizer
	maxChunkWords     int
	parallelRecognize int
	maxRetries        int
	recognizeTimeout  time.Duration
}

// NewGraphClientParams configures a GraphClient. Store and Recognizer are
// required; zero values for the remaining fields select defaults.
type NewGraphClientParams struct {
	Store             store.GraphStore
	Recognizer        ner.Recognizer
	MaxChunkWords     int
	ParallelRecognize int
	MaxRetries        int
	RecognizeTimeout  time.Duration
}

// NewGraphClient creates a pipeline client over a graph store and an entity
// recognizer backend.
func NewGraphClient(params NewGraphClientParams) *GraphClient {
	if params.MaxChunkWords <= 0 {
		params.MaxChunkWords = defaultMaxChunkWords
	}
	if params.ParallelRecognize <= 0 {
		params.ParallelRecognize = defaultParallelRecognize
	}
	if params.MaxRetries <= 0 {
		params.MaxRetries = defaultMaxRetries
	}
	if params.RecognizeTimeout <= 0 {
		params.RecognizeTimeout = defaultRecognizeTimeout
	}

	return &GraphClient{
		store:             params.Store,
		recognizer:        params.Recognizer,
		maxChunkWords:     params.MaxChunkWords,
		parallelRecognize: params.ParallelRecognize,
		maxRetries:        params.MaxRetries,
		recognizeTimeout:  params.RecognizeTimeout,
	}
}
