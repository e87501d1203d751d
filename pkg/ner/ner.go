package ner

import (
	"context"
	"errors"

	"github.com/graphmind-ai/backend/pkg/common"
)

// ErrUnavailable marks recognizer infrastructure failures (model not loaded,
// endpoint unreachable). Backends wrap their transport errors with it so
// callers can distinguish recognizer outages from other pipeline failures.
var ErrUnavailable = errors.New("entity recognizer unavailable")

// Recognizer extracts named-entity spans from a single chunk of text.
//
// Implementations own their label vocabulary; callers must not assume a
// closed set of labels. Failures are returned, never swallowed: a chunk that
// cannot be recognized fails its document's pipeline.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]common.Span, error)
	Close() error
}
