package graph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/graphmind-ai/backend/internal/util"
	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/logger"
)

// extractEntities normalizes the content, splits it into word windows and
// recognizes each window. Windows run in parallel up to the configured limit,
// but the returned spans keep document order: all spans of chunk 0, then
// chunk 1, and so on. Any chunk failing after retries fails the whole
// extraction.
func (c *GraphClient) extractEntities(ctx context.Context, content string) ([]common.Span, error) {
	chunks := chunkText(CleanText(content), c.maxChunkWords)
	if len(chunks) == 0 {
		return nil, nil
	}

	results := make([][]common.Span, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelRecognize)

	for _, ch := range chunks {
		g.Go(func() error {
			spans, err := util.RetryWithContext(gctx, c.maxRetries, func(ctx context.Context) ([]common.Span, error) {
				recognizeCtx, cancel := context.WithTimeout(ctx, c.recognizeTimeout)
				defer cancel()
				return c.recognizer.Recognize(recognizeCtx, ch.Text)
			})
			if err != nil {
				return fmt.Errorf("failed to recognize chunk %s: %w", ch.ID, err)
			}
			logger.Debug("Recognized chunk", "chunk", ch.ID, "index", ch.Index, "entities", len(spans))
			results[ch.Index] = spans
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var spans []common.Span
	for _, chunkSpans := range results {
		spans = append(spans, chunkSpans...)
	}

	return spans, nil
}
