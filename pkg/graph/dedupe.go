package graph

import "github.com/graphmind-ai/backend/pkg/common"

// dedupeSpans removes duplicate (text, label) pairs, keeping the first
// occurrence and its position. Identity is exact match on both fields; the
// same text under two labels stays as two spans.
func dedupeSpans(spans []common.Span) []common.Span {
	seen := make(map[common.Span]struct{}, len(spans))
	deduped := make([]common.Span, 0, len(spans))
	for _, span := range spans {
		if _, ok := seen[span]; ok {
			continue
		}
		seen[span] = struct{}{}
		deduped = append(deduped, span)
	}
	return deduped
}
