package graph

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// chunk is one recognition unit of a document. The id exists only for log
// correlation; it is never persisted.
type chunk struct {
	ID    string
	Index int
	Text  string
}

// CleanText collapses every run of whitespace (spaces, tabs, newlines) into a
// single space and trims the ends. Decoder output from any file type passes
// through here before chunking, so the chunker can treat a single space as the
// only word separator.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// chunkText splits cleaned text into windows of at most maxWords
// space-separated words, preserving word order. The final window carries the
// remainder; empty text yields no chunks.
func chunkText(text string, maxWords int) []chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]chunk, 0, (len(words)+maxWords-1)/maxWords)
	for start := 0; start < len(words); start += maxWords {
		end := start + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, chunk{
			ID:    gonanoid.Must(8),
			Index: len(chunks),
			Text:  strings.Join(words[start:end], " "),
		})
	}

	return chunks
}
