package graph

import (
	"fmt"
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already clean",
			in:   "Ada Lovelace visited Paris",
			want: "Ada Lovelace visited Paris",
		},
		{
			name: "collapses mixed whitespace",
			in:   "  Ada\tLovelace \n visited\r\nParis  ",
			want: "Ada Lovelace visited Paris",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "only whitespace",
			in:   " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChunkText(t *testing.T) {
	words := make([]string, 1200)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	text := strings.Join(words, " ")

	chunks := chunkText(text, 500)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	wantLens := []int{500, 500, 200}
	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has Index %d", i, ch.Index)
		}
		if got := len(strings.Fields(ch.Text)); got != wantLens[i] {
			t.Errorf("chunk %d has %d words, want %d", i, got, wantLens[i])
		}
	}

	// Joining the chunks back together must reproduce the input exactly.
	parts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		parts = append(parts, ch.Text)
	}
	if joined := strings.Join(parts, " "); joined != text {
		t.Error("chunks do not round-trip to the original text")
	}
}

func TestChunkTextSmallInputs(t *testing.T) {
	if chunks := chunkText("", 500); len(chunks) != 0 {
		t.Errorf("empty text produced %d chunks", len(chunks))
	}

	chunks := chunkText("one two three", 500)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Text != "one two three" {
		t.Errorf("chunk text = %q", chunks[0].Text)
	}
	if chunks[0].ID == "" {
		t.Error("chunk id is empty")
	}
}
