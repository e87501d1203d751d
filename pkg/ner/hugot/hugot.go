package hugot

import (
	"context"
	"fmt"
	"strings"

	hg "github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/ner"
)

// HugotRecognizer runs a local ONNX token-classification model through a
// hugot session. It needs no network access once the model files are on disk.
//
// A HugotRecognizer should be created using NewHugotRecognizer and closed
// when the process shuts down.
type HugotRecognizer struct {
	session  *hg.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewHugotRecognizerParams configures a HugotRecognizer.
//
// ModelPath points at a directory containing an ONNX NER model and its
// tokenizer files (e.g. KnightsAnalytics/distilbert-NER).
type NewHugotRecognizerParams struct {
	ModelPath string
}

// NewHugotRecognizer creates a recognizer backed by a local NER model.
func NewHugotRecognizer(params NewHugotRecognizerParams) (*HugotRecognizer, error) {
	session, err := hg.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	config := hg.TokenClassificationConfig{
		ModelPath: params.ModelPath,
		Name:      "ner-pipeline",
		Options: []hg.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}),
		},
	}
	nerPipeline, err := hg.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	return &HugotRecognizer{
		session:  session,
		pipeline: nerPipeline,
	}, nil
}

// Recognize runs the NER pipeline on one chunk and returns the recognized
// spans in document order.
func (r *HugotRecognizer) Recognize(ctx context.Context, text string) ([]common.Span, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ner.ErrUnavailable, err)
	}
	if len(result.Entities) == 0 {
		return nil, nil
	}

	spans := make([]common.Span, 0, len(result.Entities[0]))
	for _, entity := range result.Entities[0] {
		word := strings.TrimSpace(entity.Word)
		if word == "" {
			continue
		}
		spans = append(spans, common.Span{
			Text:  word,
			Label: normalizeLabel(entity.Entity),
		})
	}

	return spans, nil
}

// Close destroys the hugot session and releases the loaded model.
func (r *HugotRecognizer) Close() error {
	return r.session.Destroy()
}

// normalizeLabel strips BIO tagging prefixes (B- for beginning, I- for
// inside) from model labels.
func normalizeLabel(label string) string {
	if strings.HasPrefix(label, "B-") || strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}
