package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/ner"
)

const systemPrompt = `You are a named entity recognizer. Extract every named entity mentioned in the user's text.
For each mention return the exact text as it appears in the input and a category label such as PERSON, ORG, GPE, LOC, DATE, EVENT or PRODUCT.
Return mentions in the order they appear. Do not merge, rewrite or translate mention text.`

type recognizeSpan struct {
	Text  string `json:"text" jsonschema_description:"Exact text of the mention as it appears in the input"`
	Label string `json:"label" jsonschema_description:"Entity category, e.g. PERSON, ORG, GPE, DATE"`
}

type recognizeResponse struct {
	Entities []recognizeSpan `json:"entities" jsonschema_description:"Named entities found in the text, in order of appearance"`
}

// OpenAIRecognizer performs entity recognition through a chat model with a
// JSON-schema constrained response. It works against any OpenAI-compatible
// endpoint, including locally served models.
type OpenAIRecognizer struct {
	client *openai.Client
	model  string
}

// NewOpenAIRecognizerParams configures an OpenAIRecognizer.
//
// BaseURL may be left empty to use the default OpenAI endpoint.
type NewOpenAIRecognizerParams struct {
	BaseURL string
	APIKey  string
	Model   string
}

// NewOpenAIRecognizer creates a recognizer backed by a chat completion model.
func NewOpenAIRecognizer(params NewOpenAIRecognizerParams) *OpenAIRecognizer {
	options := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
	}
	if params.BaseURL != "" {
		options = append(options, option.WithBaseURL(params.BaseURL))
	}
	client := openai.NewClient(options...)

	return &OpenAIRecognizer{
		client: &client,
		model:  params.Model,
	}
}

// Recognize asks the model for the entities in one chunk and returns them in
// order of appearance.
func (r *OpenAIRecognizer) Recognize(ctx context.Context, text string) ([]common.Span, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "recognize_entities",
		Description: openai.String("Named entities extracted from a chunk of text."),
		Schema:      ner.GenerateSchema(&recognizeResponse{}),
		Strict:      openai.Bool(true),
	}

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0.1),
	}

	response, err := r.client.Chat.Completions.New(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ner.ErrUnavailable, err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ner.ErrUnavailable)
	}

	var res recognizeResponse
	if err := ner.UnmarshalFlexible(response.Choices[0].Message.Content, &res); err != nil {
		return nil, fmt.Errorf("failed to parse recognizer output: %w", err)
	}

	spans := make([]common.Span, 0, len(res.Entities))
	for _, entity := range res.Entities {
		if entity.Text == "" {
			continue
		}
		spans = append(spans, common.Span{
			Text:  entity.Text,
			Label: entity.Label,
		})
	}

	return spans, nil
}

// Close is a no-op; the underlying HTTP client holds no resources that need
// explicit release.
func (r *OpenAIRecognizer) Close() error {
	return nil
}
