package routes

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/graphmind-ai/backend/internal/server/middleware"
	"github.com/graphmind-ai/backend/pkg/common"
	"github.com/graphmind-ai/backend/pkg/loader"
	"github.com/graphmind-ai/backend/pkg/logger"
	"github.com/graphmind-ai/backend/pkg/ner"
	"github.com/graphmind-ai/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

const (
	maxUploadFiles     = 3
	contentPreviewMax  = 500
	entitiesPreviewMax = 10
)

// UploadDocumentsHandler ingests up to three uploaded documents
// (multipart/form-data, field "files") and returns a per-file result.
// A failing file never affects its siblings.
func UploadDocumentsHandler(c echo.Context) error {
	type uploadResult struct {
		ID              string        `json:"id,omitempty"`
		Filename        string        `json:"filename"`
		Preview         string        `json:"preview,omitempty"`
		EntitiesPreview []common.Span `json:"entities_preview,omitempty"`
		Error           string        `json:"error,omitempty"`
		Kind            string        `json:"kind,omitempty"`
	}

	type uploadResponse struct {
		Message   string         `json:"message,omitempty"`
		Documents []uploadResult `json:"documents,omitempty"`
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "Invalid request body",
		})
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "No files provided",
		})
	}
	if len(uploads) > maxUploadFiles {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "You can upload up to 3 files only.",
		})
	}

	app := c.(*middleware.AppContext).App

	ingest := func(ctx context.Context, file *multipart.FileHeader) uploadResult {
		result := uploadResult{Filename: file.Filename}

		fail := func(err error) uploadResult {
			logger.Error("Failed to ingest upload", "filename", file.Filename, "err", err)
			result.Error = err.Error()
			result.Kind = errorKind(err)
			return result
		}

		src, err := file.Open()
		if err != nil {
			return fail(err)
		}
		defer src.Close()

		raw, err := io.ReadAll(src)
		if err != nil {
			return fail(err)
		}

		content, err := loader.DecodeUpload(ctx, file.Filename, raw)
		if err != nil {
			return fail(err)
		}

		ingested, err := app.Graph.IngestDocument(ctx, file.Filename, content)
		if err != nil {
			return fail(err)
		}

		result.ID = ingested.Document.ID
		result.Preview = previewRunes(ingested.Document.Content, contentPreviewMax)
		entities := ingested.Entities
		if len(entities) > entitiesPreviewMax {
			entities = entities[:entitiesPreviewMax]
		}
		result.EntitiesPreview = entities
		return result
	}

	ctx := c.Request().Context()
	results := make([]uploadResult, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxUploadFiles)
	for i, file := range uploads {
		g.Go(func() error {
			results[i] = ingest(gctx, file)
			return nil
		})
	}
	// Workers report per-file failures in their result slot, never as errors.
	_ = g.Wait()

	return c.JSON(http.StatusOK, uploadResponse{
		Documents: results,
	})
}

// errorKind classifies a pipeline failure for the client.
func errorKind(err error) string {
	switch {
	case errors.Is(err, loader.ErrUnsupportedFileType):
		return "unsupported_file_type"
	case errors.Is(err, ner.ErrUnavailable):
		return "recognizer_unavailable"
	case errors.Is(err, store.ErrUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}

// previewRunes truncates on rune boundaries so multi-byte characters are never
// split mid-sequence.
func previewRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
