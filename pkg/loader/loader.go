package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedFileType is returned when an upload's extension maps to no
// known decoder. Callers surface this as a distinct failure instead of a
// placeholder payload.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// DecodeUpload extracts the plain text of an uploaded file based on its
// filename extension. Supported formats: .txt, .docx, .pdf.
func DecodeUpload(ctx context.Context, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return decodeText(content)
	case ".docx":
		text, err := parseDocx(content)
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", filename, err)
		}
		return text, nil
	case ".pdf":
		text, err := parsePDF(ctx, content)
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", filename, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
}

func decodeText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), ""), nil
	}
	return string(content), nil
}
