package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDecodeUploadText(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		want     string
	}{
		{
			name:     "plain text",
			filename: "notes.txt",
			content:  []byte("Ada Lovelace wrote the first program."),
			want:     "Ada Lovelace wrote the first program.",
		},
		{
			name:     "uppercase extension",
			filename: "NOTES.TXT",
			content:  []byte("hello"),
			want:     "hello",
		},
		{
			name:     "empty file",
			filename: "empty.txt",
			content:  []byte(""),
			want:     "",
		},
		{
			name:     "invalid utf8 is stripped",
			filename: "broken.txt",
			content:  []byte{'o', 'k', 0xff, 0xfe},
			want:     "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUpload(context.Background(), tt.filename, tt.content)
			if err != nil {
				t.Fatalf("DecodeUpload() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeUpload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeUploadUnsupported(t *testing.T) {
	for _, filename := range []string{"image.png", "data.xlsx", "noext"} {
		t.Run(filename, func(t *testing.T) {
			_, err := DecodeUpload(context.Background(), filename, []byte("data"))
			if !errors.Is(err, ErrUnsupportedFileType) {
				t.Errorf("DecodeUpload(%q) error = %v, want ErrUnsupportedFileType", filename, err)
			}
		})
	}
}

func TestParseDocx(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t xml:space="preserve"> paragraph.</w:t></w:r></w:p>
    <w:p><w:del><w:r><w:t>deleted text</w:t></w:r></w:del></w:p>
  </w:body>
</w:document>`

	got, err := parseDocx(buildDocx(t, docXML))
	if err != nil {
		t.Fatalf("parseDocx() error = %v", err)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("parseDocx() = %q, missing first paragraph", got)
	}
	if !strings.Contains(got, "Second paragraph.") {
		t.Errorf("parseDocx() = %q, run texts not joined", got)
	}
	if strings.Contains(got, "deleted text") {
		t.Errorf("parseDocx() = %q, tracked deletion not skipped", got)
	}
}

func TestParseDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<x/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := parseDocx(buf.Bytes()); err == nil {
		t.Error("parseDocx() expected error for archive without document.xml")
	}
}

func TestParseDocxNotAZip(t *testing.T) {
	if _, err := parseDocx([]byte("definitely not a zip")); err == nil {
		t.Error("parseDocx() expected error for non-zip input")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
