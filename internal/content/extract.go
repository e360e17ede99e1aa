package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractFile reads the text of a document at path. PDF files are
// extracted page by page and concatenated; anything else is treated as
// plain text and read verbatim. A zero-length result is valid, not an
// error.
func ExtractFile(path string) (Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := extractPDF(path)
		if err != nil {
			return Document{}, err
		}
		return Document{Text: text}, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read document: %w", err)
		}
		return Document{Text: string(data)}, nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract PDF text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read PDF text: %w", err)
	}

	return buf.String(), nil
}
