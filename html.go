package epub

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document parses the file content into a goquery document for structured
// access to the XHTML markup.
func (f *File) Document() (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(f.Content))
	if err != nil {
		return nil, fmt.Errorf("epub: parse %s: %w", f.Href, err)
	}
	return doc, nil
}

// PlainText extracts the visible body text of the file, with surrounding
// whitespace trimmed. Markup structure is not preserved.
func (f *File) PlainText() (string, error) {
	doc, err := f.Document()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("body").Text()), nil
}
