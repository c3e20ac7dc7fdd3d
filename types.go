package epub

// MediaTypeXHTML is the media type that classifies manifest items as
// content (or navigation) documents.
const MediaTypeXHTML = "application/xhtml+xml"

// File is a single content file from the EPUB manifest. Title is the
// display text recovered from the navigation document, or empty when the
// navigation document has no link to this file. Fields are read-only after
// construction.
type File struct {
	ID        string
	Href      string
	Title     string
	Content   string
	MediaType string
}

// HasTitle reports whether a navigation title was found for the file.
func (f *File) HasTitle() bool {
	return f.Title != ""
}

// IsHTML reports whether the file contains XHTML content.
func (f *File) IsHTML() bool {
	return f.MediaType == MediaTypeXHTML
}

// HTMLBytes returns the content as bytes for external HTML parsers.
func (f *File) HTMLBytes() []byte {
	return []byte(f.Content)
}

// Chapter is a titled, ordered, non-empty group of content files.
type Chapter struct {
	Title string
	Files []File
}

// FileCount returns the number of files in the chapter.
func (c *Chapter) FileCount() int {
	return len(c.Files)
}

// TOCEntry is one row of the table of contents. Level is always 0: the
// table of contents is flat, one entry per content file, and does not
// reflect the nesting of the navigation document's list structure.
type TOCEntry struct {
	Title string
	Href  string
	Level int
}

// TableOfContents is the ordered list of TOC entries.
type TableOfContents struct {
	entries []TOCEntry
}

func (t *TableOfContents) addEntry(title, href string, level int) {
	t.entries = append(t.entries, TOCEntry{Title: title, Href: href, Level: level})
}

// Entries returns the entries in order.
func (t TableOfContents) Entries() []TOCEntry {
	return append([]TOCEntry(nil), t.entries...)
}

// EntryCount returns the number of entries.
func (t TableOfContents) EntryCount() int {
	return len(t.entries)
}

// Metadata holds the package document's metadata. Identifier defaults to
// the empty string when the package declares none; the other scalar fields
// are empty when absent.
type Metadata struct {
	Title       string
	Creators    []string
	Language    string
	Identifier  string
	Date        string
	Publisher   string
	Description string
	Rights      string
	CoverID     string
	Tags        []string
}
