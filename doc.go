// Package epub extracts a structured document model from EPUB archives:
// metadata, chapters grouped from the spine, a flat table of contents, and
// the raw XHTML content files.
//
// Parsing starts from archive bytes or a file path:
//
//	book, err := epub.Open("book.epub")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ch := range book.Chapters() {
//		fmt.Println(ch.Title)
//	}
//
// The parser locates the package document via META-INF/container.xml, reads
// its manifest, spine, and metadata, and recovers human-readable chapter
// titles from the EPUB 3 navigation document when one is declared. Files
// that share an identifier prefix with a trailing "_part" segment (for
// example chapter_4_part1, chapter_4_part2) are grouped into one chapter.
//
// Malformed data is handled with two policies. A missing or malformed
// container or package document fails the whole parse with one of the
// sentinel errors in this package. Everything else degrades: an absent or
// unreadable navigation document yields no titles, spine references to
// unknown manifest ids are skipped, and content files that cannot be read
// are left out of the result.
//
// A parsed Epub is immutable and safe for concurrent readers.
package epub
