package epub

import (
	"fmt"
	"os"
)

// Epub is the parsed document model. It is immutable after construction
// and safe for concurrent readers. The original archive bytes are retained
// for on-demand lookups such as CoverBytes.
type Epub struct {
	metadata Metadata
	chapters []Chapter
	toc      TableOfContents
	files    []File
	raw      []byte
}

// New parses an EPUB archive from bytes.
//
// Resolution of the container and package documents is fatal: a missing or
// malformed one fails construction with one of the sentinel errors in this
// package. Navigation, individual content files, and the cover degrade
// instead of failing.
func New(data []byte) (*Epub, error) {
	a, err := newArchive(data)
	if err != nil {
		return nil, err
	}

	packagePath, err := resolvePackagePath(a)
	if err != nil {
		return nil, err
	}

	pkgData, err := a.readFile(packagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageMissing, packagePath)
	}
	pkg, err := parsePackage(pkgData)
	if err != nil {
		return nil, err
	}

	navTitles := scanNavTitles(a, pkg, packagePath)

	metadata := buildMetadata(pkg)
	metadata.CoverID = findCoverID(pkg)

	files := materializeFiles(a, pkg, navTitles, packagePath)
	toc := buildTableOfContents(files)
	chapters := groupChapters(files, pkg.Spine)

	return &Epub{
		metadata: metadata,
		chapters: chapters,
		toc:      toc,
		files:    files,
		raw:      data,
	}, nil
}

// Open reads and parses the EPUB file at path.
func Open(path string) (*Epub, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("epub: open %s: %w", path, err)
	}
	return New(data)
}

// Title returns the book title, or empty when the package declares none.
func (e *Epub) Title() string {
	return e.metadata.Title
}

// Creator returns the first creator, or empty when there are none.
func (e *Epub) Creator() string {
	if len(e.metadata.Creators) > 0 {
		return e.metadata.Creators[0]
	}
	return ""
}

// Creators returns all declared creators.
func (e *Epub) Creators() []string {
	return append([]string(nil), e.metadata.Creators...)
}

// Language returns the declared language.
func (e *Epub) Language() string {
	return e.metadata.Language
}

// Identifier returns the primary identifier, or empty when the package
// declares none.
func (e *Epub) Identifier() string {
	return e.metadata.Identifier
}

// Date returns the declared publication date.
func (e *Epub) Date() string {
	return e.metadata.Date
}

// Publisher returns the declared publisher.
func (e *Epub) Publisher() string {
	return e.metadata.Publisher
}

// Description returns the declared description.
func (e *Epub) Description() string {
	return e.metadata.Description
}

// Rights returns the declared rights statement.
func (e *Epub) Rights() string {
	return e.metadata.Rights
}

// Tags returns the declared subject tags.
func (e *Epub) Tags() []string {
	return append([]string(nil), e.metadata.Tags...)
}

// CoverID returns the manifest id of the cover image, or empty when no
// cover could be resolved.
func (e *Epub) CoverID() string {
	return e.metadata.CoverID
}

// Metadata returns the full metadata aggregate.
func (e *Epub) Metadata() Metadata {
	md := e.metadata
	md.Creators = append([]string(nil), md.Creators...)
	md.Tags = append([]string(nil), md.Tags...)
	return md
}

// Chapters returns the chapters in spine order. The returned slice is a
// copy; the chapters and their files are read-only.
func (e *Epub) Chapters() []Chapter {
	return append([]Chapter(nil), e.chapters...)
}

// ChapterCount returns the number of chapters.
func (e *Epub) ChapterCount() int {
	return len(e.chapters)
}

// Files returns the flat content file list in manifest order.
func (e *Epub) Files() []File {
	return append([]File(nil), e.files...)
}

// FileCount returns the number of content files.
func (e *Epub) FileCount() int {
	return len(e.files)
}

// TableOfContents returns the flat table of contents.
func (e *Epub) TableOfContents() TableOfContents {
	return TableOfContents{entries: e.toc.Entries()}
}

// CoverBytes returns the raw cover image bytes. The archive is re-opened
// and the container and package documents re-resolved on every call. The
// operation is advisory: it returns nil when no cover is declared or when
// any resolution step fails, rather than a distinguished error.
func (e *Epub) CoverBytes() []byte {
	coverID := e.metadata.CoverID
	if coverID == "" {
		return nil
	}

	a, err := newArchive(e.raw)
	if err != nil {
		return nil
	}
	packagePath, err := resolvePackagePath(a)
	if err != nil {
		return nil
	}
	pkgData, err := a.readFile(packagePath)
	if err != nil {
		return nil
	}
	pkg, err := parsePackage(pkgData)
	if err != nil {
		return nil
	}

	for _, item := range pkg.Manifest.Items {
		if item.ID != coverID {
			continue
		}
		data, err := a.readFile(resolveHref(packagePath, item.Href))
		if err != nil {
			return nil
		}
		return data
	}
	return nil
}
