package epub

import (
	"archive/zip"
	"bytes"
	"testing"
)

// entry is one archive member used by buildArchive.
type entry struct {
	name    string
	content string
}

// buildArchive assembles an in-memory ZIP archive from the given entries.
func buildArchive(t *testing.T, entries ...entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("failed to write entry %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
	return buf.Bytes()
}

// testContainerXML points at OEBPS/content.opf.
const testContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// opfXML wraps metadata, manifest, and spine fragments into a package
// document.
func opfXML(metadata, manifest, spine string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
` + metadata + `
  </metadata>
  <manifest>
` + manifest + `
  </manifest>
  <spine>
` + spine + `
  </spine>
</package>`
}

func xhtmlDoc(title, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>` + title + `</title></head>
<body>` + body + `</body>
</html>`
}

// buildTestBook builds a complete EPUB with a navigation document, a
// multi-part chapter, a cover image, and a dangling spine reference.
func buildTestBook(t *testing.T) []byte {
	t.Helper()

	opf := opfXML(`    <dc:title>Voyages</dc:title>
    <dc:creator>A. Navigator</dc:creator>
    <dc:creator>B. Cartographer</dc:creator>
    <dc:language>en</dc:language>
    <dc:identifier id="uid">urn:uuid:1b6ee6a2</dc:identifier>
    <dc:date>2021-04-01</dc:date>
    <dc:publisher>Harbor Press</dc:publisher>
    <dc:description>Sea stories.</dc:description>
    <dc:rights>CC BY</dc:rights>
    <dc:subject>travel</dc:subject>
    <dc:subject>sea</dc:subject>
    <meta name="cover" content="cover-img"/>`,
		`    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="intro" href="intro.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter_1_part1" href="chapter_1_part1.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter_1_part2" href="chapter_1_part2.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter_2" href="chapter_2.xhtml" media-type="application/xhtml+xml"/>
    <item id="cover-img" href="cover.jpg" media-type="image/jpeg"/>`,
		`    <itemref idref="intro"/>
    <itemref idref="chapter_1_part1"/>
    <itemref idref="chapter_1_part2"/>
    <itemref idref="ghost"/>
    <itemref idref="chapter_2"/>`)

	nav := `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<body>
<nav epub:type="toc">
  <ol>
    <li><a href="intro.xhtml">Introduction</a></li>
    <li><a href="chapter_1_part1.xhtml">Chapter One</a></li>
    <li><a href="chapter_2.xhtml">Chapter Two</a></li>
  </ol>
</nav>
</body>
</html>`

	return buildArchive(t,
		entry{"mimetype", "application/epub+zip"},
		entry{"META-INF/container.xml", testContainerXML},
		entry{"OEBPS/content.opf", opf},
		entry{"OEBPS/nav.xhtml", nav},
		entry{"OEBPS/intro.xhtml", xhtmlDoc("Introduction", "<p>Welcome aboard.</p>")},
		entry{"OEBPS/chapter_1_part1.xhtml", xhtmlDoc("Chapter One", "<p>First leg.</p>")},
		entry{"OEBPS/chapter_1_part2.xhtml", xhtmlDoc("Chapter One", "<p>Second leg.</p>")},
		entry{"OEBPS/chapter_2.xhtml", xhtmlDoc("Chapter Two", "<p>Landfall.</p>")},
		entry{"OEBPS/cover.jpg", "JPEGDATA"},
	)
}

// parseTestPackage decodes an OPF fragment for component-level tests.
func parseTestPackage(t *testing.T, metadata, manifest, spine string) *packageDoc {
	t.Helper()
	pkg, err := parsePackage([]byte(opfXML(metadata, manifest, spine)))
	if err != nil {
		t.Fatalf("parsePackage() failed: %v", err)
	}
	return pkg
}
