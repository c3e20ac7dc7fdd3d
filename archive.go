package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// archive wraps a ZIP reader with an exact-match entry index. Lookups are
// case-sensitive; entry names are normalized only by stripping a leading
// "./" segment.
type archive struct {
	files map[string]*zip.File
}

func newArchive(data []byte) (*archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("epub: open archive: %w", err)
	}

	a := &archive{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		a.files[normalizePath(f.Name)] = f
	}
	return a, nil
}

// readFile reads a single entry fully into memory.
func (a *archive) readFile(name string) ([]byte, error) {
	f, ok := a.files[normalizePath(name)]
	if !ok {
		return nil, fmt.Errorf("epub: file not found: %s", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("epub: open file %s: %w", name, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// normalizePath strips a leading "./" so self-relative entry names and
// rootfile paths match plain entry names.
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
