package epub

import (
	"encoding/xml"
	"fmt"
)

// containerPath is the well-known location of the container document.
const containerPath = "META-INF/container.xml"

// containerDoc mirrors the container.xml structure.
type containerDoc struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles struct {
		Rootfile []rootfile `xml:"rootfile"`
	} `xml:"rootfiles"`
}

type rootfile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// resolvePackagePath reads the container document and returns the path of
// the package document named by the first rootfile record. Additional
// rootfile records are ignored.
func resolvePackagePath(a *archive) (string, error) {
	data, err := a.readFile(containerPath)
	if err != nil {
		return "", ErrContainerMissing
	}

	var c containerDoc
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("%w: %v", ErrContainerMalformed, err)
	}

	if len(c.Rootfiles.Rootfile) == 0 {
		return "", ErrNoRootFile
	}

	return normalizePath(c.Rootfiles.Rootfile[0].FullPath), nil
}
