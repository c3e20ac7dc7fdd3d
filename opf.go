package epub

import (
	"encoding/xml"
	"fmt"
)

// packageDoc mirrors the OPF package document structure. Dublin Core
// elements are matched by namespace so both dc:-prefixed and default-bound
// documents decode.
type packageDoc struct {
	XMLName  xml.Name        `xml:"package"`
	Version  string          `xml:"version,attr"`
	Metadata packageMetadata `xml:"metadata"`
	Manifest packageManifest `xml:"manifest"`
	Spine    packageSpine    `xml:"spine"`
}

type packageMetadata struct {
	Titles       []string      `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators     []string      `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Languages    []string      `xml:"http://purl.org/dc/elements/1.1/ language"`
	Identifiers  []string      `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Dates        []string      `xml:"http://purl.org/dc/elements/1.1/ date"`
	Publishers   []string      `xml:"http://purl.org/dc/elements/1.1/ publisher"`
	Descriptions []string      `xml:"http://purl.org/dc/elements/1.1/ description"`
	Rights       []string      `xml:"http://purl.org/dc/elements/1.1/ rights"`
	Subjects     []string      `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Metas        []packageMeta `xml:"meta"`
}

// packageMeta covers both meta conventions: EPUB 2 name/content attribute
// pairs and EPUB 3 property declarations with inline text.
type packageMeta struct {
	Name     string `xml:"name,attr"`
	Content  string `xml:"content,attr"`
	Property string `xml:"property,attr"`
	Refines  string `xml:"refines,attr"`
	Value    string `xml:",chardata"`
}

type packageManifest struct {
	Items []manifestItem `xml:"item"`
}

type manifestItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
	// Properties is the raw space-separated properties attribute.
	Properties string `xml:"properties,attr"`
}

type packageSpine struct {
	ItemRefs []spineItemRef `xml:"itemref"`
}

type spineItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// parsePackage decodes a package document.
func parsePackage(data []byte) (*packageDoc, error) {
	var pkg packageDoc
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageMalformed, err)
	}
	return &pkg, nil
}

// buildMetadata copies the package metadata into the public aggregate,
// taking the first declared value for single-valued fields and the empty
// string when a field is absent.
func buildMetadata(pkg *packageDoc) Metadata {
	meta := pkg.Metadata
	return Metadata{
		Title:       firstOf(meta.Titles),
		Creators:    append([]string{}, meta.Creators...),
		Language:    firstOf(meta.Languages),
		Identifier:  firstOf(meta.Identifiers),
		Date:        firstOf(meta.Dates),
		Publisher:   firstOf(meta.Publishers),
		Description: firstOf(meta.Descriptions),
		Rights:      firstOf(meta.Rights),
		Tags:        append([]string{}, meta.Subjects...),
	}
}

func firstOf(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
