package epub

import "strings"

// findCoverID resolves the manifest id of the cover image, trying the
// EPUB 2 and EPUB 3 conventions in order:
//
//  1. a meta declaration with name="cover"; its content attribute is the id
//  2. a meta declaration with property="cover-image"; its content
//     attribute, or failing that its inline text
//  3. a manifest item whose properties contain "cover-image"; that item's
//     own id
//
// Returns the empty string when no rule matches.
func findCoverID(pkg *packageDoc) string {
	if id := coverFromNameMeta(pkg); id != "" {
		return id
	}
	if id := coverFromPropertyMeta(pkg); id != "" {
		return id
	}
	return coverFromManifest(pkg)
}

func coverFromNameMeta(pkg *packageDoc) string {
	for _, m := range pkg.Metadata.Metas {
		if m.Name == "cover" && m.Content != "" {
			return m.Content
		}
	}
	return ""
}

func coverFromPropertyMeta(pkg *packageDoc) string {
	for _, m := range pkg.Metadata.Metas {
		if m.Property != "cover-image" {
			continue
		}
		if m.Content != "" {
			return m.Content
		}
		if v := strings.TrimSpace(m.Value); v != "" {
			return v
		}
	}
	return ""
}

func coverFromManifest(pkg *packageDoc) string {
	for _, item := range pkg.Manifest.Items {
		if strings.Contains(item.Properties, "cover-image") {
			return item.ID
		}
	}
	return ""
}
