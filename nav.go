package epub

import (
	"regexp"
	"strings"
)

// navLinkPattern matches anchors of the shape <a href="HREF" ...>TEXT</a>.
// The href must be a quoted value without embedded quotes and the text must
// not contain further markup; anchors whose label nests inline elements
// yield no match. Compiled once and shared across parses.
var navLinkPattern = regexp.MustCompile(`<a\s+href="([^"]+)"[^>]*>([^<]+)</a>`)

// scanNavTitles builds the href-to-title map from the navigation document.
// The navigation document is the first manifest item whose properties
// contain "nav". Navigation is optional: when no such item exists, or the
// document cannot be read, the result is an empty map.
//
// Keys are hrefs exactly as written in the navigation markup; for duplicate
// links to the same href the last occurrence wins.
func scanNavTitles(a *archive, pkg *packageDoc, packagePath string) map[string]string {
	titles := make(map[string]string)

	nav := findNavItem(pkg)
	if nav == nil {
		return titles
	}

	data, err := a.readFile(resolveHref(packagePath, nav.Href))
	if err != nil {
		return titles
	}

	for _, m := range navLinkPattern.FindAllStringSubmatch(string(data), -1) {
		titles[m[1]] = strings.TrimSpace(m[2])
	}
	return titles
}

// findNavItem returns the first manifest item marked as a navigation
// document, or nil.
func findNavItem(pkg *packageDoc) *manifestItem {
	for i := range pkg.Manifest.Items {
		if strings.Contains(pkg.Manifest.Items[i].Properties, "nav") {
			return &pkg.Manifest.Items[i]
		}
	}
	return nil
}
