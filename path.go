package epub

import "strings"

// resolveHref resolves an href against the directory of basePath. When
// basePath has no directory component the href is returned unchanged.
//
// "." and ".." segments are not normalized: package and navigation
// documents share a single directory in practice, and a malformed href
// simply fails the subsequent archive lookup.
func resolveHref(basePath, href string) string {
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i] + "/" + href
	}
	return href
}
