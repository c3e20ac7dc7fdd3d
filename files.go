package epub

import "strings"

// materializeFiles reads every XHTML manifest item and builds the flat
// file list in manifest declaration order. The navigation document itself
// is excluded, and items whose content cannot be read are skipped rather
// than failing the parse.
//
// Titles are looked up by the item's href as declared in the manifest: the
// navigation map keys are relative to the same base directory, so no
// resolution is applied before the lookup.
func materializeFiles(a *archive, pkg *packageDoc, navTitles map[string]string, packagePath string) []File {
	var files []File
	for _, item := range pkg.Manifest.Items {
		if item.MediaType != MediaTypeXHTML {
			continue
		}
		if strings.Contains(item.Properties, "nav") {
			continue
		}

		content, err := a.readFile(resolveHref(packagePath, item.Href))
		if err != nil {
			continue
		}

		files = append(files, File{
			ID:        item.ID,
			Href:      item.Href,
			Title:     navTitles[item.Href],
			Content:   string(content),
			MediaType: item.MediaType,
		})
	}
	return files
}
