package epub

// buildTableOfContents emits one flat entry per content file, in
// materializer (manifest) order. Entry titles fall back to the file id
// when no navigation title is known. All entries are level 0.
func buildTableOfContents(files []File) TableOfContents {
	var toc TableOfContents
	for i := range files {
		title := files[i].Title
		if title == "" {
			title = files[i].ID
		}
		toc.addEntry(title, files[i].Href, 0)
	}
	return toc
}
