package epub

import "strings"

// groupChapters partitions the file list into chapters following spine
// order. Spine references that do not resolve to a materialized file are
// skipped.
//
// A new chapter begins when the running buffer is empty, or when the
// current file carries a navigation title and its chapter base differs
// from the base of the buffer's first file. Note the asymmetry: a file
// without a navigation title never opens a new chapter, so consecutive
// untitled files with unrelated ids fold into the current chapter. That
// matches the heuristic's intent — producers that split chapters across
// files title only the first piece — but it means untitled sibling
// chapters merge when no navigation document is present.
//
// The chapter title is the first buffered file's navigation title, falling
// back to its id.
func groupChapters(files []File, spine packageSpine) []Chapter {
	byID := make(map[string]*File, len(files))
	for i := range files {
		byID[files[i].ID] = &files[i]
	}

	var chapters []Chapter
	var buf []File

	for _, ref := range spine.ItemRefs {
		f, ok := byID[ref.IDRef]
		if !ok {
			continue
		}

		startNew := len(buf) == 0 ||
			(f.HasTitle() && chapterBase(f.ID) != chapterBase(buf[0].ID))

		if startNew && len(buf) > 0 {
			chapters = append(chapters, sealChapter(buf))
			buf = nil
		}
		buf = append(buf, *f)
	}

	if len(buf) > 0 {
		chapters = append(chapters, sealChapter(buf))
	}
	return chapters
}

func sealChapter(files []File) Chapter {
	title := files[0].Title
	if title == "" {
		title = files[0].ID
	}
	return Chapter{Title: title, Files: files}
}

// chapterBase strips a trailing "_part<suffix>" segment from an id:
// "chapter_4_part2" yields "chapter_4", while an id whose last underscore
// segment does not start with "part" is its own base.
func chapterBase(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 && strings.HasPrefix(id[i+1:], "part") {
		return id[:i]
	}
	return id
}
