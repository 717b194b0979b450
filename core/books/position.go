package books

// Position is a chapter's place inside its book. Prev and Next are filenames,
// empty at the book's boundaries; navigation never crosses into another book.
type Position struct {
	Entry   Entry
	Chapter int
	Prev    string
	Next    string
}

// Position computes the previous and next chapter filenames for chapter.
func (e Entry) Position(chapter int) Position {
	p := Position{Entry: e, Chapter: chapter}
	if chapter > 1 {
		p.Prev = e.ChapterFile(chapter - 1)
	}
	if chapter < e.Chapters {
		p.Next = e.ChapterFile(chapter + 1)
	}
	return p
}

