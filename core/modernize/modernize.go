// Package modernize converts legacy eBible chapter pages into the normalized
// page shape and computes their new filenames.
//
// A legacy page is either a chapter list (GEN.htm) or a chapter (GEN01.htm).
// Internal links are rewritten to the new names first, then the page's
// semantic fragments are extracted and re-rendered through package page.
package modernize

import (
	"html/template"
	"sort"
	"strings"

	"github.com/FocuswithJustin/webbible/core/books"
	"github.com/FocuswithJustin/webbible/core/errors"
	"github.com/FocuswithJustin/webbible/core/page"
	"github.com/FocuswithJustin/webbible/core/relink"
)

// RowSize is the number of chapter links per chapter-list row.
const RowSize = 5

const bom = "\uFEFF"

// Kind is the kind of a legacy document.
type Kind int

const (
	// KindChapterList is a book's chapter-list page.
	KindChapterList Kind = iota
	// KindChapterContent is the text of one chapter.
	KindChapterContent
)

func (k Kind) String() string {
	if k == KindChapterList {
		return "chapter-list"
	}
	return "chapter-content"
}

// Result is a converted document.
type Result struct {
	OldName string
	NewName string
	Kind    Kind
	Book    books.Entry
	HTML    string

	// Rewritten is the number of internal links renamed.
	Rewritten int

	// Blocks and Footnotes are the extracted content fragments (chapter content only).
	Blocks    []page.Block
	Footnotes []page.Footnote
}

// Renamed reports whether the document gets a new filename.
func (r *Result) Renamed() bool {
	return r.OldName != r.NewName
}

// Normalizer converts legacy documents.
type Normalizer struct {
	reg   *books.Registry
	links *relink.Rewriter
}

// New creates a Normalizer backed by reg.
func New(reg *books.Registry) *Normalizer {
	return &Normalizer{
		reg:   reg,
		links: relink.New(reg),
	}
}

// Normalize converts the legacy document named filename.
//
// Files whose ID is not in the registry, and supplementary documents such as
// front matter or the glossary, are rejected with an error matching
// errors.ErrSkipped; the caller must not write anything for them.
func (n *Normalizer) Normalize(filename, content string) (*Result, error) {
	doc, ok := n.reg.ParseLegacyFilename(filename)
	if !ok {
		return nil, errors.Skip(filename, errors.NewNotFound("book", filename))
	}
	if !doc.Entry.IsText() {
		return nil, errors.Skip(filename, errors.NewUnsupported("book "+doc.Entry.ID, "supplementary document"))
	}

	content = strings.TrimPrefix(content, bom)
	rewritten := n.links.Count(content)
	content = n.links.Rewrite(content)

	res := &Result{
		OldName:   filename,
		Book:      doc.Entry,
		Rewritten: rewritten,
	}

	var err error
	if doc.IsChapterList() {
		res.Kind = KindChapterList
		res.NewName = doc.Entry.IndexFile()
		res.HTML, err = renderChapterList(doc.Entry, content)
	} else {
		res.Kind = KindChapterContent
		res.NewName = doc.Entry.Prefix + doc.Chapter + ".htm"
		err = n.convertChapter(res, filename, doc, content)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func renderChapterList(e books.Entry, content string) (string, error) {
	links, _ := chapterListLinkRule.FindAll("", content)

	// A page with no chapter links still gets one empty row.
	rows := [][]page.Link{make([]page.Link, 0, RowSize)}
	for i, m := range links {
		if i > 0 && i%RowSize == 0 {
			rows = append(rows, make([]page.Link, 0, RowSize))
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], page.Link{
			Href: m.Group(1),
			Text: template.HTML(m.Group(2)),
		})
	}

	return page.RenderChapterList(&page.ChapterList{
		Head: page.BookHead(e.Name),
		Book: e.Name,
		Rows: rows,
	})
}

func (n *Normalizer) convertChapter(res *Result, filename string, doc books.Document, content string) error {
	main, err := mainRule.Require(filename, content)
	if err != nil {
		return err
	}

	blocks, err := extractBlocks(filename, main[1])
	if err != nil {
		return err
	}
	res.Blocks = blocks

	if m, ok := footnoteBlockRule.Find(content); ok {
		res.Footnotes = extractFootnotes(m[1])
	}

	res.HTML, err = page.RenderChapter(&page.Chapter{
		Head:      page.ChapterHead(doc.Entry.Name, doc.Chapter),
		Nav:       extractNav(content),
		Blocks:    res.Blocks,
		Footnotes: res.Footnotes,
	})
	return err
}

// extractNav returns the chapter navigation links, with the escaped arrow
// artifacts of the legacy pages turned into arrow glyphs.
func extractNav(content string) []page.Link {
	block, ok := navBlockRule.Find(content)
	if !ok {
		return nil
	}
	matches, _ := navLinkRule.FindAll("", block[1])
	links := make([]page.Link, 0, len(matches))
	for _, m := range matches {
		text := strings.NewReplacer("&lt;", "←", "&gt;", "→").Replace(m.Group(2))
		links = append(links, page.Link{Href: m.Group(1), Text: template.HTML(text)})
	}
	return links
}

type positioned struct {
	start int
	block page.Block
}

// extractBlocks returns titles, the chapter label, section markers and
// paragraphs of the main content in source order.
func extractBlocks(filename, main string) ([]page.Block, error) {
	var found []positioned

	titles, _ := titleRule.FindAll(filename, main)
	for _, m := range titles {
		text := strings.TrimSpace(m.Group(2))
		if text == "" {
			continue
		}
		found = append(found, positioned{m.Start, page.Block{
			Kind:  page.BlockTitle,
			Class: "mt" + m.Group(1),
			Inner: template.HTML(text),
		}})
	}

	if labels, _ := chapterLabelRule.FindAll(filename, main); len(labels) > 0 {
		found = append(found, positioned{labels[0].Start, page.Block{
			Kind:  page.BlockChapterLabel,
			Class: "chapterlabel",
			Inner: template.HTML(strings.TrimSpace(labels[0].Group(1))),
		}})
	}

	sections, _ := sectionRule.FindAll(filename, main)
	for _, m := range sections {
		text := strings.TrimSpace(m.Group(1))
		if text == "" {
			continue
		}
		found = append(found, positioned{m.Start, page.Block{
			Kind:  page.BlockSection,
			Class: "ms",
			Inner: template.HTML(text),
		}})
	}

	paragraphs, err := paragraphRule.FindAll(filename, main)
	if err != nil {
		return nil, err
	}
	for _, m := range paragraphs {
		inner := CleanParagraph(m.Group(2))
		if inner == "" {
			continue
		}
		found = append(found, positioned{m.Start, page.Block{
			Kind:  page.BlockParagraph,
			Class: m.Group(1),
			Inner: template.HTML(inner),
		}})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	blocks := make([]page.Block, len(found))
	for i, f := range found {
		blocks[i] = f.block
	}
	return blocks, nil
}

// CleanParagraph normalizes the inner markup of one paragraph block:
// double-quoted attributes, lowercase verse ids followed by a plain space,
// footnote popups folded into a title attribute, and collapsed whitespace.
func CleanParagraph(s string) string {
	s = NormalizeQuotes(s)
	s = RewriteVerseMarkers(s)
	s = FoldPopups(s)
	s = whitespaceRule.ReplaceAll(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeQuotes turns name='value' attributes into name="value".
func NormalizeQuotes(s string) string {
	return singleQuoteAttrRule.ReplaceAll(s, `$1="$2"`)
}

// RewriteVerseMarkers rewrites <span class="verse" id="V12">12&#160;</span>
// to <span class="verse" id="v12">12</span> followed by one space.
func RewriteVerseMarkers(s string) string {
	return verseRule.ReplaceAll(s, `<span class="verse" id="v$1">$2</span> `)
}

// FoldPopups moves an inline footnote popup into the title attribute of its
// note link and drops the popup span.
func FoldPopups(s string) string {
	return popupRule.ReplaceAllFunc(s, func(g []string) string {
		return `<a href="#` + g[1] + `" class="notemark" title="` + attrQuote(g[3]) + `">` + g[2] + `</a>`
	})
}

// attrQuote makes already-escaped corpus text safe inside a double-quoted attribute.
func attrQuote(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// extractFootnotes returns the well-formed footnote entries of a footnote
// block. Malformed entries are dropped.
func extractFootnotes(block string) []page.Footnote {
	block = hrRule.Remove(block)
	block = NormalizeQuotes(block)

	matches, _ := footnoteEntryRule.FindAll("", block)
	notes := make([]page.Footnote, 0, len(matches))
	for _, m := range matches {
		notes = append(notes, page.Footnote{
			ID:     m.Group(1),
			Marker: template.HTML(m.Group(2)),
			Verse:  m.Group(3),
			Ref:    template.HTML(m.Group(4)),
			Text:   template.HTML(strings.TrimSpace(m.Group(5))),
		})
	}
	return notes
}
