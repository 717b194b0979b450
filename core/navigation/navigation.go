// Package navigation wraps modernized chapter pages in browsing chrome: a
// book sidebar, a breadcrumb, a chapter select and previous/next links.
package navigation

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/webbible/core/books"
	"github.com/FocuswithJustin/webbible/core/errors"
	"github.com/FocuswithJustin/webbible/core/extract"
	"github.com/FocuswithJustin/webbible/core/page"
)

// Marker is present in every page that already carries navigation.
const Marker = `class="sidebar"`

var (
	mainRule = extract.New("main content",
		`(?s)<main class="main">(.*?)</main>`,
		"modernized pages hold their text in a single main element")

	footnoteRule = extract.New("footnote footer",
		`(?s)<footer class="footnote">.*?</footer>`,
		"footnotes are one footer element, copied whole")
)

// Injector adds navigation to modernized chapter pages.
type Injector struct {
	reg *books.Registry
}

// New creates an Injector backed by reg.
func New(reg *books.Registry) *Injector {
	return &Injector{reg: reg}
}

// Inject returns content re-rendered with navigation for the chapter named
// filename. Pages that are not numbered chapters of a known book, and pages
// that already carry the sidebar, are rejected with an error matching
// errors.ErrSkipped.
func (in *Injector) Inject(filename, content string) (string, error) {
	if !books.HasChapterNumber(filename) {
		return "", errors.Skip(filename, errors.NewValidation("filename", "no chapter number"))
	}
	doc, ok := in.reg.ParseFilename(filename)
	if !ok || doc.IsChapterList() {
		return "", errors.Skip(filename, errors.NewNotFound("book", filename))
	}
	if !doc.Entry.IsText() {
		return "", errors.Skip(filename, errors.NewUnsupported("book "+doc.Entry.ID, "supplementary document"))
	}
	if strings.Contains(content, Marker) {
		return "", errors.Skip(filename, errors.ErrAlreadyConverted)
	}

	chapter, err := strconv.Atoi(doc.Chapter)
	if err != nil || chapter < 1 || chapter > doc.Entry.Chapters {
		return "", errors.NewValidation("chapter",
			fmt.Sprintf("%s has no chapter %q", doc.Entry.Name, doc.Chapter))
	}

	main, err := mainRule.Require(filename, content)
	if err != nil {
		return "", err
	}
	var footnotes string
	if m, ok := footnoteRule.Find(content); ok {
		footnotes = m[0]
	}

	pos := doc.Entry.Position(chapter)
	return page.RenderNavigated(&page.Navigated{
		Head:      page.ChapterHead(doc.Entry.Name, strconv.Itoa(chapter)),
		Sidebar:   Sidebar(in.reg, doc.Entry),
		BookHref:  doc.Entry.IndexFile(),
		BookName:  doc.Entry.Name,
		Chapter:   chapter,
		Options:   ChapterOptions(doc.Entry, chapter),
		PrevHref:  pos.Prev,
		NextHref:  pos.Next,
		Main:      template.HTML(main[1]),
		Footnotes: template.HTML(footnotes),
	})
}

// Sidebar lists every navigable book by group. The group holding current is
// open and current is the single active entry.
func Sidebar(reg *books.Registry, current books.Entry) []page.SidebarGroup {
	groups := reg.Groups()
	out := make([]page.SidebarGroup, 0, len(groups))
	for _, g := range groups {
		entries := reg.InGroup(g)
		sg := page.SidebarGroup{
			Title: g.Title(),
			Open:  g == current.Group,
			Books: make([]page.SidebarBook, 0, len(entries)),
		}
		for _, e := range entries {
			sg.Books = append(sg.Books, page.SidebarBook{
				Href:   e.FirstChapterFile(),
				Name:   e.Name,
				Active: e.ID == current.ID,
			})
		}
		out = append(out, sg)
	}
	return out
}

// ChapterOptions returns one select option per chapter of e.
func ChapterOptions(e books.Entry, current int) []page.ChapterOption {
	opts := make([]page.ChapterOption, 0, e.Chapters)
	for n := 1; n <= e.Chapters; n++ {
		opts = append(opts, page.ChapterOption{
			Value:    e.ChapterFile(n),
			Number:   n,
			Selected: n == current,
		})
	}
	return opts
}
