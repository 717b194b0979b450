// Package page assembles output documents from structured records.
//
// Every page the tools write is rendered here from html/template templates
// embedded in the binary, so quoting and escaping happen in one place. Values
// taken from the registry (book names, filenames, chapter numbers) are plain
// strings and get escaped; fragments lifted from the corpus are already markup
// and travel as template.HTML.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

// External collaborators referenced by every page.
const (
	Stylesheet = "../styles/styles.css"
	Script     = "../scripts/navigation.js"
	HomeHref   = "../index.htm"
	SiteTitle  = "World English Bible"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("page").
		Option("missingkey=error").
		Funcs(sprig.HtmlFuncMap()).
		Funcs(template.FuncMap{
			"stylesheet": func() string { return Stylesheet },
			"script":     func() string { return Script },
			"home":       func() string { return HomeHref },
			"site":       func() string { return SiteTitle },
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Head is the <head> metadata of a page.
type Head struct {
	Title       string
	Description string
}

// BookHead is the head of a book's chapter-list page.
func BookHead(book string) Head {
	return Head{Title: fmt.Sprintf("%s - %s", SiteTitle, book)}
}

// ChapterHead is the head of a chapter page.
func ChapterHead(book, chapter string) Head {
	return Head{
		Title:       fmt.Sprintf("%s - %s %s", SiteTitle, book, chapter),
		Description: fmt.Sprintf("%s Chapter %s - %s", book, chapter, SiteTitle),
	}
}

// BlockKind is the type of a main-content block.
type BlockKind string

// Block kinds in the order they are emitted.
const (
	BlockTitle        BlockKind = "title"
	BlockChapterLabel BlockKind = "chapterlabel"
	BlockSection      BlockKind = "section"
	BlockParagraph    BlockKind = "paragraph"
)

// Block is one typed fragment of main content.
type Block struct {
	Kind  BlockKind
	Class string
	Inner template.HTML
}

// Link is an anchor whose text is corpus markup.
type Link struct {
	Href string
	Text template.HTML
}

// Footnote is one rendered footnote entry.
type Footnote struct {
	ID     string
	Marker template.HTML
	Verse  string
	Ref    template.HTML
	Text   template.HTML
}

// Chapter is a normalized chapter-content page.
type Chapter struct {
	Head      Head
	Nav       []Link
	Blocks    []Block
	Footnotes []Footnote
}

// ChapterList is a normalized chapter-list page.
type ChapterList struct {
	Head Head
	Book string
	Rows [][]Link
}

// SidebarBook is one sidebar entry.
type SidebarBook struct {
	Href   string
	Name   string
	Active bool
}

// SidebarGroup is one collapsible sidebar section.
type SidebarGroup struct {
	Title string
	Open  bool
	Books []SidebarBook
}

// ChapterOption is one entry of the chapter select control.
type ChapterOption struct {
	Value    string
	Number   int
	Selected bool
}

// Navigated is a chapter page wrapped in browsing chrome.
type Navigated struct {
	Head      Head
	Sidebar   []SidebarGroup
	BookHref  string
	BookName  string
	Chapter   int
	Options   []ChapterOption
	PrevHref  string
	NextHref  string
	Main      template.HTML
	Footnotes template.HTML
}

// RenderChapter renders a normalized chapter-content page.
func RenderChapter(c *Chapter) (string, error) {
	return render("chapter", c)
}

// RenderChapterList renders a normalized chapter-list page.
func RenderChapterList(l *ChapterList) (string, error) {
	return render("chapterlist", l)
}

// RenderNavigated renders a chapter page with sidebar, breadcrumb and chapter controls.
func RenderNavigated(n *Navigated) (string, error) {
	return render("navigated", n)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return buf.String(), nil
}
