package modernize

import "github.com/FocuswithJustin/webbible/core/extract"

// Extraction rules for the legacy eBible page shape. Legacy pages mix single
// and double attribute quotes, so structural rules accept both.
var (
	chapterListLinkRule = extract.New("chapter-list link",
		`<li><a href=['"]([^'"]+)['"]>(\d+)</a></li>`,
		"chapter-list entries are one <li><a> per chapter with a numeric label")

	navBlockRule = extract.New("nav block",
		`(?s)<ul class=['"]tnav['"]>(.*?)</ul>`,
		"the first tnav list is the chapter navigation")

	navLinkRule = extract.New("nav link",
		`<li><a href=['"]([^'"]+)['"]>([^<]+)</a></li>`,
		"nav entries are plain-text links")

	mainRule = extract.New("main content",
		`(?s)<div class=['"]main['"]>(.*?)(?:<ul class=['"]tnav|<div class=['"]footnote)`,
		"main content ends where the bottom nav or the footnote block begins")

	titleRule = extract.New("title",
		`<div class=['"]mt(\d?)['"]>([^<]*)</div>`,
		"title blocks contain text only")

	chapterLabelRule = extract.New("chapter label",
		`<div class=['"]chapterlabel['"][^>]*>([^<]*)</div>`,
		"the chapter label contains text only")

	sectionRule = extract.New("section marker",
		`<div class=['"]ms['"]>([^<]*)</div>`,
		"section markers contain text only")

	paragraphRule = extract.New("paragraph",
		`(?s)<div class=['"]([pqbm]\d?)['"]>(.*?)</div>`,
		"paragraph, poetry, blank and margin divs never contain another div").
		Forbid(2, `<div\b`)

	footnoteBlockRule = extract.New("footnote block",
		`(?s)<div class=['"]footnote['"]>(.*?)</div>`,
		"the footnote block contains paragraphs, never divs")

	footnoteEntryRule = extract.New("footnote entry",
		`(?s)<p class="f" id="(FN\d+)">\s*<span class="notemark">([^<]*)</span>\s*<a class="notebackref" href="#V(\d+)">([^<]*)</a>\s*<span class="ft">([^<]*)</span>\s*</p>`,
		"footnote entries are id, marker, verse back-reference and plain note text")

	hrRule = extract.New("separator", `<hr\s*/?>`, "rules carry no content")

	singleQuoteAttrRule = extract.New("single-quoted attribute",
		`(\w+)='([^']*)'`,
		"attribute values never contain a single quote")

	verseRule = extract.New("verse marker",
		`<span class="verse" id="V(\d+)">(\d+)&#160;</span>`,
		"verse markers are the number followed by a non-breaking space")

	popupRule = extract.New("footnote popup",
		`<a href="#(FN\d+)" class="notemark">([^<]*)<span class="popup">([^<]*)</span></a>`,
		"popup bodies are plain text")

	whitespaceRule = extract.New("whitespace", `\s+`, "any whitespace run is insignificant inside a block")
)
