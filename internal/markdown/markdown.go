// Package markdown renders the Markdown subset produced by article drafting
// (ATX headings, pipe tables, fenced code, flat lists, blockquotes and inline
// spans) into HTML fragments.
//
// Rendering never fails: every line lands in some block, and anything
// ambiguous degrades to paragraph text. The package holds no mutable state,
// so calls may run concurrently.
package markdown

import "strings"

// ElementKind identifies the block an Element was rendered from.
type ElementKind string

const (
	KindParagraph  ElementKind = "paragraph"
	KindHeading    ElementKind = "heading"
	KindList       ElementKind = "list"
	KindTable      ElementKind = "table"
	KindBlockquote ElementKind = "blockquote"
	KindCodeBlock  ElementKind = "code"
)

// ListKind is the marker family of a list: "*" and "-" are unordered, "N."
// is ordered.
type ListKind string

const (
	ListUnordered ListKind = "ul"
	ListOrdered   ListKind = "ol"
)

// Element is one rendered block, in reading order.
type Element struct {
	Kind ElementKind `json:"kind"`
	// Level and ID are set for headings.
	Level int    `json:"level,omitempty"`
	ID    string `json:"id,omitempty"`
	// List is set for lists.
	List ListKind `json:"list,omitempty"`
	// Columns and Rows (body rows) are set for tables.
	Columns int    `json:"columns,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	HTML    string `json:"html"`
}

// Render parses text into its rendered blocks. It backs the live preview,
// which lays blocks out individually.
func Render(text string) []Element {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	p := &parser{lines: strings.Split(text, "\n")}
	p.run()
	return p.out
}

// RenderHTML renders text into a single HTML fragment. It is the
// concatenation of Render's element markup.
func RenderHTML(text string) string {
	elements := Render(text)
	if len(elements) == 0 {
		return ""
	}

	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el.HTML)
	}
	return b.String()
}

// mode is the accumulator the parser is currently filling.
type mode int

const (
	modeNone mode = iota
	modeParagraph
	modeList
	modeCode
)

type parser struct {
	lines []string
	out   []Element

	mode     mode
	para     []string
	items    []string
	listKind ListKind
	code     []string
}

func (p *parser) run() {
	for i := 0; i < len(p.lines); {
		i = p.step(i)
	}
	p.flush()
	if p.mode == modeCode {
		p.emit(codeBlockElement(p.code))
		p.code = nil
		p.mode = modeNone
	}
}

// step consumes the line at i and returns the index of the next unread line.
func (p *parser) step(i int) int {
	line := p.lines[i]
	trimmed := strings.TrimSpace(line)

	if p.mode == modeCode {
		if strings.HasPrefix(trimmed, fenceMarker) {
			p.emit(codeBlockElement(p.code))
			p.code = nil
			p.mode = modeNone
		} else {
			p.code = append(p.code, line)
		}
		return i + 1
	}

	switch Classify(p.lines, i) {
	case LineFence:
		p.flush()
		p.mode = modeCode

	case LineHeading:
		p.flush()
		m := headingPattern.FindStringSubmatch(trimmed)
		p.emit(headingElement(len(m[1]), m[2]))

	case LineTable:
		p.flush()
		end := tableExtent(p.lines, i)
		p.emit(tableElements(p.lines[i:end])...)
		return end

	case LineListItem:
		m := listItemPattern.FindStringSubmatch(trimmed)
		kind := ListUnordered
		if m[1] != "*" && m[1] != "-" {
			kind = ListOrdered
		}
		p.flushParagraph()
		if p.mode == modeList && p.listKind != kind {
			p.flushList()
		}
		p.mode = modeList
		p.listKind = kind
		p.items = append(p.items, m[2])

	case LineBlockquote:
		p.flush()
		m := blockquotePattern.FindStringSubmatch(trimmed)
		p.emit(blockquoteElement(m[1]))

	case LineBlank:
		p.flush()

	default:
		p.flushList()
		p.mode = modeParagraph
		p.para = append(p.para, trimmed)
	}
	return i + 1
}

func (p *parser) emit(elements ...Element) {
	p.out = append(p.out, elements...)
}

// flush closes an open paragraph or list.
func (p *parser) flush() {
	p.flushParagraph()
	p.flushList()
}

func (p *parser) flushParagraph() {
	if p.mode != modeParagraph {
		return
	}
	if len(p.para) > 0 {
		p.emit(paragraphElement(strings.Join(p.para, " ")))
	}
	p.para = nil
	p.mode = modeNone
}

func (p *parser) flushList() {
	if p.mode != modeList {
		return
	}
	if len(p.items) > 0 {
		p.emit(listElement(p.listKind, p.items))
	}
	p.items = nil
	p.listKind = ""
	p.mode = modeNone
}
