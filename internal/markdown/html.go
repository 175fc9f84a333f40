package markdown

import (
	"strconv"
	"strings"
)

// CSS hooks emitted on rendered elements. Hosts style them; the export
// stylesheet targets plain element selectors and ignores them.
const (
	classParagraph       = "md-p"
	classHeadingPrimary  = "md-heading md-heading-primary"
	classHeadingSecond   = "md-heading md-heading-secondary"
	classHeadingTertiary = "md-heading md-heading-tertiary"
	classListUnordered   = "md-list md-list-disc"
	classListOrdered     = "md-list md-list-decimal"
	classListItem        = "md-list-item"
	classBlockquote      = "md-blockquote"
	classCodeBlock       = "md-pre"
	classCode            = "md-code-block"
	classTableWrapper    = "md-table-wrapper"
	classTable           = "md-table"
	classTableHeader     = "md-th"
	classTableCell       = "md-td"
	classRowEven         = "md-tr-even"
	classRowOdd          = "md-tr-odd"
	classStrong          = "md-strong"
	classLink            = "md-link"
	classInlineCode      = "md-code"
)

var codeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func headingClass(level int) string {
	switch level {
	case 1:
		return classHeadingPrimary
	case 2:
		return classHeadingSecond
	default:
		return classHeadingTertiary
	}
}

func paragraphElement(text string) Element {
	return Element{
		Kind: KindParagraph,
		HTML: `<p class="` + classParagraph + `">` + Inline(text) + `</p>`,
	}
}

func headingElement(level int, text string) Element {
	tag := "h" + strconv.Itoa(level)
	id := Slugify(text)
	return Element{
		Kind:  KindHeading,
		Level: level,
		ID:    id,
		HTML:  `<` + tag + ` id="` + id + `" class="` + headingClass(level) + `">` + Inline(text) + `</` + tag + `>`,
	}
}

func listElement(kind ListKind, items []string) Element {
	tag, class := "ul", classListUnordered
	if kind == ListOrdered {
		tag, class = "ol", classListOrdered
	}

	var b strings.Builder
	b.WriteString(`<` + tag + ` class="` + class + `">`)
	for _, item := range items {
		b.WriteString(`<li class="` + classListItem + `">`)
		b.WriteString(Inline(item))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</` + tag + `>`)

	return Element{Kind: KindList, List: kind, HTML: b.String()}
}

func blockquoteElement(text string) Element {
	return Element{
		Kind: KindBlockquote,
		HTML: `<blockquote class="` + classBlockquote + `"><p>` + Inline(text) + `</p></blockquote>`,
	}
}

func codeBlockElement(lines []string) Element {
	code := codeEscaper.Replace(strings.Join(lines, "\n"))
	return Element{
		Kind: KindCodeBlock,
		HTML: `<pre class="` + classCodeBlock + `"><code class="` + classCode + `">` + code + `</code></pre>`,
	}
}
