package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	imagePattern    = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern     = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
)

var (
	strongDelims   = []string{"**", "__"}
	emphasisDelims = []string{"*", "_"}
)

// linkSlot brackets the index of a rendered anchor while emphasis runs, so the
// anchor's own attributes (target="_blank", underscores in URLs) are never
// read as emphasis markers.
const linkSlot = "\x00"

// Inline applies span-level formatting to text in a fixed order: images are
// removed, links become anchors, then bold, italic and code spans.
func Inline(text string) string {
	text = strings.ReplaceAll(text, linkSlot, "")
	text = imagePattern.ReplaceAllString(text, "")

	var anchors []string
	text = replaceSubmatches(linkPattern, text, func(groups []string) string {
		anchors = append(anchors, anchor(groups[2], codeSpans(emphasis(groups[1]))))
		return linkSlot + strconv.Itoa(len(anchors)-1) + linkSlot
	})

	text = codeSpans(emphasis(text))

	for i := len(anchors) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, linkSlot+strconv.Itoa(i)+linkSlot, anchors[i])
	}
	return text
}

func emphasis(text string) string {
	text = replacePaired(text, strongDelims, `<strong class="`+classStrong+`">`, "</strong>")
	return replacePaired(text, emphasisDelims, "<em>", "</em>")
}

func codeSpans(text string) string {
	return codeSpanPattern.ReplaceAllString(text, `<code class="`+classInlineCode+`">$1</code>`)
}

func anchor(href, label string) string {
	return `<a href="` + href + `" target="_blank" rel="noopener noreferrer" class="` + classLink + `">` + label + `</a>`
}

// replacePaired wraps the shortest run between two identical delimiters,
// scanning left to right. A run never crosses a newline and may be empty.
func replacePaired(s string, delims []string, open, close string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if end, inner, ok := matchPaired(s, i, delims); ok {
			b.WriteString(open)
			b.WriteString(inner)
			b.WriteString(close)
			i = end
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func matchPaired(s string, i int, delims []string) (end int, inner string, ok bool) {
	for _, d := range delims {
		if !strings.HasPrefix(s[i:], d) {
			continue
		}
		start := i + len(d)
		idx := strings.Index(s[start:], d)
		if idx < 0 {
			continue
		}
		inner = s[start : start+idx]
		if strings.Contains(inner, "\n") {
			continue
		}
		return start + idx + len(d), inner, true
	}
	return 0, "", false
}

func replaceSubmatches(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		groups := make([]string, len(m)/2)
		for g := range groups {
			if m[2*g] >= 0 {
				groups[g] = s[m[2*g]:m[2*g+1]]
			}
		}
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
