package markdown

import (
	"strings"
	"unicode"
)

// Slugify derives the anchor id for a heading.
//
// The text is lowercased and trimmed, whitespace runs become a single hyphen,
// everything that is not an ASCII word character or a hyphen is dropped, and
// repeated hyphens are collapsed. The TOC builder relies on this exact
// sequence, so heading ids and TOC links always agree.
func Slugify(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if isWordRune(r) || r == '-' {
			b.WriteRune(r)
		}
	}

	return collapseHyphens(b.String())
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func collapseHyphens(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		b.WriteByte(c)
	}
	return b.String()
}
