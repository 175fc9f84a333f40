package markdown

import (
	"regexp"
	"strings"
)

// LineKind is the block-level category of a single source line.
type LineKind int

const (
	LineText LineKind = iota
	LineFence
	LineHeading
	LineTable
	LineListItem
	LineBlockquote
	LineBlank
)

var lineKindNames = map[LineKind]string{
	LineText:       "text",
	LineFence:      "fence",
	LineHeading:    "heading",
	LineTable:      "table",
	LineListItem:   "list-item",
	LineBlockquote: "blockquote",
	LineBlank:      "blank",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	headingPattern    = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	listItemPattern   = regexp.MustCompile(`^(\*|-|\d+\.)\s+(.*)$`)
	blockquotePattern = regexp.MustCompile(`^>\s?(.*)$`)
)

const (
	fenceMarker     = "```"
	tableSeparator  = "---"
	tableCellMarker = "|"
)

// classifier is one entry of the ordered predicate list. The first entry whose
// predicate accepts a line decides its kind.
type classifier struct {
	kind  LineKind
	match func(lines []string, i int, trimmed string) bool
}

var classifiers = []classifier{
	{LineFence, func(_ []string, _ int, trimmed string) bool {
		return strings.HasPrefix(trimmed, fenceMarker)
	}},
	{LineHeading, func(_ []string, _ int, trimmed string) bool {
		return headingPattern.MatchString(trimmed)
	}},
	{LineTable, isTableLine},
	{LineListItem, func(_ []string, _ int, trimmed string) bool {
		return listItemPattern.MatchString(trimmed)
	}},
	{LineBlockquote, func(_ []string, _ int, trimmed string) bool {
		return blockquotePattern.MatchString(trimmed)
	}},
	{LineBlank, func(_ []string, _ int, trimmed string) bool {
		return trimmed == ""
	}},
}

// Classify reports the kind of lines[i]. Tables look one line ahead and one
// line behind for the "---" separator row. Code-fence state is not considered
// here; the parser stops classifying while a fence is open.
func Classify(lines []string, i int) LineKind {
	if i < 0 || i >= len(lines) {
		return LineBlank
	}
	trimmed := strings.TrimSpace(lines[i])
	for _, c := range classifiers {
		if c.match(lines, i, trimmed) {
			return c.kind
		}
	}
	return LineText
}

func isTableLine(lines []string, i int, trimmed string) bool {
	if !strings.Contains(trimmed, tableCellMarker) {
		return false
	}
	if i+1 < len(lines) && strings.Contains(strings.TrimSpace(lines[i+1]), tableSeparator) {
		return true
	}
	if i > 0 && strings.Contains(strings.TrimSpace(lines[i-1]), tableSeparator) {
		return true
	}
	return strings.Contains(trimmed, tableSeparator)
}

// tableExtent returns the index one past the last line of the table that
// starts at lines[start]: every following line containing a pipe belongs to it.
func tableExtent(lines []string, start int) int {
	j := start + 1
	for j < len(lines) && strings.Contains(strings.TrimSpace(lines[j]), tableCellMarker) {
		j++
	}
	return j
}
