package article

import (
	"regexp"
	"strings"

	"github.com/diogo/seodraft/internal/markdown"
)

// TOCEntry is one table-of-contents link. ID matches the id the renderer
// puts on the heading.
type TOCEntry struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

var (
	titlePattern   = regexp.MustCompile(`^#\s*`)
	tocLinePattern = regexp.MustCompile(`^(#{2,6})\s(.*)$`)
)

// ExtractTitle finds the first "# " line of draft and returns its text and
// everything after it. Without one, fallback is the title and the whole
// draft is the body.
func ExtractTitle(draft, fallback string) (title, body string) {
	lines := strings.Split(normalizeNewlines(draft), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "# ") {
			continue
		}
		title = strings.TrimSpace(titlePattern.ReplaceAllString(trimmed, ""))
		body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		return title, body
	}
	return fallback, strings.TrimSpace(draft)
}

// BuildTOC lists the level 2-6 headings of markdown source. Lines inside
// fenced code are skipped because the renderer never turns them into
// headings.
func BuildTOC(source string) []TOCEntry {
	var (
		entries []TOCEntry
		inCode  bool
	)

	for _, line := range strings.Split(normalizeNewlines(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}

		m := tocLinePattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		entries = append(entries, TOCEntry{
			Level: len(m[1]),
			Text:  text,
			ID:    markdown.Slugify(text),
		})
	}
	return entries
}
