// Package article turns a finished draft into publishable output: editable
// blocks, a title, a table of contents and a standalone HTML document built
// on the markdown renderer.
package article

import (
	"fmt"
	"strings"
)

// Block is one editable unit of a draft: a paragraph run, a heading section
// start, a whole table or a whole fenced code block.
type Block struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// SplitBlocks cuts a draft into blocks. Fenced code and pipe tables are never
// split internally; blank lines end a block, and a heading always starts a
// new one.
func SplitBlocks(draft string) []Block {
	lines := strings.Split(normalizeNewlines(draft), "\n")

	var (
		blocks  []Block
		current []string
		inCode  bool
		inTable bool
	)

	push := func() {
		if len(current) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(current, "\n"))
		if content != "" {
			blocks = append(blocks, Block{
				ID:      fmt.Sprintf("block-%d", len(blocks)),
				Content: content,
			})
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				current = append(current, line)
				push()
				inCode = false
			} else {
				push()
				inCode = true
				current = append(current, line)
			}
			continue
		}
		if inCode {
			current = append(current, line)
			continue
		}

		if strings.HasPrefix(trimmed, "|") {
			if !inTable {
				push()
				inTable = true
			}
			current = append(current, line)
			continue
		}
		if inTable {
			push()
			inTable = false
			if trimmed != "" {
				current = append(current, line)
			}
			continue
		}

		if trimmed == "" {
			push()
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			push()
		}
		current = append(current, line)
	}
	push()

	return blocks
}

// JoinBlocks reassembles a draft from its title and blocks.
func JoinBlocks(title string, blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Content)
	}
	return "# " + title + "\n\n" + strings.Join(parts, "\n\n")
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
