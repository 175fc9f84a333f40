package article

import (
	"strings"
	"sync"

	"github.com/diogo/seodraft/internal/markdown"
)

// SplitChunks cuts body at empty lines, the boundaries the renderer is fed
// on. Empty lines inside a fenced code block do not split it.
func SplitChunks(body string) []string {
	var (
		chunks  []string
		current []string
		inCode  bool
	)

	push := func() {
		if chunk := strings.Join(current, "\n"); strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		current = nil
	}

	for _, line := range strings.Split(normalizeNewlines(body), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
		}
		if line == "" && !inCode {
			push()
			continue
		}
		current = append(current, line)
	}
	push()

	return chunks
}

// RenderBody renders every chunk of body and concatenates the fragments in
// source order. Chunks are independent, so they render in parallel.
func RenderBody(body string) string {
	chunks := SplitChunks(body)
	switch len(chunks) {
	case 0:
		return ""
	case 1:
		return markdown.RenderHTML(chunks[0])
	}

	rendered := make([]string, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			rendered[i] = markdown.RenderHTML(chunk)
		}(i, chunk)
	}
	wg.Wait()

	return strings.Join(rendered, "")
}

// RenderElements renders body chunk by chunk into preview elements.
func RenderElements(body string) []markdown.Element {
	var out []markdown.Element
	for _, chunk := range SplitChunks(body) {
		out = append(out, markdown.Render(chunk)...)
	}
	return out
}
