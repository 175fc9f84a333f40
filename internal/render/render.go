package render

import "strings"

// Markdown renders markdown for the terminal using a pooled renderer.
func Markdown(content string, opts Options) (string, error) {
	opts = normalize(opts)
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// Article renders a titled article: the title as a level 1 heading followed
// by the body.
func Article(title, body string, opts Options) (string, error) {
	var b strings.Builder
	if title = strings.TrimSpace(title); title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	return Markdown(b.String(), opts)
}
