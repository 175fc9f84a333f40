package article

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"

	apperrors "github.com/diogo/seodraft/internal/errors"
)

// Export formats
const (
	FormatHTML = "html"
	FormatDoc  = "doc"
)

// Media types for each export format
const (
	MediaTypeHTML = "text/html; charset=utf-8"
	MediaTypeDoc  = "application/msword"
)

const utf8BOM = "\ufeff"

// Document is a finished article ready for export.
type Document struct {
	Title string
	// HeaderImage is an http(s) or data: URL shown above the title.
	HeaderImage string
	// Body is the article markdown without its title line.
	Body string
	// IncludeTOC adds a linked table of contents before the body.
	IncludeTOC bool
}

type documentView struct {
	Title       string
	HeaderImage template.URL
	TOC         []TOCEntry
	Body        template.HTML
}

var documentTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"tocIndent": tocIndent,
}).Parse(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 800px; margin: 40px auto; padding: 0 20px; }
img { max-width: 100%; height: auto; border-radius: 8px; margin-bottom: 2em; display: block; }
h1 { font-size: 2.8em; margin-bottom: 0.5em; line-height: 1.2; color: #1a1a1a; }
h2 { font-size: 2em; margin-top: 2em; border-bottom: 1px solid #eee; padding-bottom: 0.3em; color: #2d3748; }
h3 { font-size: 1.5em; margin-top: 1.5em; color: #4a5568; }
p { margin-bottom: 1.2em; }
ul, ol { padding-left: 2em; margin-bottom: 1.2em; }
nav.toc { margin-bottom: 2em; }
blockquote { border-left: 4px solid #4a5568; padding-left: 1.5em; margin-left: 0; color: #4a5568; font-style: italic; background: #f7fafc; padding: 10px 20px; }
pre { background: #f7fafc; padding: 1em; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; margin: 2em 0; }
th, td { border: 1px solid #e2e8f0; padding: 12px; text-align: left; }
th { background-color: #edf2f7; font-weight: bold; }
@media print {
  body { margin: 0; }
  .container { max-width: 100%; margin: 20px; border: none; box-shadow: none; }
}
</style>
</head>
<body>
<div class="container">
{{- if .HeaderImage}}
<img src="{{.HeaderImage}}" alt="{{.Title}}" />
{{- end}}
<h1>{{.Title}}</h1>
{{- if .TOC}}
<nav class="toc"><ul>
{{- range .TOC}}
<li style="margin-left: {{tocIndent .Level}}rem"><a href="#{{.ID}}">{{.Text}}</a></li>
{{- end}}
</ul></nav>
{{- end}}
{{.Body}}
</div>
</body>
</html>
`))

func tocIndent(level int) int {
	if level < 2 {
		return 0
	}
	return level - 2
}

// HTML renders the standalone page used for print-to-PDF.
func (d *Document) HTML() ([]byte, error) {
	view := documentView{
		Title:       d.Title,
		HeaderImage: template.URL(d.HeaderImage),
		Body:        template.HTML(RenderBody(d.Body)),
	}
	if d.IncludeTOC {
		view.TOC = BuildTOC(d.Body)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, apperrors.NewExportError(FormatHTML, "", err)
	}
	return buf.Bytes(), nil
}

// WordDocument renders the page with a UTF-8 BOM so word processors open
// it as a .doc file with the right encoding.
func (d *Document) WordDocument() ([]byte, error) {
	page, err := d.HTML()
	if err != nil {
		return nil, err
	}
	return append([]byte(utf8BOM), page...), nil
}

// Export renders the document in format ("html" or "doc") and returns the
// bytes with their media type.
func (d *Document) Export(format string) ([]byte, string, error) {
	switch format {
	case FormatHTML:
		data, err := d.HTML()
		return data, MediaTypeHTML, err
	case FormatDoc:
		data, err := d.WordDocument()
		return data, MediaTypeDoc, err
	default:
		return nil, "", apperrors.NewFormatError(format)
	}
}

var (
	whitespacePattern = regexp.MustCompile(`\s`)
	pathUnsafe        = strings.NewReplacer("/", "-", "\\", "-", ":", "-")
)

// FileName derives a download name from the title, e.g. "my-post.doc".
func (d *Document) FileName(ext string) string {
	return fileBase(d.Title) + "." + strings.TrimPrefix(ext, ".")
}

func fileBase(title string) string {
	title = strings.TrimSpace(title)
	if name, err := slug.Normalize(title); err == nil && name != "" {
		return pathUnsafe.Replace(name)
	}
	if name := pathUnsafe.Replace(whitespacePattern.ReplaceAllString(title, "-")); name != "" {
		return name
	}
	return "article"
}
