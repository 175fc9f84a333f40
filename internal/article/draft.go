package article

import (
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"

	apperrors "github.com/diogo/seodraft/internal/errors"
)

// Draft is a finished article as the wizard hands it over: the raw markdown
// plus whatever metadata came along with it.
type Draft struct {
	Topic    string   `json:"topic,omitempty"`
	Title    string   `json:"title,omitempty"`
	Language string   `json:"language,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Outline  []string `json:"outline,omitempty"`
	// Markdown is the draft text, title line included when the writer
	// produced one.
	Markdown string `json:"markdown"`
}

type draftMeta struct {
	Title    string   `yaml:"title"`
	Topic    string   `yaml:"topic"`
	Image    string   `yaml:"image"`
	Language string   `yaml:"language"`
	Outline  []string `yaml:"outline"`
}

// LoadDraft reads a markdown draft with optional YAML front matter.
func LoadDraft(r io.Reader) (*Draft, error) {
	var meta draftMeta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if strings.TrimSpace(string(body)) == "" {
		return nil, apperrors.ErrEmptyDraft
	}

	return &Draft{
		Topic:    strings.TrimSpace(meta.Topic),
		Title:    strings.TrimSpace(meta.Title),
		Language: strings.TrimSpace(meta.Language),
		ImageURL: strings.TrimSpace(meta.Image),
		Outline:  meta.Outline,
		Markdown: string(body),
	}, nil
}

// Split separates the title from the body. A title set in metadata wins over
// the fallback, and the topic is the last resort.
func (d *Draft) Split() (title, body string) {
	fallback := d.Title
	if fallback == "" {
		fallback = d.Topic
	}
	title, body = ExtractTitle(d.Markdown, fallback)
	if d.Title != "" {
		title = d.Title
	}
	return title, body
}

// Document builds the export document for the draft.
func (d *Draft) Document() *Document {
	title, body := d.Split()
	return &Document{
		Title:       title,
		HeaderImage: d.ImageURL,
		Body:        body,
	}
}
