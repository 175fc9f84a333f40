// Package render draws articles in the terminal with glamour.
package render

// Options configures the terminal renderer.
type Options struct {
	// Width is the word-wrap column (default: 80)
	Width int

	// Style is a glamour style name ("dark", "light", "dracula", ...) or a
	// path to a JSON style file
	Style string

	// EnableEmoji converts :emoji: shortcodes
	EnableEmoji bool

	// PreserveNewLines keeps single line breaks from the draft
	PreserveNewLines bool

	// TableWrap wraps long table cells instead of truncating them
	TableWrap bool

	// InlineTableLinks prints link targets inside table cells
	InlineTableLinks bool
}

// DefaultOptions returns the preview defaults.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            StyleDark,
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// WithWidth returns a copy with the given wrap width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns a copy with the given style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}
