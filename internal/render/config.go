package render

import (
	"os"

	"github.com/diogo/seodraft/internal/config"
)

// OptionsFromConfig maps the markdown section of cfg onto render options.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks
	if cfg.PreviewWidth > 0 {
		opts.Width = cfg.PreviewWidth
	}

	// GLAMOUR_STYLE wins over the config file
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}
