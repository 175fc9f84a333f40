package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/render"
)

// NewPreviewCmd creates the preview command
func NewPreviewCmd(deps *Dependencies) *cobra.Command {
	var (
		interactive bool
		width       int
		style       string
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview a draft in the terminal",
		Long: `Preview a draft in the terminal. On a terminal the interactive viewer opens
with the table of contents beside the article: Tab switches focus, j/k move,
Enter jumps to a section and q quits. When stdout is not a terminal, or with
--interactive=false, the article is printed once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := deps.Logger("preview")
			cfg := deps.loadConfig()

			draft, err := readDraft(deps, args)
			if err != nil {
				return err
			}
			doc := draft.Document()

			opts := render.OptionsFromConfig(cfg)
			if style != "" {
				opts = opts.WithStyle(style)
			}
			if err := render.ValidateStyle(opts.Style); err != nil {
				return err
			}

			if !cmd.Flags().Changed("interactive") {
				interactive = deps.IsTTY()
			}
			if interactive {
				log.Debug("opening interactive preview", "title", doc.Title)
				return deps.TUI.RunPreview(doc, opts, render.PaletteOrDefault(cfg.PreviewTheme))
			}

			switch {
			case width > 0:
				opts.Width = width
			case cfg.PreviewWidth <= 0:
				opts.Width = deps.TerminalWidth()
			}

			out, err := render.Article(doc.Title, doc.Body, opts)
			if err != nil {
				log.Warn("terminal rendering failed, printing raw markdown", "error", err)
				out = draft.Markdown
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive viewer (default on a terminal)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap width for printed output")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Glamour style name or JSON style file")

	return cmd
}
