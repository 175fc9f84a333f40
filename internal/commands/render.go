package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/article"
	"github.com/diogo/seodraft/internal/markdown"
)

// NewRenderCmd creates the render command
func NewRenderCmd(deps *Dependencies) *cobra.Command {
	var (
		blocks     bool
		asJSON     bool
		copyOutput bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to an HTML fragment",
		Long: `Render a markdown draft to the styled HTML fragment used by the publish
view. Reads stdin when no file is given.

With --blocks the draft is split at blank lines and every chunk is rendered
on its own, the way exports assemble the article body. With --json the
rendered elements are printed with their kind, level and heading id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := deps.Logger("render")

			text, err := readInput(deps, args)
			if err != nil {
				return err
			}
			log.Debug("rendering markdown", "bytes", len(text), "blocks", blocks)

			var out string
			if asJSON {
				var elements []markdown.Element
				if blocks {
					elements = article.RenderElements(text)
				} else {
					elements = markdown.Render(text)
				}
				if elements == nil {
					elements = []markdown.Element{}
				}
				data, err := json.MarshalIndent(elements, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode elements: %w", err)
				}
				out = string(data)
			} else if blocks {
				out = article.RenderBody(text)
			} else {
				out = markdown.RenderHTML(text)
			}

			copyText := copyOutput || deps.loadConfig().CopyToClipboard
			return emit(cmd, deps, out, outputPath, copyText)
		},
	}

	cmd.Flags().BoolVar(&blocks, "blocks", false, "Render blank-line separated chunks independently")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rendered elements as JSON")
	cmd.Flags().BoolVarP(&copyOutput, "copy", "c", false, "Copy the output to the clipboard")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the output to a file")

	return cmd
}
