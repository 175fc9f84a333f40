package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/article"
)

var blockIDStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")).Width(10)

// NewBlocksCmd creates the blocks command
func NewBlocksCmd(deps *Dependencies) *cobra.Command {
	var (
		asJSON    bool
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "blocks [file]",
		Short: "Split a draft into editable blocks",
		Long: `Split the body of a draft into the blocks an editor works on: paragraph
runs, headings, whole tables and whole fenced code blocks.

With --normalize the draft is reassembled from its title and blocks, one
blank line between blocks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := readDraft(deps, args)
			if err != nil {
				return err
			}
			title, body := draft.Split()
			blocks := article.SplitBlocks(body)
			deps.Logger("blocks").Debug("draft split", "blocks", len(blocks))

			switch {
			case normalize:
				fmt.Fprintln(cmd.OutOrStdout(), article.JoinBlocks(title, blocks))
			case asJSON:
				if blocks == nil {
					blocks = []article.Block{}
				}
				data, err := json.MarshalIndent(blocks, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode blocks: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), formatBlocks(blocks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print blocks as JSON")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Print the draft reassembled from its blocks")

	return cmd
}

func formatBlocks(blocks []article.Block) string {
	if len(blocks) == 0 {
		return dimStyle.Render("(no blocks)")
	}

	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		first, _, _ := strings.Cut(b.Content, "\n")
		lines = append(lines, blockIDStyle.Render(b.ID)+ansi.Truncate(first, 60, "…"))
	}
	return strings.Join(lines, "\n")
}
