package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/article"
)

var (
	tocTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	tocItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
)

// NewTOCCmd creates the toc command
func NewTOCCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "toc [file]",
		Short: "List the table of contents of a draft",
		Long: `List the level 2 to 6 headings of a draft with the anchor ids the renderer
gives them. The title line is not part of the table of contents.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := readDraft(deps, args)
			if err != nil {
				return err
			}
			title, body := draft.Split()
			entries := article.BuildTOC(body)
			deps.Logger("toc").Debug("table of contents built", "entries", len(entries))

			if asJSON {
				if entries == nil {
					entries = []article.TOCEntry{}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode toc: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatTOC(title, entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")

	return cmd
}

func formatTOC(title string, entries []article.TOCEntry) string {
	var lines []string
	if title != "" {
		lines = append(lines, tocTitleStyle.Render(title))
	}
	if len(entries) == 0 {
		lines = append(lines, dimStyle.Render("(no sections)"))
		return strings.Join(lines, "\n")
	}

	for _, e := range entries {
		indent := lipgloss.NewStyle().PaddingLeft(2 * (e.Level - 2))
		line := tocItemStyle.Render("• "+e.Text) + dimStyle.Render("  #"+e.ID)
		lines = append(lines, indent.Render(line))
	}
	return strings.Join(lines, "\n")
}
