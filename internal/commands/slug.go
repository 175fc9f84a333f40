package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/markdown"
)

// NewSlugCmd creates the slug command
func NewSlugCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>",
		Short: "Print the anchor id for a heading",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.Slugify(strings.Join(args, " ")))
			return nil
		},
	}
}
