// Package commands provides the seodraft CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/logging"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd builds the command tree around deps.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	var (
		logLevel  string
		logFormat string
		logSource bool
	)

	root := &cobra.Command{
		Use:   "seodraft",
		Short: "Render and publish AI-drafted Markdown articles",
		Long: `seodraft turns loosely structured Markdown drafts into styled HTML,
builds their table of contents and exports standalone HTML or Word documents.

Examples:
  seodraft render draft.md              Print the HTML fragment
  cat draft.md | seodraft render        Read the draft from stdin
  seodraft toc draft.md                 List the article sections
  seodraft blocks draft.md              Split the draft into editable blocks
  seodraft export draft.md -f doc       Write a Word document
  seodraft export --state wizard.json   Export a saved wizard state
  seodraft preview draft.md             Preview in the terminal
  seodraft config                       Edit settings`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.loadConfig()
			logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, AddSource: logSource}
			if logLevel != "" {
				logCfg.Level = logLevel
			}
			if logFormat != "" {
				logCfg.Format = logFormat
			}

			provider, err := logging.NewProvider(logCfg)
			if err != nil {
				return err
			}
			deps.logs = provider
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "seodraft %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (console, json, pretty)")
	root.PersistentFlags().BoolVar(&logSource, "log-source", false, "Include the source file and line in log records")
	root.Flags().BoolP("version", "v", false, "Show version and exit")

	root.AddCommand(
		NewRenderCmd(deps),
		NewTOCCmd(deps),
		NewBlocksCmd(deps),
		NewSlugCmd(deps),
		NewExportCmd(deps),
		NewPreviewCmd(deps),
		NewConfigCmd(deps),
	)

	return root
}

var rootCmd = NewRootCmd(NewDependencies())

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
