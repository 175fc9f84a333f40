package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/article"
	"github.com/diogo/seodraft/internal/config"
	apperrors "github.com/diogo/seodraft/internal/errors"
	"github.com/diogo/seodraft/internal/fetch"
)

const untitled = "Untitled"

type exportOptions struct {
	format     string
	outputPath string
	title      string
	image      string
	statePath  string
	embedImage bool
	includeTOC bool
	copyOutput bool
}

// NewExportCmd creates the export command
func NewExportCmd(deps *Dependencies) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a draft as a standalone HTML or Word document",
		Long: `Export a draft as a standalone document: the header image, the title and
the rendered body inside a print-ready stylesheet.

  html  open in a browser and print to PDF
  doc   open in Word or any word processor

Without --output the file is written to the export directory from the
config, named after the article title. Use --output - for stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, deps, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Export format: html or doc (default from config)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Override the article title")
	cmd.Flags().StringVar(&opts.image, "image", "", "Header image URL (http(s) or data:)")
	cmd.Flags().StringVar(&opts.statePath, "state", "", "Read the draft from a saved wizard state JSON file")
	cmd.Flags().BoolVar(&opts.embedImage, "embed-image", false, "Download the header image and embed it")
	cmd.Flags().BoolVar(&opts.includeTOC, "toc", false, "Add a table of contents after the title")
	cmd.Flags().BoolVarP(&opts.copyOutput, "copy", "c", false, "Copy the exported HTML to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, deps *Dependencies, args []string, opts exportOptions) error {
	log := deps.Logger("export")
	cfg := deps.loadConfig()

	format := cfg.Export.Format
	if opts.format != "" {
		f, err := parseFormat(opts.format)
		if err != nil {
			return err
		}
		format = f
	}

	draft, err := loadExportDraft(deps, args, opts.statePath)
	if err != nil {
		return err
	}

	doc := draft.Document()
	if opts.title != "" {
		doc.Title = opts.title
	}
	if strings.TrimSpace(doc.Title) == "" {
		log.Warn("draft has no title, using placeholder", "title", untitled)
		doc.Title = untitled
	}
	if opts.image != "" {
		doc.HeaderImage = opts.image
	}
	doc.IncludeTOC = opts.includeTOC

	if doc.HeaderImage != "" && (opts.embedImage || cfg.Export.EmbedImage) && !fetch.IsDataURL(doc.HeaderImage) {
		doc.HeaderImage = embedHeaderImage(cmd.Context(), deps, cfg, doc.HeaderImage)
	}

	data, _, err := doc.Export(format)
	if err != nil {
		return err
	}

	if opts.copyOutput || cfg.CopyToClipboard {
		page, err := doc.HTML()
		if err == nil {
			err = deps.CopyToClipboard(string(page))
		}
		if err != nil {
			log.Warn("clipboard copy failed", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ Copied to clipboard"))
		}
	}

	if opts.outputPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path := opts.outputPath
	if path == "" {
		dir, err := config.GetExportDir(cfg)
		if err != nil {
			return apperrors.NewExportError(format, "", err)
		}
		path = filepath.Join(dir, doc.FileName(format))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.NewExportError(format, path, err)
	}
	log.Debug("document exported", "path", path, "format", format, "bytes", len(data))

	fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(fmt.Sprintf("✓ Exported %s", doc.Title)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func loadExportDraft(deps *Dependencies, args []string, statePath string) (*article.Draft, error) {
	if statePath == "" {
		return readDraft(deps, args)
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return article.LoadSnapshot(data)
}

// embedHeaderImage inlines url, keeping the remote URL when the download
// fails.
func embedHeaderImage(ctx context.Context, deps *Dependencies, cfg config.Config, url string) string {
	log := deps.Logger("export")
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := time.Duration(cfg.Export.ImageTimeout) * time.Second
	embedder, err := deps.NewEmbedder(timeout, deps.Logger("fetch"))
	if err != nil {
		log.Warn("image client unavailable, keeping remote URL", "error", err)
		return url
	}

	embedded, err := embedder.EmbedImage(ctx, url)
	if err != nil {
		log.Warn("header image not embedded, keeping remote URL", "url", url, "error", err)
		return url
	}
	return embedded
}

// parseFormat maps a user supplied format name to html or doc.
func parseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case article.FormatHTML, "htm", "pdf":
		return article.FormatHTML, nil
	case article.FormatDoc, "word", "msword":
		return article.FormatDoc, nil
	default:
		return "", apperrors.NewFormatError(name)
	}
}
