package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/seodraft/internal/article"
)

var errNoInput = errors.New("no input: pass a markdown file or pipe one on stdin")

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// readInput returns the markdown named by args[0], or stdin when no file (or
// "-") is given.
func readInput(deps *Dependencies, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if f, ok := deps.Stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errNoInput
		}
	}

	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// readDraft loads the input as a draft with optional front matter.
func readDraft(deps *Dependencies, args []string) (*article.Draft, error) {
	text, err := readInput(deps, args)
	if err != nil {
		return nil, err
	}
	return article.LoadDraft(strings.NewReader(text))
}

// emit writes text to outputPath, or to stdout when it is empty, and copies
// it to the clipboard when asked to. Clipboard failures only warn.
func emit(cmd *cobra.Command, deps *Dependencies, text, outputPath string, copyText bool) error {
	log := deps.Logger("output")

	if copyText {
		if err := deps.CopyToClipboard(text); err != nil {
			log.Warn("clipboard copy failed", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ Copied to clipboard"))
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Debug("output written", "path", outputPath, "bytes", len(text))
		fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ Saved to "+outputPath))
		return nil
	}

	out := cmd.OutOrStdout()
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		_, err := io.WriteString(out, "\n")
		return err
	}
	return nil
}
