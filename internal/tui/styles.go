// Package tui provides the interactive terminal screens for seodraft.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/seodraft/internal/render"
)

// Colors of the active palette
var (
	colorSurface lipgloss.Color
	colorBorder  lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color

	colorText    lipgloss.Color
	colorTextDim lipgloss.Color
)

// Styles, rebuilt by ApplyPalette
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	loadingStyle  lipgloss.Style

	contentPanelStyle lipgloss.Style

	sidebarStyle         lipgloss.Style
	sidebarFocusedStyle  lipgloss.Style
	sidebarTitleStyle    lipgloss.Style
	sidebarItemStyle     lipgloss.Style
	sidebarSelectedStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle lipgloss.Style

	settingsPanelStyle    lipgloss.Style
	settingsSectionStyle  lipgloss.Style
	settingsItemStyle     lipgloss.Style
	settingsSelectedStyle lipgloss.Style
	settingsCursorStyle   lipgloss.Style
	settingsValueStyle    lipgloss.Style
	settingsOnStyle       lipgloss.Style
	settingsOffStyle      lipgloss.Style
	settingsPathStyle     lipgloss.Style
	settingsFeedbackStyle lipgloss.Style
)

func init() {
	ApplyPalette(render.TokyoNightPalette)
}

// ApplyPalette recolors every style.
func ApplyPalette(p render.Palette) {
	colorSurface = p.Surface
	colorBorder = p.Border
	colorPrimary = p.Primary
	colorSecondary = p.Secondary
	colorAccent = p.Accent
	colorText = p.Text
	colorTextDim = p.TextDim

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	contentPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	sidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	sidebarFocusedStyle = sidebarStyle.
		BorderForeground(colorAccent)

	sidebarTitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginBottom(1)

	sidebarItemStyle = lipgloss.NewStyle().
		Foreground(colorText)

	sidebarSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Background(colorSurface).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f7768e")).
		Bold(true)

	settingsPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	settingsSectionStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	settingsItemStyle = lipgloss.NewStyle().
		Foreground(colorText)

	settingsSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	settingsCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	settingsValueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	settingsOnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ece6a"))

	settingsOffStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f7768e"))

	settingsPathStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	settingsFeedbackStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true).
		MarginTop(1)
}

type shortcut struct {
	key  string
	desc string
}

func renderShortcuts(shortcuts []shortcut) string {
	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	return statusBarStyle.Render(strings.Join(items, statusDescStyle.Render("  │  ")))
}
