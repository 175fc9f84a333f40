package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/diogo/seodraft/internal/article"
	"github.com/diogo/seodraft/internal/render"
)

const (
	sidebarWidth    = 32
	minWidthForTOC  = 72
	headerHeight    = 3
	statusHeight    = 1
	panelBorderSize = 2
	minViewport     = 3
)

// articleRenderer draws a titled article for the terminal.
type articleRenderer func(title, body string, opts render.Options) (string, error)

// PreviewModel is the interactive article preview: the glamour-rendered
// article in a scrollable viewport beside a table of contents.
type PreviewModel struct {
	title    string
	body     string
	toc      []article.TOCEntry
	opts     render.Options
	renderFn articleRenderer

	viewport     viewport.Model
	headingLines []int

	tocFocused bool
	cursor     int

	ready  bool
	err    error
	width  int
	height int
}

// NewPreviewModel creates a preview for doc.
func NewPreviewModel(doc *article.Document, opts render.Options) PreviewModel {
	return PreviewModel{
		title:    doc.Title,
		body:     doc.Body,
		toc:      article.BuildTOC(doc.Body),
		opts:     opts,
		renderFn: render.Article,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab":
			if m.sidebarVisible() {
				m.tocFocused = !m.tocFocused
			}
			return m, nil
		}

		if m.tocFocused {
			switch msg.String() {
			case "down", "j":
				if m.cursor < len(m.toc)-1 {
					m.cursor++
				}
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "enter":
				m.jumpToHeading(m.cursor)
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PreviewModel) sidebarVisible() bool {
	return len(m.toc) > 0 && m.width >= minWidthForTOC
}

func (m *PreviewModel) resize() {
	contentWidth := m.width - panelBorderSize
	if m.sidebarVisible() {
		contentWidth -= sidebarWidth
	} else {
		m.tocFocused = false
	}
	if contentWidth < render.MinWidth {
		contentWidth = render.MinWidth
	}

	vpHeight := m.height - headerHeight - statusHeight - panelBorderSize
	if vpHeight < minViewport {
		vpHeight = minViewport
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}

	m.renderContent(contentWidth)
}

// renderContent re-renders the article at width and re-locates headings.
func (m *PreviewModel) renderContent(width int) {
	content, err := m.renderFn(m.title, m.body, m.opts.WithWidth(width))
	if err != nil {
		m.err = err
		content = "# " + m.title + "\n\n" + m.body
	} else {
		m.err = nil
	}

	m.viewport.SetContent(content)
	m.headingLines = locateHeadings(strings.Split(content, "\n"), m.toc)
}

func (m *PreviewModel) jumpToHeading(i int) {
	if i < 0 || i >= len(m.headingLines) {
		return
	}
	if line := m.headingLines[i]; line >= 0 {
		m.viewport.SetYOffset(line)
	}
}

// locateHeadings finds, for each TOC entry, the first rendered line at or
// after the previous match that contains the heading text. Missing headings
// are -1.
func locateHeadings(lines []string, toc []article.TOCEntry) []int {
	positions := make([]int, len(toc))
	from := 0
	for i, entry := range toc {
		positions[i] = -1
		needle := plainText(entry.Text)
		if needle == "" {
			continue
		}
		for j := from; j < len(lines); j++ {
			if strings.Contains(plainText(ansi.Strip(lines[j])), needle) {
				positions[i] = j
				from = j + 1
				break
			}
		}
	}
	return positions
}

var markRemover = strings.NewReplacer("*", "", "_", "", "`", "")

func plainText(s string) string {
	return strings.TrimSpace(markRemover.Replace(s))
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Rendering...")
	}

	header := headerStyle.Width(m.width - panelBorderSize).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			titleStyle.Render("✦ "+m.title),
			subtitleStyle.Render(fmt.Sprintf("  •  %d sections", len(m.toc))),
		),
	)

	content := contentPanelStyle.
		Width(m.viewport.Width).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	body := content
	if m.sidebarVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), content)
	}

	sections := []string{header, body, m.renderStatusBar()}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("✗ "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PreviewModel) renderSidebar() string {
	inner := sidebarWidth - 4

	items := []string{sidebarTitleStyle.Render("Contents")}
	for i, entry := range m.toc {
		indent := strings.Repeat("  ", entry.Level-2)
		label := ansi.Truncate(indent+entry.Text, inner-2, "…")
		if i == m.cursor && m.tocFocused {
			items = append(items, sidebarSelectedStyle.Render("▸ "+label))
		} else {
			items = append(items, sidebarItemStyle.Render("  "+label))
		}
	}

	style := sidebarStyle
	if m.tocFocused {
		style = sidebarFocusedStyle
	}
	return style.
		Width(sidebarWidth - panelBorderSize).
		Height(m.viewport.Height).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (m PreviewModel) renderStatusBar() string {
	shortcuts := []shortcut{{"↑↓", "Scroll"}}
	if m.sidebarVisible() {
		if m.tocFocused {
			shortcuts = []shortcut{{"j/k", "Move"}, {"Enter", "Jump"}, {"Tab", "Article"}}
		} else {
			shortcuts = append(shortcuts, shortcut{"Tab", "Contents"})
		}
	}
	shortcuts = append(shortcuts, shortcut{"q", "Quit"})

	percent := statusDescStyle.Render(fmt.Sprintf("  %3.0f%%", m.viewport.ScrollPercent()*100))
	return renderShortcuts(shortcuts) + percent
}

// RunPreview opens the interactive preview for doc.
func RunPreview(doc *article.Document, opts render.Options, palette render.Palette) error {
	ApplyPalette(palette)

	p := tea.NewProgram(
		NewPreviewModel(doc, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
