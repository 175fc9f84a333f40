package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/seodraft/internal/article"
	"github.com/diogo/seodraft/internal/render"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// stubRenderer lays the article out one markdown line per output line, with
// a long filler run after every heading so jumps never hit the scroll limit.
func stubRenderer(title, body string, _ render.Options) (string, error) {
	lines := []string{"# " + title, ""}
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, line)
		if strings.HasPrefix(line, "##") {
			for i := 0; i < 50; i++ {
				lines = append(lines, fmt.Sprintf("filler %d", i))
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

func newTestPreview(t *testing.T, width, height int) PreviewModel {
	t.Helper()
	doc := &article.Document{Title: "Espresso Guide", Body: "## Alpha\n## Beta"}
	m := NewPreviewModel(doc, render.DefaultOptions())
	m.renderFn = stubRenderer

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(PreviewModel)
}

func press(m PreviewModel, keys ...string) (PreviewModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(key(k))
		m = updated.(PreviewModel)
	}
	return m, cmd
}

func TestPreviewModel_Resize(t *testing.T) {
	m := newTestPreview(t, 100, 30)

	require.True(t, m.ready)
	assert.Equal(t, 100-panelBorderSize-sidebarWidth, m.viewport.Width)
	assert.Equal(t, 30-headerHeight-statusHeight-panelBorderSize, m.viewport.Height)
	assert.Equal(t, []int{2, 53}, m.headingLines)
	assert.NoError(t, m.err)
}

func TestPreviewModel_TOCNavigation(t *testing.T) {
	m := newTestPreview(t, 100, 30)

	m, _ = press(m, "tab")
	require.True(t, m.tocFocused)

	m, _ = press(m, "j", "enter")
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, 53, m.viewport.YOffset)

	m, _ = press(m, "j")
	assert.Equal(t, 1, m.cursor, "cursor stops at the last entry")

	m, _ = press(m, "k", "k", "enter")
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 2, m.viewport.YOffset)

	m, _ = press(m, "tab")
	assert.False(t, m.tocFocused)
}

func TestPreviewModel_ScrollWhenArticleFocused(t *testing.T) {
	m := newTestPreview(t, 100, 30)

	m, _ = press(m, "j", "j")
	assert.Equal(t, 0, m.cursor, "TOC cursor untouched while the article has focus")
	assert.Equal(t, 2, m.viewport.YOffset)
}

func TestPreviewModel_NarrowHidesSidebar(t *testing.T) {
	m := newTestPreview(t, 60, 30)

	assert.False(t, m.sidebarVisible())
	assert.Equal(t, 60-panelBorderSize, m.viewport.Width)

	m, _ = press(m, "tab")
	assert.False(t, m.tocFocused)
	assert.NotContains(t, m.View(), "Contents")
}

func TestPreviewModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestPreview(t, 100, 30)
			_, cmd := press(m, k)
			assert.True(t, isQuit(t, cmd))
		})
	}
}

func TestPreviewModel_View(t *testing.T) {
	m := NewPreviewModel(&article.Document{Title: "T", Body: "x"}, render.DefaultOptions())
	assert.Contains(t, m.View(), "Rendering")

	m = newTestPreview(t, 100, 30)
	view := m.View()
	assert.Contains(t, view, "Espresso Guide")
	assert.Contains(t, view, "Contents")
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Beta")
	assert.Contains(t, view, "2 sections")
}

func TestPreviewModel_RenderError(t *testing.T) {
	doc := &article.Document{Title: "Broken", Body: "## Only"}
	m := NewPreviewModel(doc, render.DefaultOptions())
	m.renderFn = func(string, string, render.Options) (string, error) {
		return "", errors.New("style not found")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(PreviewModel)

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "style not found")
	assert.Equal(t, []int{2}, m.headingLines, "raw markdown fallback still locates headings")
}

func TestPreviewModel_GlamourHeadings(t *testing.T) {
	doc := &article.Document{
		Title: "Coffee",
		Body:  "## Beans\n\nPick fresh beans.\n\n### Grind Size\n\nMedium for drip.\n\n## Brewing\n\nUse clean water.",
	}
	m := NewPreviewModel(doc, render.DefaultOptions().WithStyle(render.StyleNoTTY))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(PreviewModel)

	require.NoError(t, m.err)
	require.Len(t, m.headingLines, 3)
	for i, line := range m.headingLines {
		assert.GreaterOrEqual(t, line, 0, "heading %d not located", i)
		if i > 0 {
			assert.Greater(t, line, m.headingLines[i-1])
		}
	}
}

func TestLocateHeadings(t *testing.T) {
	lines := []string{
		"\x1b[1m## Intro\x1b[0m",
		"text",
		"  Deep Dive",
		"## FAQ",
		"## FAQ",
	}
	toc := []article.TOCEntry{
		{Level: 2, Text: "Intro"},
		{Level: 3, Text: "Deep **Dive**"},
		{Level: 2, Text: "FAQ"},
		{Level: 2, Text: "FAQ"},
		{Level: 2, Text: "Missing"},
	}

	assert.Equal(t, []int{0, 2, 3, 4, -1}, locateHeadings(lines, toc))
}
