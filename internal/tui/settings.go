package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/seodraft/internal/config"
	"github.com/diogo/seodraft/internal/render"
)

type settingKind int

const (
	settingToggle settingKind = iota
	settingChoice
	settingExit
)

// setting is one row of the settings menu. Toggles use flag; choices use
// choices, get and set.
type setting struct {
	label   string
	kind    settingKind
	flag    func(c *config.Config) *bool
	choices func() []string
	get     func(c config.Config) string
	set     func(c *config.Config, v string)
}

func paletteNames() []string {
	palettes := render.Palettes()
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

var settingItems = []setting{
	{
		label:   "Export Format",
		kind:    settingChoice,
		choices: config.AvailableFormats,
		get:     func(c config.Config) string { return c.Export.Format },
		set:     func(c *config.Config, v string) { c.Export.Format = v },
	},
	{
		label: "Embed Header Image",
		kind:  settingToggle,
		flag:  func(c *config.Config) *bool { return &c.Export.EmbedImage },
	},
	{
		label: "Copy to Clipboard",
		kind:  settingToggle,
		flag:  func(c *config.Config) *bool { return &c.CopyToClipboard },
	},
	{
		label:   "Preview Style",
		kind:    settingChoice,
		choices: render.StyleNames,
		get:     func(c config.Config) string { return c.Markdown.Style },
		set:     func(c *config.Config, v string) { c.Markdown.Style = v },
	},
	{
		label:   "Preview Palette",
		kind:    settingChoice,
		choices: paletteNames,
		get:     func(c config.Config) string { return c.PreviewTheme },
		set: func(c *config.Config, v string) {
			c.PreviewTheme = v
			ApplyPalette(render.PaletteOrDefault(v))
		},
	},
	{
		label: "Emoji in Preview",
		kind:  settingToggle,
		flag:  func(c *config.Config) *bool { return &c.Markdown.EnableEmoji },
	},
	{
		label: "Exit",
		kind:  settingExit,
	},
}

// feedbackClearMsg clears the feedback line
type feedbackClearMsg struct{}

func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// SettingsModel edits the user configuration in place.
type SettingsModel struct {
	config     config.Config
	configPath string
	save       func(config.Config) error

	cursor       int
	choosing     bool
	choiceCursor int

	feedback        string
	feedbackTimeout time.Duration

	width  int
	height int
	ready  bool
}

// NewSettingsModel creates a settings editor for cfg that persists changes
// through save.
func NewSettingsModel(cfg config.Config, configPath string, save func(config.Config) error) SettingsModel {
	ApplyPalette(render.PaletteOrDefault(cfg.PreviewTheme))
	return SettingsModel{
		config:          cfg,
		configPath:      configPath,
		save:            save,
		feedbackTimeout: 2 * time.Second,
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.choosing {
				m.choosing = false
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.choosing {
				m.choiceCursor = wrap(m.choiceCursor-1, len(m.currentChoices()))
			} else {
				m.cursor = wrap(m.cursor-1, len(settingItems))
			}

		case "down", "j":
			if m.choosing {
				m.choiceCursor = wrap(m.choiceCursor+1, len(m.currentChoices()))
			} else {
				m.cursor = wrap(m.cursor+1, len(settingItems))
			}

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

func (m SettingsModel) currentChoices() []string {
	item := settingItems[m.cursor]
	if item.choices == nil {
		return nil
	}
	return item.choices()
}

func (m SettingsModel) handleSelect() (tea.Model, tea.Cmd) {
	item := settingItems[m.cursor]

	if m.choosing {
		choices := m.currentChoices()
		if len(choices) == 0 {
			m.choosing = false
			return m, nil
		}
		value := choices[m.choiceCursor]
		item.set(&m.config, value)
		m.choosing = false
		return m.persist(fmt.Sprintf("%s set to %s", item.label, value))
	}

	switch item.kind {
	case settingToggle:
		flag := item.flag(&m.config)
		*flag = !*flag
		state := "disabled"
		if *flag {
			state = "enabled"
		}
		return m.persist(fmt.Sprintf("%s %s", item.label, state))

	case settingChoice:
		m.choosing = true
		m.choiceCursor = 0
		current := item.get(m.config)
		for i, c := range item.choices() {
			if c == current {
				m.choiceCursor = i
				break
			}
		}
		return m, nil

	case settingExit:
		return m, tea.Quit
	}

	return m, nil
}

func (m SettingsModel) persist(success string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = success
	}
	return m, clearFeedback(m.feedbackTimeout)
}

// Config returns the configuration as edited so far.
func (m SettingsModel) Config() config.Config {
	return m.config
}

// View implements tea.Model.
func (m SettingsModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	header := headerStyle.Width(width).Render(titleStyle.Render("✦ seodraft settings"))
	paths := settingsPanelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		settingsSectionStyle.Render("Config file"),
		settingsPathStyle.Render(m.configPath),
	))

	var menu string
	if m.choosing {
		menu = m.renderChoices()
	} else {
		menu = m.renderMenu()
	}

	sections := []string{header, paths, settingsPanelStyle.Width(width).Render(menu)}
	if m.feedback != "" {
		sections = append(sections, settingsFeedbackStyle.Render("✓ "+m.feedback))
	}

	back := "Exit"
	if m.choosing {
		back = "Back"
	}
	sections = append(sections, renderShortcuts([]shortcut{{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Esc", back}}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SettingsModel) renderMenu() string {
	rows := []string{settingsSectionStyle.Render("Settings"), ""}
	for i, item := range settingItems {
		cursor, style := "  ", settingsItemStyle
		if i == m.cursor {
			cursor, style = settingsCursorStyle.Render("▸ "), settingsSelectedStyle
		}

		label := style.Render(fmt.Sprintf("%-20s", item.label))
		switch item.kind {
		case settingToggle:
			rows = append(rows, cursor+label+renderBool(*item.flag(&m.config)))
		case settingChoice:
			rows = append(rows, cursor+label+settingsValueStyle.Render(item.get(m.config)))
		default:
			rows = append(rows, "", cursor+style.Render(item.label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m SettingsModel) renderChoices() string {
	item := settingItems[m.cursor]
	current := item.get(m.config)

	rows := []string{settingsSectionStyle.Render("Select " + item.label), ""}
	for i, choice := range m.currentChoices() {
		cursor, style := "  ", settingsItemStyle
		if i == m.choiceCursor {
			cursor, style = settingsCursorStyle.Render("▸ "), settingsSelectedStyle
		}
		row := cursor + style.Render(choice)
		if choice == current {
			row += settingsOnStyle.Render(" (current)")
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBool(v bool) string {
	if v {
		return settingsOnStyle.Render("enabled")
	}
	return settingsOffStyle.Render("disabled")
}

// RunSettings opens the settings editor on the user's config file.
func RunSettings() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	path, _ := config.GetConfigPath()

	p := tea.NewProgram(
		NewSettingsModel(cfg, path, config.SaveConfig),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
