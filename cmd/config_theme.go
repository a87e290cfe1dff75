package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samsaffron/term-chat/internal/config"
	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/samsaffron/term-chat/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configThemeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Select a color theme",
	Long: `Select from predefined color themes.

Without a name, opens an interactive selector with a live chat preview.
Use arrow keys to navigate, enter to select and save, esc to cancel.

Available themes: gruvbox (default), dracula, nord, solarized, monokai, classic`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.PresetThemeNames, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: configTheme,
}

func init() {
	configCmd.AddCommand(configThemeCmd)
}

func configTheme(cmd *cobra.Command, args []string) error {
	var selected string
	if len(args) == 1 {
		selected = strings.ToLower(args[0])
		if ui.GetPresetTheme(selected) == nil {
			if suggestions := ui.SuggestPresetThemes(selected); len(suggestions) > 0 {
				return fmt.Errorf("unknown theme %q, did you mean %s?", args[0], strings.Join(suggestions, " or "))
			}
			return fmt.Errorf("unknown theme %q (available: %s)", args[0], strings.Join(ui.PresetThemeNames, ", "))
		}
	} else {
		// Get current theme from config (if any)
		currentTheme := ""
		if cfg, err := config.Load(configFile); err == nil {
			currentTheme = cfg.Theme.Preset
			if matched := ui.MatchPresetTheme(themeConfig(cfg.Theme)); matched != "" {
				currentTheme = matched
			}
		}

		var err error
		selected, err = runThemeSelector(currentTheme)
		if err != nil {
			return err
		}
		if selected == "" {
			return nil // cancelled
		}
	}

	preset := ui.GetPresetTheme(selected)
	if preset == nil {
		return fmt.Errorf("unknown theme: %s", selected)
	}

	path, err := activeConfigPath()
	if err != nil {
		return err
	}
	if err := saveThemeToConfig(path, *preset); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to: %s\n", selected)
	return nil
}

// saveThemeToConfig writes the preset into the config file at path,
// preserving every other key and comment.
func saveThemeToConfig(path string, preset ui.ThemePreset) error {
	// Read existing file or create empty document
	var root yaml.Node
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return err
		}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}

	tc := preset.Config
	fields := []struct{ key, value string }{
		{"theme.preset", preset.Name},
		{"theme.primary", tc.Primary},
		{"theme.secondary", tc.Secondary},
		{"theme.success", tc.Success},
		{"theme.error", tc.Error},
		{"theme.warning", tc.Warning},
		{"theme.muted", tc.Muted},
		{"theme.text", tc.Text},
		{"theme.spinner", tc.Spinner},
	}

	for _, f := range fields {
		if err := setYAMLValue(&root, strings.Split(f.key, "."), f.value); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return err
	}
	encoder.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// setYAMLValue sets a dotted path in a YAML document, creating mappings as
// needed.
func setYAMLValue(root *yaml.Node, path []string, value string) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid document structure")
	}

	current := root.Content[0]
	if current.Kind != yaml.MappingNode {
		return fmt.Errorf("root is not a mapping")
	}

	for i, part := range path {
		isLast := i == len(path)-1

		found := false
		for j := 0; j+1 < len(current.Content); j += 2 {
			if current.Content[j].Value != part {
				continue
			}
			next := current.Content[j+1]
			if isLast {
				next.Kind = yaml.ScalarNode
				next.Tag = "!!str"
				next.Value = value
				next.Content = nil
			} else if next.Kind != yaml.MappingNode {
				// A null or scalar placeholder becomes a mapping
				next.Kind = yaml.MappingNode
				next.Tag = ""
				next.Value = ""
				next.Content = nil
			}
			current = next
			found = true
			break
		}

		if !found {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: part}
			if isLast {
				current.Content = append(current.Content, keyNode, &yaml.Node{
					Kind:  yaml.ScalarNode,
					Tag:   "!!str",
					Value: value,
				})
			} else {
				mapping := &yaml.Node{Kind: yaml.MappingNode}
				current.Content = append(current.Content, keyNode, mapping)
				current = mapping
			}
		}
	}

	return nil
}

// themeSelectorModel is the bubbletea model for theme selection
type themeSelectorModel struct {
	presets      []ui.ThemePreset
	cursor       int
	currentTheme string
	selected     string
	cancelled    bool
	width        int
	height       int
}

func newThemeSelectorModel(currentTheme string) themeSelectorModel {
	var presets []ui.ThemePreset
	for _, name := range ui.PresetThemeNames {
		if preset := ui.GetPresetTheme(name); preset != nil {
			presets = append(presets, *preset)
		}
	}

	// Find cursor position for current theme
	cursor := 0
	for i, p := range presets {
		if p.Name == currentTheme {
			cursor = i
			break
		}
	}

	return themeSelectorModel{
		presets:      presets,
		cursor:       cursor,
		currentTheme: currentTheme,
	}
}

func (m themeSelectorModel) Init() tea.Cmd {
	return nil
}

func (m themeSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if len(m.presets) > 0 {
				m.selected = m.presets[m.cursor].Name
			}
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"))):
			m.cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m themeSelectorModel) View() string {
	if len(m.presets) == 0 {
		return "No themes available"
	}

	hovered := m.presets[m.cursor]
	previewTheme := ui.ThemeFromConfig(hovered.Config)

	var listBuilder strings.Builder
	listBuilder.WriteString(lipgloss.NewStyle().Bold(true).Render("Select Theme"))
	listBuilder.WriteString("\n\n")

	for i, preset := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
		}

		label := preset.Name
		if preset.Name == m.currentTheme {
			label += " (current)"
		}

		if i == m.cursor {
			style := lipgloss.NewStyle().Bold(true).Foreground(previewTheme.Primary)
			listBuilder.WriteString(style.Render(cursor + label))
		} else {
			listBuilder.WriteString(cursor + label)
		}
		listBuilder.WriteString("\n")
	}

	listBuilder.WriteString("\n")
	listBuilder.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("↑/↓ navigate · enter select · esc cancel"))

	listCol := lipgloss.NewStyle().Width(30).Render(listBuilder.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, listCol, "  ", renderThemePreview(previewTheme, hovered))
}

// previewMessages is the exchange shown in the theme preview.
var previewMessages = []session.Message{
	session.NewMessage("user", "How do I reverse a slice in **Go**?"),
	session.NewMessage("assistant", "Use `slices.Reverse`:\n\n```go\ns := []int{1, 2, 3}\nslices.Reverse(s)\n```\n\nIt works in place ▍"),
}

// renderThemePreview renders a sample conversation in the theme
func renderThemePreview(theme *ui.Theme, preset ui.ThemePreset) string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Preview: " + preset.Name)
	desc := lipgloss.NewStyle().Foreground(theme.Muted).Render(preset.Description)

	var b strings.Builder
	b.WriteString(title + "\n" + desc + "\n\n")
	for _, msg := range previewMessages {
		b.WriteString(chat.RenderChatMessage(msg,
			chat.WithTheme(theme),
			chat.WithWidth(48),
			chat.WithCodeStyle(preset.CodeStyle),
		))
	}

	return borderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// runThemeSelector runs the interactive theme selector and returns the selected theme name
func runThemeSelector(currentTheme string) (string, error) {
	// Try to use /dev/tty for proper terminal handling
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		tty = nil
	}

	model := newThemeSelectorModel(currentTheme)

	var opts []tea.ProgramOption
	if tty != nil {
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty), tea.WithOutput(tty))
	}

	p := tea.NewProgram(model, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m := finalModel.(themeSelectorModel)
	if m.cancelled {
		return "", nil
	}
	return m.selected, nil
}
