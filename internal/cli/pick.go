package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/algorithm"
	"github.com/matzehuels/qscope/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command for interactive template selection.
func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick an algorithm template to analyze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPick(cmd.Context())
		},
	}
}

// runPick shows the algorithm picker and analyzes the chosen template.
func (c *CLI) runPick(ctx context.Context) error {
	p := tea.NewProgram(newAlgorithmPicker(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	model, ok := final.(algorithmPickerModel)
	if !ok || model.selected == nil {
		printInfo("No algorithm selected")
		return nil
	}

	printNewline()
	opts := pipeline.Options{Algorithm: model.selected.Name}
	return c.runAnalyze(ctx, opts, analysisOutput{format: analysisFormatReport})
}

// pickerEntry is one row of the picker: a category header or a template.
type pickerEntry struct {
	header   string
	template algorithm.Template
}

func (e pickerEntry) isHeader() bool { return e.header != "" }

// algorithmPickerModel is the bubbletea model for template selection.
type algorithmPickerModel struct {
	entries  []pickerEntry
	cursor   int
	selected *algorithm.Template
}

// newAlgorithmPicker builds the picker over the template catalog, cursor
// on the first template.
func newAlgorithmPicker() algorithmPickerModel {
	var entries []pickerEntry
	for _, group := range algorithm.Categories() {
		entries = append(entries, pickerEntry{header: group.Category})
		for _, t := range group.Templates {
			entries = append(entries, pickerEntry{template: t})
		}
	}

	m := algorithmPickerModel{entries: entries}
	m.cursor = m.nextSelectable(0, 1)
	return m
}

// nextSelectable returns the first template index at or after from in the
// given direction, or the current cursor when none exists.
func (m algorithmPickerModel) nextSelectable(from, dir int) int {
	for i := from; i >= 0 && i < len(m.entries); i += dir {
		if !m.entries[i].isHeader() {
			return i
		}
	}
	return m.cursor
}

func (m algorithmPickerModel) Init() tea.Cmd {
	return nil
}

func (m algorithmPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.nextSelectable(m.cursor-1, -1)
		case "down", "j":
			m.cursor = m.nextSelectable(m.cursor+1, 1)
		case "enter":
			entry := m.entries[m.cursor]
			if entry.isHeader() {
				return m, nil
			}
			t := entry.template
			m.selected = &t
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m algorithmPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Algorithm"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ analyze  q quit"))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		if entry.isHeader() {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(catalogHeaderStyle.Render(entry.header))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		t := entry.template
		line := fmt.Sprintf("%s%-28s %s", cursor, t.DisplayName, listDimStyle.Render(truncate(t.Description, 48)))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
