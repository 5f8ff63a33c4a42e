package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/algorithm"
	"github.com/matzehuels/qscope/pkg/gate"
)

var catalogHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// gatesCommand creates the gates command listing the gate catalog.
func (c *CLI) gatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the built-in gate catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderGateCatalog())
			printDetail("%d gates", len(gate.Names()))
			return nil
		},
	}
}

// algorithmsCommand creates the algorithms command listing the template catalog.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the built-in algorithm templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderAlgorithmCatalog())
			printDetail("%d templates", len(algorithm.Names()))
			printNewline()
			printNextStep("Analyze one", "qscope analyze <name>")
			return nil
		},
	}
}

// renderGateCatalog renders the gate catalog as one table per category.
func renderGateCatalog() string {
	var b strings.Builder

	for _, group := range gate.Categories() {
		b.WriteString(StyleTitle.Render(group.Category))
		b.WriteString("\n")

		rows := make([][]string, 0, len(group.Gates))
		for _, d := range group.Gates {
			qubits := strconv.Itoa(d.Qubits)
			if d.Qubits == 0 {
				qubits = "any"
			}
			params := "—"
			if d.Params > 0 {
				params = strconv.Itoa(d.Params)
			}
			rows = append(rows, []string{d.Name, d.DisplayName, qubits, params, d.Description})
		}

		b.WriteString(catalogTable([]string{"Gate", "Name", "Qubits", "Params", "Description"}, rows))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderAlgorithmCatalog renders the algorithm templates as one table per
// category.
func renderAlgorithmCatalog() string {
	var b strings.Builder

	for _, group := range algorithm.Categories() {
		b.WriteString(StyleTitle.Render(group.Category))
		b.WriteString("\n")

		rows := make([][]string, 0, len(group.Templates))
		for _, t := range group.Templates {
			rows = append(rows, []string{t.Name, t.DisplayName, strings.Join(t.Tags, ", "), t.Description})
		}

		b.WriteString(catalogTable([]string{"Name", "Algorithm", "Tags", "Description"}, rows))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// catalogTable renders a bordered table with the shared catalog styling.
func catalogTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(catalogHeaderStyle)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == len(headers)-1:
				return base.Foreground(colorDim)
			default:
				return base
			}
		})

	return t.Render()
}
