package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/render/report"
	"github.com/matzehuels/qscope/pkg/store"
)

// historyCommand creates the history command for browsing archived reports.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse archived analysis reports",
		Long: `Browse analysis reports archived with 'analyze --save'.

Reports live under the XDG data directory by default, or in MongoDB when
QSCOPE_MONGO_URI is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryList(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum reports to list (0 = all)")

	cmd.AddCommand(c.historyShowCommand())
	cmd.AddCommand(c.historyDeleteCommand())

	return cmd
}

// historyShowCommand creates the "history show" subcommand.
func (c *CLI) historyShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Re-render an archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryShow(cmd.Context(), args[0])
		},
	}
}

// historyDeleteCommand creates the "history delete" subcommand.
func (c *CLI) historyDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			rep, err := findReport(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			if err := st.Delete(cmd.Context(), rep.ID); err != nil {
				return err
			}
			printSuccess("Deleted report %s", rep.Name)
			printDetail("ID: %s", rep.ID)
			return nil
		},
	}
}

// runHistoryList prints the archived reports, newest first.
func (c *CLI) runHistoryList(ctx context.Context, limit int) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	reports, err := st.List(ctx, store.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		printInfo("No archived reports")
		printNextStep("Archive one", "qscope analyze <circuit> --save")
		return nil
	}

	fmt.Println(renderHistoryTable(reports))
	printDetail("%d report(s)", len(reports))
	printNewline()
	printNextStep("Re-render", "qscope history show <id>")

	return nil
}

// runHistoryShow re-renders the comprehensive report for one archive entry.
func (c *CLI) runHistoryShow(ctx context.Context, id string) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	rep, err := findReport(ctx, st, id)
	if err != nil {
		return err
	}

	rec, err := rep.Document.ToRecord()
	if err != nil {
		return fmt.Errorf("decode archived document: %w", err)
	}

	fmt.Println(report.Comprehensive(rec, report.DefaultOptions()))
	printDetail("%s · archived %s", rep.Name, formatAge(rep.CreatedAt))

	return nil
}

// renderHistoryTable renders the archive listing.
func renderHistoryTable(reports []*store.Report) string {
	rows := make([][]string, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, []string{
			shortID(rep.ID),
			rep.Name,
			strconv.Itoa(rep.Document.Qubits),
			strconv.Itoa(rep.Document.Operations),
			formatAge(rep.CreatedAt),
		})
	}
	return catalogTable([]string{"ID", "Name", "Qubits", "Ops", "Created"}, rows)
}

// findReport resolves id against the archive, accepting the abbreviated
// IDs shown in the listing as long as the prefix is unambiguous.
func findReport(ctx context.Context, st store.Store, id string) (*store.Report, error) {
	rep, err := st.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep != nil {
		return rep, nil
	}

	all, err := st.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}

	var match *store.Report
	for _, candidate := range all {
		if !strings.HasPrefix(candidate.ID, id) {
			continue
		}
		if match != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "report ID %q is ambiguous", id)
		}
		match = candidate
	}
	if match == nil {
		return nil, errors.New(errors.ErrCodeReportNotFound, "report %q not found", id)
	}
	return match, nil
}

// shortID abbreviates a report UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatAge renders t relative to now for recent times, absolute otherwise.
func formatAge(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
