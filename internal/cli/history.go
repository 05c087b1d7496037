package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/soro/internal/infra/reportstore"
)

func historyCmd() *cobra.Command {
	var limit int
	var format string

	c := &cobra.Command{
		Use:   "history [dir]",
		Short: "List recent sorts (needs soro.reports.enabled in soro.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			start, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			st, err := loadSettings(start)
			if err != nil {
				return err
			}

			entries, err := reportstore.NewJSONStore(st.root, st.cfg).List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				if !st.cfg.Reports.Enabled {
					fmt.Fprintln(out, "No sorts recorded (enable soro.reports in soro.yaml)")
					return nil
				}
				fmt.Fprintln(out, "No sorts recorded")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("WHEN", "ALGORITHM", "LINES", "MS", "INPUT")
			for _, e := range entries {
				t.Row(
					e.SortedAt.Local().Format("2006-01-02 15:04:05"),
					e.Algorithm,
					strconv.Itoa(e.Count),
					fmt.Sprintf("%.3f", e.ElapsedMS),
					e.Input,
				)
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show (0 = all)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
