package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/infra/linefile"
	"github.com/aalvaropc/soro/internal/infra/logger"
	"github.com/aalvaropc/soro/internal/infra/reportstore"
	"github.com/aalvaropc/soro/internal/ports"
	"github.com/aalvaropc/soro/internal/usecase"
)

func sortCmd(opts *rootOptions) *cobra.Command {
	var output string
	var algorithm string
	var toStdout bool
	var format string

	c := &cobra.Command{
		Use:   "sort <input>",
		Short: "Sort the lines of a file (numbers numerically, everything else as text)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("invalid input path: %w", err)
			}

			st, err := loadSettings(input)
			if err != nil {
				return err
			}

			cleanup := setupLogging(st, opts.debug)
			defer cleanup()
			if opts.debug && logger.Path() != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}

			if !cmd.Flags().Changed("format") {
				format = st.cfg.Defaults.Format
			}
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			selector := resolveAlgorithmArg(algorithm, st.cfg.Defaults.Algorithm)

			out := ""
			if !toStdout {
				out = resolveOutputPath(input, output, st.cfg.Output.Suffix)
			}

			store := linefile.NewStore()
			var writer ports.LineWriter = store
			if toStdout {
				writer = nil
			}

			ucOpts := []usecase.SortFileOption{usecase.WithLogger(logger.For("cli.sort"))}
			if st.cfg.Reports.Enabled {
				ucOpts = append(ucOpts, usecase.WithReportStore(reportstore.NewJSONStore(st.root, st.cfg)))
			}

			uc := usecase.NewSortFile(store, writer, ucOpts...)
			res, err := uc.Execute(cmd.Context(), input, out, selector)
			if err != nil {
				return err
			}

			summary := cmd.OutOrStdout()
			if toStdout {
				for _, l := range res.Lines {
					fmt.Fprintln(cmd.OutOrStdout(), l)
				}
				summary = cmd.ErrOrStderr()
			}
			return printReport(summary, res.Report, res.ReportID, format)
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <input><suffix> from soro.yaml, e.g. lines.sorted.txt)")
	c.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Bubble Sort|Quick Sort|Insertion Sort (or bubble|quick|insertion)")
	c.Flags().BoolVar(&toStdout, "stdout", false, "Print sorted lines to stdout instead of writing a file")
	c.Flags().StringVar(&format, "format", "pretty", "Summary format: pretty|json")

	c.MarkFlagsMutuallyExclusive("output", "stdout")
	return c
}

// resolveAlgorithmArg prefers the flag over the configured default.
func resolveAlgorithmArg(arg, configured string) string {
	if strings.TrimSpace(arg) == "" {
		return usecase.NormalizeSelector(configured)
	}
	return usecase.NormalizeSelector(arg)
}

func resolveOutputPath(input, flag, suffix string) string {
	out := strings.TrimSpace(flag)
	if out == "" {
		return usecase.DefaultOutputPath(input, suffix)
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return out
	}
	return abs
}

type jsonReport struct {
	Algorithm  string  `json:"algorithm"`
	Count      int     `json:"count"`
	ElapsedMS  float64 `json:"elapsed_ms"`
	InputPath  string  `json:"input_path"`
	OutputPath string  `json:"output_path,omitempty"`
	ReportID   string  `json:"report_id,omitempty"`
}

func printReport(w io.Writer, r domain.SortReport, reportID, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{
			Algorithm:  r.Algorithm,
			Count:      r.Count,
			ElapsedMS:  r.ElapsedMS(),
			InputPath:  r.InputPath,
			OutputPath: r.OutputPath,
			ReportID:   reportID,
		})
	case "pretty", "":
		printPrettyReport(w, r, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, r domain.SortReport, reportID string) {
	fmt.Fprintf(w, "Algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(w, "Sorted:    %d line(s)\n", r.Count)
	fmt.Fprintf(w, "Elapsed:   %.3f ms\n", r.ElapsedMS())
	fmt.Fprintf(w, "Input:     %s\n", r.InputPath)
	if r.OutputPath != "" {
		fmt.Fprintf(w, "Output:    %s\n", r.OutputPath)
	}
	if reportID != "" {
		fmt.Fprintf(w, "Report ID: %s\n", reportID)
	}
}
