package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soro/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := buildinfo.Get()
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case "pretty", "":
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
