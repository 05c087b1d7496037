package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/usecase"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List sorting algorithms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := domain.DefaultConfig().Defaults.Algorithm
			if wd, err := os.Getwd(); err == nil {
				if st, err := loadSettings(wd); err == nil {
					def = st.cfg.Defaults.Algorithm
				}
			}
			selected := domain.Select(usecase.NormalizeSelector(def))

			w := cmd.OutOrStdout()
			for _, a := range domain.Algorithms() {
				mark := " "
				if a == selected {
					mark = "*"
				}
				stable := "unstable"
				if a.Stable() {
					stable = "stable"
				}
				fmt.Fprintf(w, "%s %-15s (%s)\n", mark, a.String(), stable)
			}
			return nil
		},
	}
}
