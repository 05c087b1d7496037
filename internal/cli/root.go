package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soro/internal/infra/configfinder"
	"github.com/aalvaropc/soro/internal/infra/fsworkspace"
	"github.com/aalvaropc/soro/internal/infra/linefile"
	"github.com/aalvaropc/soro/internal/infra/logger"
	"github.com/aalvaropc/soro/internal/infra/reportstore"
	"github.com/aalvaropc/soro/internal/ui/tui"
)

type rootOptions struct {
	debug bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "soro",
		Short:        "Sort the lines of a text file, from a TUI or the command line",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			st, err := loadSettings(wd)
			if err != nil {
				return err
			}

			cleanup := setupLogging(st, opts.debug)
			defer cleanup()

			store := linefile.NewStore()
			deps := tui.Deps{
				WorkspaceLocator:     configfinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Reader:               store,
				Writer:               store,
				Config:               st.cfg,
				Logger:               logger.For("tui"),
				Debug:                opts.debug,
			}

			if st.cfg.Reports.Enabled {
				deps.Reports = reportstore.NewJSONStore(st.root, st.cfg)
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .soro/logs/soro.log")

	cmd.AddCommand(
		sortCmd(opts),
		algorithmsCmd(),
		historyCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func setupLogging(st settings, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{
		Root:  st.root,
		Dir:   st.cfg.Logs.Dir,
		Debug: debug,
	})
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}
