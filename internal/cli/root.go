package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mbellido/portions/internal/infra/fsworkspace"
	"github.com/mbellido/portions/internal/infra/logger"
	"github.com/mbellido/portions/internal/infra/workspacefinder"
	"github.com/mbellido/portions/internal/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "portions",
		Short:        "Portions — scale recipes to any serving count",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				OpenWorkspace:        openWorkspace,
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .portions/logs/portions.log")

	cmd.AddCommand(scaleCmd())
	cmd.AddCommand(recipesCmd())
	cmd.AddCommand(convertCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// openWorkspace adapts loadWorkspace for the TUI, which only needs the
// recipe source and scale usecase.
func openWorkspace(root string) (tui.Workspace, error) {
	ws, err := loadWorkspace(root)
	if err != nil {
		return tui.Workspace{}, err
	}
	return tui.Workspace{
		Root:   ws.root,
		Source: ws.recipes,
		Scale:  ws.newScaleUsecase(false),
	}, nil
}
