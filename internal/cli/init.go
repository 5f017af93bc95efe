package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize a Portions workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			ini := fsworkspace.NewInitializer()
			if err := ini.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
				return err
			}

			fmt.Printf("Workspace initialized at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Workspace root to initialize (defaults to CWD)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
