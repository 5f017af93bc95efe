package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mbellido/portions/internal/domain"
)

func recipesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "recipes",
		Short: "Manage recipes in a workspace",
	}

	c.AddCommand(recipesListCmd())
	return c
}

func recipesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.recipes.ListRecipes(ws.root)
			if err != nil {
				// A missing recipes dir is reported, not fatal.
				if domain.IsKind(err, domain.KindNotFound) {
					fmt.Printf("Warning: %v\n", err)
					fmt.Println("(no recipes found)")
					return nil
				}
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no recipes found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
