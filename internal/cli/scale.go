package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbellido/portions/internal/usecase"
)

func scaleCmd() *cobra.Command {
	var workspace string
	var recipe string
	var name string
	var servings int
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "scale",
		Short: "Scale a recipe to a target serving count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if servings <= 0 {
				return fmt.Errorf("servings must be a positive integer, got %d", servings)
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveRecipePath(ws, recipe)
			if err != nil {
				return err
			}

			uc := ws.newScaleUsecase(noSave)

			res, err := uc.Execute(cmd.Context(), path, name, servings)
			if err != nil {
				return err
			}

			return printScaled(os.Stdout, res, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&recipe, "recipe", "r", "", "Recipe name, filename, or path (required unless configured)")
	c.Flags().StringVar(&name, "name", "", "Recipe name inside a multi-recipe file (optional)")
	c.Flags().IntVarP(&servings, "servings", "s", 0, "Target serving count (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a scaled artifact under scaled/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("servings")
	return c
}

func printScaled(w io.Writer, res usecase.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"artifact_id": res.ArtifactID,
			"recipe":      res.Scaled,
			"lines":       res.Lines,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyScaled(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyScaled(w io.Writer, res usecase.Result) {
	fmt.Fprintf(w, "Scaled %q from %d to %d servings\n\n",
		res.Original.Name, res.Original.Servings, res.Scaled.Servings)

	fmt.Fprintln(w, strings.Join(res.Lines, "\n"))

	if res.ArtifactID != "" {
		fmt.Fprintf(w, "\nSaved as: %s\n", res.ArtifactID)
	}
}
