package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/infra/recipefile"
	"github.com/mbellido/portions/internal/infra/scaledstore"
	"github.com/mbellido/portions/internal/infra/workspacefinder"
	"github.com/mbellido/portions/internal/ports"
	"github.com/mbellido/portions/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	recipes ports.RecipeSource
	store   ports.ScaledStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	source := recipefile.NewLoader(
		recipefile.WithRecipesDir(cfg.Paths.RecipesDir),
	)

	store := scaledstore.NewJSONStore(root, cfg)

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		recipes: source,
		store:   store,
	}, nil
}

// newScaleUsecase wires the scale usecase with or without artifact saving.
func (ws *workspaceCtx) newScaleUsecase(noSave bool) *usecase.ScaleRecipe {
	store := ws.store
	if noSave || !ws.cfg.Artifacts.Save {
		store = nil
	}
	return usecase.NewScaleRecipe(ws.recipes, store)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `portions init`): %w", wd, err)
	}
	return root, nil
}

// resolveRecipePath turns a --recipe argument into a file path. The argument
// may be a path, a filename under the recipes dir, or a recipe name.
func resolveRecipePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Recipe
	}
	if in == "" {
		return "", fmt.Errorf("recipe is required (use --recipe or -r)")
	}

	// If arg looks like a path (contains separators), resolve relative to
	// workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	recipesDir := filepath.Join(ws.root, ws.cfg.Paths.RecipesDir)

	// If user provided "cookies.yaml", treat it as a file under recipes dir.
	if hasRecipeExt(in) {
		p := filepath.Join(recipesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// If user provided "cookies", try the known extensions.
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(recipesDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by recipe "name" field.
	refs, err := ws.recipes.ListRecipes(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("recipe %q not found in %q", in, recipesDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasRecipeExt(s string) bool {
	switch strings.ToLower(filepath.Ext(s)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
