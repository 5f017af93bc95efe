package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/ports"
)

// ScaleRecipe loads a recipe, scales it to a target serving count, and
// optionally persists the result as an artifact.
type ScaleRecipe struct {
	source   ports.RecipeSource
	store    ports.ScaledStore // nil disables saving
	scaler   *domain.Scaler
	renderer *domain.Renderer
	now      func() time.Time
}

type ScaleOption func(*ScaleRecipe)

// WithScaler overrides the default scaler.
func WithScaler(s *domain.Scaler) ScaleOption {
	return func(uc *ScaleRecipe) {
		if s != nil {
			uc.scaler = s
		}
	}
}

// WithRenderer overrides the default renderer.
func WithRenderer(r *domain.Renderer) ScaleOption {
	return func(uc *ScaleRecipe) {
		if r != nil {
			uc.renderer = r
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) ScaleOption {
	return func(uc *ScaleRecipe) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewScaleRecipe(src ports.RecipeSource, store ports.ScaledStore, opts ...ScaleOption) *ScaleRecipe {
	uc := &ScaleRecipe{
		source:   src,
		store:    store,
		scaler:   domain.NewScaler(),
		renderer: domain.NewRenderer(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Result couples the scaled recipe with its display lines and, when an
// artifact was saved, the artifact id.
type Result struct {
	Original   domain.Recipe
	Scaled     domain.Recipe
	Lines      []string
	ArtifactID string
}

// Execute scales the recipe stored at path to newServings. Files may hold
// several recipes; recipeName selects one, and an empty name is accepted
// when the file holds exactly one.
func (uc *ScaleRecipe) Execute(ctx context.Context, path, recipeName string, newServings int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	recipes, err := uc.source.LoadRecipes(path)
	if err != nil {
		return Result{}, err
	}

	recipe, err := pickRecipe(recipes, recipeName, path)
	if err != nil {
		return Result{}, err
	}

	scaled, err := uc.scaler.Scale(recipe, newServings)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Original: recipe,
		Scaled:   scaled,
		Lines:    uc.renderer.Render(scaled),
	}

	if uc.store != nil {
		id, saveErr := uc.store.SaveScaled(domain.ScaledArtifact{
			RecipeName:   recipe.Name,
			RecipePath:   path,
			FromServings: recipe.Servings,
			ToServings:   newServings,
			ScaledAt:     uc.now().UTC(),
			Result:       scaled,
			Lines:        res.Lines,
		})
		if saveErr != nil {
			// The scale itself succeeded; return what we have with the error.
			return res, saveErr
		}
		res.ArtifactID = id
	}

	return res, nil
}

func pickRecipe(recipes []domain.Recipe, name, path string) (domain.Recipe, error) {
	if len(recipes) == 0 {
		return domain.Recipe{}, &domain.OpError{
			Op:   "scale.pick",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("no recipes in file: %w", domain.ErrNotFound),
		}
	}

	if strings.TrimSpace(name) == "" {
		if len(recipes) == 1 {
			return recipes[0], nil
		}
		return domain.Recipe{}, &domain.OpError{
			Op:   "scale.pick",
			Kind: domain.KindInvalidRecipe,
			Path: path,
			Err:  fmt.Errorf("file holds %d recipes, select one by name", len(recipes)),
		}
	}

	for _, r := range recipes {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return domain.Recipe{}, &domain.OpError{
		Op:   "scale.pick",
		Kind: domain.KindNotFound,
		Path: path,
		Err:  fmt.Errorf("recipe %q: %w", name, domain.ErrNotFound),
	}
}
