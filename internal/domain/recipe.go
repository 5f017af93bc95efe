package domain

import (
	"fmt"
	"strings"
	"time"
)

// Ingredient is a single recipe line: a named amount in one unit.
// Scaling never mutates an Ingredient; it produces a new one.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
}

// Recipe groups ingredients with the serving count they produce.
type Recipe struct {
	Name        string       `json:"name"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeRef is a lightweight reference to a recipe in a file on disk.
type RecipeRef struct {
	Name string
	Path string
}

// ScaledArtifact is what gets persisted after a scale: where the recipe came
// from, the serving counts involved, and the scaled result with its display
// lines.
type ScaledArtifact struct {
	RecipeName   string    `json:"recipe_name"`
	RecipePath   string    `json:"recipe_path"`
	FromServings int       `json:"from_servings"`
	ToServings   int       `json:"to_servings"`
	ScaledAt     time.Time `json:"scaled_at"`
	Result       Recipe    `json:"result"`
	Lines        []string  `json:"lines"`
}

// Validate checks the invariants scaling relies on: a name, a positive
// serving count, and at least one well-formed ingredient.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalidRecipe("recipe name is required")
	}
	if r.Servings <= 0 {
		return invalidRecipe(fmt.Sprintf("servings must be positive, got %d", r.Servings))
	}
	if len(r.Ingredients) == 0 {
		return invalidRecipe("at least one ingredient is required")
	}

	for i, ing := range r.Ingredients {
		prefix := fmt.Sprintf("ingredients[%d]", i)
		if strings.TrimSpace(ing.Name) == "" {
			return invalidRecipe(prefix + ".name is required")
		}
		if ing.Amount < 0 {
			return invalidRecipe(fmt.Sprintf("%s.amount must not be negative, got %g", prefix, ing.Amount))
		}
		if ing.Unit.Family() == "" {
			return invalidRecipe(fmt.Sprintf("%s.unit %q is not supported", prefix, ing.Unit))
		}
	}
	return nil
}

func invalidRecipe(msg string) error {
	return &OpError{
		Op:   "recipe.validate",
		Kind: KindInvalidRecipe,
		Err:  fmt.Errorf("%w: %s", ErrInvalidRecipe, msg),
	}
}
