package domain

import (
	"fmt"
	"math"
	"strings"
)

// Renderer turns a scaled recipe into display lines.
type Renderer struct {
	densities DensityTable
}

type RendererOption func(*Renderer)

// WithDisplayDensities overrides the density table used for the cup->grams
// display conversion.
func WithDisplayDensities(t DensityTable) RendererOption {
	return func(r *Renderer) {
		if t != nil {
			r.densities = t
		}
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{densities: DefaultDensityTable()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces a header line, a separator, and one line per ingredient.
//
// Cup amounts are shown in grams regardless of density match (flour's
// density is the fallback). This is display-only: the ingredient keeps its
// cup unit in the data model.
func (r *Renderer) Render(recipe Recipe) []string {
	lines := make([]string, 0, len(recipe.Ingredients)+2)
	lines = append(lines, fmt.Sprintf("%s (Serves %d)", recipe.Name, recipe.Servings))
	lines = append(lines, strings.Repeat("-", 40))

	for _, ing := range recipe.Ingredients {
		lines = append(lines, r.renderIngredient(ing))
	}
	return lines
}

func (r *Renderer) renderIngredient(ing Ingredient) string {
	switch ing.Unit {
	case UnitPiece:
		if ing.Amount < 1 {
			if frac, ok := QuarterFraction(ing.Amount); ok {
				return fmt.Sprintf("- %s %s", frac, ing.Name)
			}
		}
		return fmt.Sprintf("- %s %s", FormatAmount(ing.Amount), ing.Name)

	case UnitCup:
		return fmt.Sprintf("- %dg %s", r.cupsToGrams(ing.Name, ing.Amount), ing.Name)

	case UnitTablespoon:
		if ing.Amount < 0.5 {
			return fmt.Sprintf("- %s tsp %s", FormatAmount(round1(ing.Amount*3)), ing.Name)
		}
		return fmt.Sprintf("- %s %s %s", FormatAmount(ing.Amount), ing.Unit, ing.Name)

	case UnitTeaspoon:
		if ing.Amount < 1 {
			if frac, ok := QuarterFraction(ing.Amount); ok {
				return fmt.Sprintf("- %s tsp %s", frac, ing.Name)
			}
		}
		return fmt.Sprintf("- %s %s %s", FormatAmount(ing.Amount), ing.Unit, ing.Name)

	default:
		return fmt.Sprintf("- %s %s %s", FormatAmount(ing.Amount), ing.Unit, ing.Name)
	}
}

// cupsToGrams converts a cup amount for display using the first density
// match, defaulting to flour.
func (r *Renderer) cupsToGrams(ingredientName string, cups float64) int {
	gramsPerCup, ok := r.densities.DensityFor(ingredientName)
	if !ok {
		gramsPerCup = DefaultGramsPerCup
	}
	return int(math.Round(cups * gramsPerCup))
}
