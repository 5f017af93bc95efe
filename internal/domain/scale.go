package domain

import "fmt"

// Scaler scales recipes to a target serving count.
type Scaler struct {
	normalizer *Normalizer
}

type ScalerOption func(*Scaler)

// WithNormalizer overrides the default amount normalizer.
func WithNormalizer(n *Normalizer) ScalerOption {
	return func(s *Scaler) {
		if n != nil {
			s.normalizer = n
		}
	}
}

func NewScaler(opts ...ScalerOption) *Scaler {
	s := &Scaler{normalizer: NewNormalizer()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scale returns a new recipe with servings set to newServings and every
// ingredient amount multiplied by newServings/recipe.Servings, then passed
// through the normalizer for unit and rounding decisions. The input recipe
// is never mutated; invalid input aborts with no partial result.
func (s *Scaler) Scale(recipe Recipe, newServings int) (Recipe, error) {
	if newServings <= 0 {
		return Recipe{}, &OpError{
			Op:   "scale",
			Kind: KindInvalidRecipe,
			Err:  fmt.Errorf("%w: target servings must be positive, got %d", ErrInvalidRecipe, newServings),
		}
	}
	if err := recipe.Validate(); err != nil {
		return Recipe{}, err
	}

	factor := float64(newServings) / float64(recipe.Servings)

	out := Recipe{
		Name:        recipe.Name,
		Servings:    newServings,
		Ingredients: make([]Ingredient, 0, len(recipe.Ingredients)),
	}
	for _, ing := range recipe.Ingredients {
		amount, unit := s.normalizer.Normalize(ing.Amount*factor, ing.Unit, ing.Name)
		out.Ingredients = append(out.Ingredients, Ingredient{
			Name:   ing.Name,
			Amount: amount,
			Unit:   unit,
		})
	}
	return out, nil
}
