package ports

import "github.com/mbellido/portions/internal/domain"

// RecipeSource loads recipes from a source (e.g., filesystem). A single file
// may hold one recipe document or a list of them.
type RecipeSource interface {
	LoadRecipes(path string) ([]domain.Recipe, error)
	ListRecipes(root string) ([]domain.RecipeRef, error)
}
