package recipefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/ports"
)

// Loader reads recipe files from a workspace. JSON and YAML are both
// accepted; a file holds either a single recipe document or a list.
type Loader struct {
	recipesDir string
}

type Option func(*Loader)

func WithRecipesDir(dir string) Option {
	return func(l *Loader) { l.recipesDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{recipesDir: "recipes"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.RecipeSource = (*Loader)(nil)

func (l *Loader) LoadRecipes(path string) ([]domain.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recipefile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	docs, err := decode(b, path)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(docs))
	for i, d := range docs {
		r, err := mapAndValidate(path, i, d)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (l *Loader) ListRecipes(root string) ([]domain.RecipeRef, error) {
	dir := filepath.Join(root, l.recipesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recipefile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.RecipeRef
	for _, e := range entries {
		if e.IsDir() || !hasRecipeExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		names := readRecipeNames(p)
		if len(names) == 0 {
			names = []string{strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))}
		}
		for _, n := range names {
			refs = append(refs, domain.RecipeRef{Name: n, Path: p})
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasRecipeExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// readRecipeNames extracts the recipe names from a file, tolerating files
// that fail validation: listing should still show them by name (or filename).
func readRecipeNames(path string) []string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	docs, err := decode(b, path)
	if err != nil {
		return nil
	}

	var names []string
	for _, d := range docs {
		if strings.TrimSpace(d.Name) != "" {
			names = append(names, d.Name)
		}
	}
	return names
}

type recipeDoc struct {
	Name        string          `json:"name" yaml:"name"`
	Servings    int             `json:"servings" yaml:"servings"`
	Ingredients []ingredientDoc `json:"ingredients" yaml:"ingredients"`
}

type ingredientDoc struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

func decode(b []byte, path string) ([]recipeDoc, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return decodeJSON(b, path)
	}
	return decodeYAML(b, path)
}

func decodeJSON(b []byte, path string) ([]recipeDoc, error) {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []recipeDoc
		if err := json.Unmarshal(b, &docs); err != nil {
			return nil, malformed(path, err)
		}
		return docs, nil
	}

	var doc recipeDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, malformed(path, err)
	}
	return []recipeDoc{doc}, nil
}

func decodeYAML(b []byte, path string) ([]recipeDoc, error) {
	var docs []recipeDoc
	if err := yaml.Unmarshal(b, &docs); err == nil {
		return docs, nil
	}

	var doc recipeDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, malformed(path, err)
	}
	return []recipeDoc{doc}, nil
}

func mapAndValidate(path string, index int, d recipeDoc) (domain.Recipe, error) {
	prefix := fmt.Sprintf("recipes[%d]", index)

	if strings.TrimSpace(d.Name) == "" {
		return domain.Recipe{}, invalidField(path, prefix+".name", "recipe name is required")
	}
	if d.Servings <= 0 {
		return domain.Recipe{}, invalidField(path, prefix+".servings", fmt.Sprintf("servings must be positive, got %d", d.Servings))
	}
	if len(d.Ingredients) == 0 {
		return domain.Recipe{}, invalidField(path, prefix+".ingredients", "at least one ingredient is required")
	}

	r := domain.Recipe{
		Name:        d.Name,
		Servings:    d.Servings,
		Ingredients: make([]domain.Ingredient, 0, len(d.Ingredients)),
	}

	for i, ing := range d.Ingredients {
		fieldPrefix := fmt.Sprintf("%s.ingredients[%d]", prefix, i)

		if strings.TrimSpace(ing.Name) == "" {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".name", "ingredient name is required")
		}
		if ing.Amount < 0 {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".amount", fmt.Sprintf("amount must not be negative, got %g", ing.Amount))
		}
		unit, err := domain.ParseUnit(ing.Unit)
		if err != nil {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".unit", err.Error())
		}

		r.Ingredients = append(r.Ingredients, domain.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   unit,
		})
	}
	return r, nil
}

func malformed(path string, err error) error {
	return &domain.OpError{
		Op:   "recipefile.load",
		Kind: domain.KindInvalidRecipe,
		Path: path,
		Err:  err,
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "recipefile.validate",
		Kind: domain.KindInvalidRecipe,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
