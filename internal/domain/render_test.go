package domain

import (
	"strings"
	"testing"
)

func TestRender_HeaderAndSeparator(t *testing.T) {
	r := NewRenderer()

	lines := r.Render(Recipe{
		Name:     "Pancakes",
		Servings: 4,
		Ingredients: []Ingredient{
			{Name: "milk", Amount: 240, Unit: UnitMilliliter},
		},
	})

	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "Pancakes (Serves 4)" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", 40) {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "- 240 ml milk" {
		t.Errorf("ingredient line = %q", lines[2])
	}
}

func TestRender_PieceLines(t *testing.T) {
	r := NewRenderer()

	cases := []struct {
		amount float64
		want   string
	}{
		{1, "- 1 eggs"},
		{2.5, "- 2.5 eggs"},
		{0.5, "- 1/2 eggs"},
		{0.75, "- 3/4 eggs"},
	}
	for _, c := range cases {
		got := r.renderIngredient(Ingredient{Name: "eggs", Amount: c.amount, Unit: UnitPiece})
		if got != c.want {
			t.Errorf("piece %g = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestRender_CupShownAsGrams(t *testing.T) {
	r := NewRenderer()

	got := r.renderIngredient(Ingredient{Name: "sugar", Amount: 1, Unit: UnitCup})
	if got != "- 200g sugar" {
		t.Errorf("line = %q, want %q", got, "- 200g sugar")
	}

	// No density match falls back to flour's density.
	got = r.renderIngredient(Ingredient{Name: "chopped kale", Amount: 2, Unit: UnitCup})
	if got != "- 250g chopped kale" {
		t.Errorf("line = %q, want %q", got, "- 250g chopped kale")
	}
}

func TestRender_SpoonLines(t *testing.T) {
	r := NewRenderer()

	cases := []struct {
		ing  Ingredient
		want string
	}{
		{Ingredient{Name: "salt", Amount: 0.25, Unit: UnitTeaspoon}, "- 1/4 tsp salt"},
		{Ingredient{Name: "salt", Amount: 0.3, Unit: UnitTeaspoon}, "- 1/4 tsp salt"},
		{Ingredient{Name: "oil", Amount: 2, Unit: UnitTablespoon}, "- 2 tbsp oil"},
		{Ingredient{Name: "oil", Amount: 0.4, Unit: UnitTablespoon}, "- 1.2 tsp oil"},
		{Ingredient{Name: "vanilla extract", Amount: 1.5, Unit: UnitTeaspoon}, "- 1.5 tsp vanilla extract"},
	}
	for _, c := range cases {
		got := r.renderIngredient(c.ing)
		if got != c.want {
			t.Errorf("%+v = %q, want %q", c.ing, got, c.want)
		}
	}
}

func TestRender_CookiesScenario(t *testing.T) {
	scaled, err := NewScaler().Scale(Recipe{
		Name:     "Cookies",
		Servings: 12,
		Ingredients: []Ingredient{
			{Name: "flour", Amount: 2, Unit: UnitCup},
			{Name: "salt", Amount: 0.5, Unit: UnitTeaspoon},
			{Name: "eggs", Amount: 2, Unit: UnitPiece},
		},
	}, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := NewRenderer().Render(scaled)

	want := []string{
		"Cookies (Serves 6)",
		strings.Repeat("-", 40),
		"- 125 g flour",
		"- 1/4 tsp salt",
		"- 1 eggs",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_CustomDensities(t *testing.T) {
	r := NewRenderer(WithDisplayDensities(DensityTable{{"kale", 20}}))

	got := r.renderIngredient(Ingredient{Name: "chopped kale", Amount: 2, Unit: UnitCup})
	if got != "- 40g chopped kale" {
		t.Errorf("line = %q, want %q", got, "- 40g chopped kale")
	}
}
