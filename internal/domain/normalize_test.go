package domain

import "testing"

func TestNormalize_ZeroAmount(t *testing.T) {
	n := NewNormalizer()

	amount, unit := n.Normalize(0, UnitCup, "flour")
	if amount != 0 || unit != UnitCup {
		t.Errorf("Normalize(0, cup) = (%g, %s), want (0, cup)", amount, unit)
	}
}

func TestNormalize_PieceRoundsToQuarter(t *testing.T) {
	n := NewNormalizer()

	cases := []struct {
		in   float64
		want float64
	}{
		{1.6, 1.5}, // round(6.4)/4
		{0.3, 0.25},
		{2.9, 3},
		{1, 1},
	}
	for _, c := range cases {
		amount, unit := n.Normalize(c.in, UnitPiece, "eggs")
		if unit != UnitPiece {
			t.Errorf("Normalize(%g, piece) changed unit to %s", c.in, unit)
		}
		if amount != c.want {
			t.Errorf("Normalize(%g, piece) = %g, want %g", c.in, amount, c.want)
		}
	}
}

func TestNormalize_ExemptKeepsUnit(t *testing.T) {
	n := NewNormalizer()

	// All of these would density-match (or could) but must keep their
	// volume unit.
	cases := []struct {
		name string
		in   float64
		unit Unit
	}{
		{"salt", 0.5, UnitTeaspoon},
		{"vanilla extract", 2, UnitTeaspoon},
		{"garlic", 1, UnitTablespoon},
		{"onion powder", 0.1, UnitCup},
	}
	for _, c := range cases {
		_, unit := n.Normalize(c.in, c.unit, c.name)
		if unit != c.unit {
			t.Errorf("Normalize(%g, %s, %q) switched unit to %s", c.in, c.unit, c.name, unit)
		}
	}
}

func TestNormalize_DensityMatchConvertsToGrams(t *testing.T) {
	n := NewNormalizer()

	amount, unit := n.Normalize(1, UnitCup, "flour")
	if unit != UnitGram {
		t.Fatalf("expected grams, got %s", unit)
	}
	if amount != 125 {
		t.Errorf("1 cup flour = %g g, want 125", amount)
	}

	amount, unit = n.Normalize(2, UnitCup, "sugar")
	if unit != UnitGram || amount != 400 {
		t.Errorf("2 cup sugar = (%g, %s), want (400, g)", amount, unit)
	}
}

func TestNormalize_DensityFloor(t *testing.T) {
	n := NewNormalizer()

	// 0.1 tsp water is ~0.5 g: below the 1 g floor, so the amount stays in
	// its volume unit.
	amount, unit := n.Normalize(0.1, UnitTeaspoon, "water")
	if unit != UnitTeaspoon {
		t.Fatalf("expected tsp, got %s", unit)
	}
	if amount != 0.1 {
		t.Errorf("amount = %g, want 0.1", amount)
	}
}

func TestNormalize_CupDownshiftToTablespoons(t *testing.T) {
	n := NewNormalizer()

	// No density match, amount below the 0.25 cup threshold.
	amount, unit := n.Normalize(0.2, UnitCup, "chopped kale")
	if unit != UnitTablespoon {
		t.Fatalf("expected tbsp, got %s", unit)
	}
	if amount != 3.2 {
		t.Errorf("0.2 cup = %g tbsp, want 3.2", amount)
	}
}

func TestNormalize_CupDownshiftToTeaspoons(t *testing.T) {
	n := NewNormalizer()

	// 0.05 cup = 0.8 tbsp, still below 1, so it lands in teaspoons.
	amount, unit := n.Normalize(0.05, UnitCup, "chopped kale")
	if unit != UnitTeaspoon {
		t.Fatalf("expected tsp, got %s", unit)
	}
	if amount != 2.4 {
		t.Errorf("0.05 cup = %g tsp, want 2.4", amount)
	}
}

func TestNormalize_TablespoonDownshift(t *testing.T) {
	n := NewNormalizer()

	amount, unit := n.Normalize(0.4, UnitTablespoon, "chopped kale")
	if unit != UnitTeaspoon {
		t.Fatalf("expected tsp, got %s", unit)
	}
	if amount != 1.2 {
		t.Errorf("0.4 tbsp = %g tsp, want 1.2", amount)
	}

	// At or above the threshold the unit is kept.
	amount, unit = n.Normalize(0.5, UnitTablespoon, "chopped kale")
	if unit != UnitTablespoon || amount != 0.5 {
		t.Errorf("0.5 tbsp = (%g, %s), want (0.5, tbsp)", amount, unit)
	}
}

func TestNormalize_FamilyRounding(t *testing.T) {
	n := NewNormalizer()

	// Cups round to two decimals.
	amount, unit := n.Normalize(1.333333, UnitCup, "chopped kale")
	if unit != UnitCup || amount != 1.33 {
		t.Errorf("cup rounding = (%g, %s), want (1.33, cup)", amount, unit)
	}

	// Metric rounds to whole numbers.
	amount, unit = n.Normalize(103.6, UnitGram, "beef")
	if unit != UnitGram || amount != 104 {
		t.Errorf("gram rounding = (%g, %s), want (104, g)", amount, unit)
	}

	amount, unit = n.Normalize(37.46, UnitMilliliter, "broth")
	if unit != UnitMilliliter || amount != 37 {
		t.Errorf("ml rounding = (%g, %s), want (37, ml)", amount, unit)
	}

	// Other units round to one decimal.
	amount, unit = n.Normalize(2.345, UnitOunce, "beef")
	if unit != UnitOunce || amount != 2.3 {
		t.Errorf("oz rounding = (%g, %s), want (2.3, oz)", amount, unit)
	}
}

func TestNormalize_CustomDensityTable(t *testing.T) {
	n := NewNormalizer(WithDensityTable(DensityTable{{"dust", 473.176}}))

	// 1 cup at 473.176 g/cup is exactly 473.176 g, rounded whole.
	amount, unit := n.Normalize(1, UnitCup, "pixie dust")
	if unit != UnitGram || amount != 473 {
		t.Errorf("custom density = (%g, %s), want (473, g)", amount, unit)
	}
}
