package domain

import "testing"

func TestDensityFor_SubstringMatch(t *testing.T) {
	table := DefaultDensityTable()

	cases := []struct {
		name string
		want float64
	}{
		{"flour", 125},
		{"all-purpose flour", 125},
		{"Whole Wheat FLOUR", 125},
		{"honey", 340},
		{"rolled oats", 90},
		{"grated cheese", 113},
	}
	for _, c := range cases {
		got, ok := table.DensityFor(c.name)
		if !ok {
			t.Errorf("DensityFor(%q) no match", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("DensityFor(%q) = %g, want %g", c.name, got, c.want)
		}
	}
}

// First match in table order wins: "sugar" precedes "brown sugar", so a
// brown sugar ingredient resolves to plain sugar's density. That ordering is
// part of the contract; changing it changes output.
func TestDensityFor_FirstMatchWins(t *testing.T) {
	table := DefaultDensityTable()

	got, ok := table.DensityFor("brown sugar")
	if !ok {
		t.Fatal("expected a match for brown sugar")
	}
	if got != 200 {
		t.Errorf("DensityFor(brown sugar) = %g, want 200 (sugar entry)", got)
	}
}

func TestDensityFor_NoMatch(t *testing.T) {
	table := DefaultDensityTable()
	if _, ok := table.DensityFor("kale"); ok {
		t.Error("expected no match for kale")
	}
}

func TestExempt(t *testing.T) {
	exempt := []string{
		"salt", "sea salt", "black pepper", "garlic", "minced garlic",
		"baking soda", "baking powder", "vanilla extract", "almond extract",
		"dried herbs", "yeast", "onion", "ginger",
	}
	for _, name := range exempt {
		if !Exempt(name) {
			t.Errorf("Exempt(%q) = false, want true", name)
		}
	}

	notExempt := []string{"flour", "sugar", "milk", "eggs", "chocolate chips"}
	for _, name := range notExempt {
		if Exempt(name) {
			t.Errorf("Exempt(%q) = true, want false", name)
		}
	}
}
