package domain

import "testing"

func TestParseUnit(t *testing.T) {
	cases := []struct {
		input string
		want  Unit
	}{
		{"cup", UnitCup},
		{"CUP", UnitCup},
		{" Tbsp ", UnitTablespoon},
		{"tsp", UnitTeaspoon},
		{"ml", UnitMilliliter},
		{"G", UnitGram},
		{"piece", UnitPiece},
	}
	for _, c := range cases {
		got, err := ParseUnit(c.input)
		if err != nil {
			t.Errorf("ParseUnit(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	for _, in := range []string{"", "handful", "fl-oz", "stone"} {
		if _, err := ParseUnit(in); err == nil {
			t.Errorf("ParseUnit(%q) expected error", in)
		}
	}
}

func TestFamily_EveryUnitHasExactlyOne(t *testing.T) {
	families := map[Unit]UnitFamily{
		UnitPiece:      FamilyCount,
		UnitTeaspoon:   FamilyVolume,
		UnitTablespoon: FamilyVolume,
		UnitCup:        FamilyVolume,
		UnitPint:       FamilyVolume,
		UnitQuart:      FamilyVolume,
		UnitLiter:      FamilyVolume,
		UnitMilliliter: FamilyVolume,
		UnitGram:       FamilyWeight,
		UnitKilogram:   FamilyWeight,
		UnitOunce:      FamilyWeight,
		UnitPound:      FamilyWeight,
	}
	for u, want := range families {
		if got := u.Family(); got != want {
			t.Errorf("%s.Family() = %q, want %q", u, got, want)
		}
	}

	if got := Unit("handful").Family(); got != "" {
		t.Errorf("unknown unit family = %q, want empty", got)
	}
}
