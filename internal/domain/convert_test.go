package domain

import (
	"errors"
	"math"
	"testing"
)

func TestConvert_Identity(t *testing.T) {
	got, err := Convert(1.234, UnitCup, UnitCup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.234 {
		t.Errorf("identity conversion changed the amount: %g", got)
	}
}

func TestConvert_SameFamily(t *testing.T) {
	cases := []struct {
		amount   float64
		from, to Unit
		want     float64
	}{
		{1, UnitCup, UnitTablespoon, 16},
		{1, UnitCup, UnitTeaspoon, 48},
		{3, UnitTeaspoon, UnitTablespoon, 1},
		{2, UnitCup, UnitMilliliter, 473.18},
		{1, UnitLiter, UnitMilliliter, 1000},
		{1, UnitKilogram, UnitGram, 1000},
		{1, UnitPound, UnitOunce, 16},
		{100, UnitGram, UnitOunce, 3.53},
	}
	for _, c := range cases {
		got, err := Convert(c.amount, c.from, c.to)
		if err != nil {
			t.Errorf("Convert(%g, %s, %s) unexpected error: %v", c.amount, c.from, c.to, err)
			continue
		}
		if got != c.want {
			t.Errorf("Convert(%g, %s, %s) = %g, want %g", c.amount, c.from, c.to, got, c.want)
		}
	}
}

func TestConvert_RoundTripWithinTolerance(t *testing.T) {
	volume := []Unit{UnitTeaspoon, UnitTablespoon, UnitCup, UnitPint, UnitQuart, UnitLiter, UnitMilliliter}
	weight := []Unit{UnitGram, UnitKilogram, UnitOunce, UnitPound}

	check := func(units []Unit, x float64) {
		for _, a := range units {
			for _, b := range units {
				if a == b {
					continue
				}
				there, err := Convert(x, a, b)
				if err != nil {
					t.Fatalf("Convert(%g, %s, %s): %v", x, a, b, err)
				}
				back, err := Convert(there, b, a)
				if err != nil {
					t.Fatalf("Convert(%g, %s, %s): %v", there, b, a, err)
				}
				// Each 2-decimal rounding contributes up to 0.005 error; the
				// intermediate one is amplified by the return factor.
				tol := 0.005*conversionTable[b][a] + 0.005 + 1e-9
				if diff := math.Abs(back - x); diff > tol {
					t.Errorf("round trip %s->%s->%s: %g -> %g -> %g (diff %g > tol %g)", a, b, a, x, there, back, diff, tol)
				}
			}
		}
	}

	check(volume, 4)
	check(weight, 4)
}

func TestConvert_CrossFamily(t *testing.T) {
	cases := []struct{ from, to Unit }{
		{UnitCup, UnitGram},
		{UnitGram, UnitCup},
		{UnitPiece, UnitGram},
		{UnitTeaspoon, UnitPound},
	}
	for _, c := range cases {
		_, err := Convert(1, c.from, c.to)
		if err == nil {
			t.Errorf("Convert(1, %s, %s) expected error", c.from, c.to)
			continue
		}
		if !errors.Is(err, ErrUnconvertible) {
			t.Errorf("Convert(1, %s, %s) error = %v, want ErrUnconvertible", c.from, c.to, err)
		}
		if !IsKind(err, KindUnconvertible) {
			t.Errorf("Convert(1, %s, %s) kind != unconvertible", c.from, c.to)
		}
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	if _, err := Convert(1, Unit("handful"), UnitCup); !errors.Is(err, ErrUnconvertible) {
		t.Errorf("expected ErrUnconvertible for unknown unit, got %v", err)
	}
}

func TestConversionTable_InverseConsistency(t *testing.T) {
	for from, row := range conversionTable {
		for to, factor := range row {
			inverse, ok := conversionTable[to][from]
			if !ok {
				t.Errorf("missing inverse factor for %s->%s", to, from)
				continue
			}
			if prod := factor * inverse; math.Abs(prod-1) > 1e-4 {
				t.Errorf("factor(%s,%s)*factor(%s,%s) = %g, want ~1", from, to, to, from, prod)
			}
		}
	}
}
