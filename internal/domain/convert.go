package domain

import (
	"fmt"
	"math"
)

// conversionTable maps (from, to) to a multiplicative factor, defined for
// every ordered pair within a family. Volume uses US customary kitchen
// definitions, weight uses grams as the base. For any pair,
// factor(a,b)*factor(b,a) ~= 1 within rounding tolerance.
var conversionTable = map[Unit]map[Unit]float64{
	UnitTablespoon: {UnitTeaspoon: 3, UnitCup: 1.0 / 16, UnitPint: 1.0 / 32, UnitQuart: 1.0 / 64, UnitLiter: 0.0147868, UnitMilliliter: 14.7868},
	UnitTeaspoon:   {UnitTablespoon: 1.0 / 3, UnitCup: 1.0 / 48, UnitPint: 1.0 / 96, UnitQuart: 1.0 / 192, UnitLiter: 0.00492892, UnitMilliliter: 4.92892},
	UnitCup:        {UnitTablespoon: 16, UnitTeaspoon: 48, UnitPint: 0.5, UnitQuart: 0.25, UnitLiter: 0.236588, UnitMilliliter: 236.588},
	UnitPint:       {UnitTablespoon: 32, UnitTeaspoon: 96, UnitCup: 2, UnitQuart: 0.5, UnitLiter: 0.473176, UnitMilliliter: 473.176},
	UnitQuart:      {UnitTablespoon: 64, UnitTeaspoon: 192, UnitCup: 4, UnitPint: 2, UnitLiter: 0.946353, UnitMilliliter: 946.353},
	UnitLiter:      {UnitTablespoon: 67.628, UnitTeaspoon: 202.884, UnitCup: 4.22675, UnitPint: 2.11338, UnitQuart: 1.05669, UnitMilliliter: 1000},
	UnitMilliliter: {UnitTablespoon: 0.067628, UnitTeaspoon: 0.202884, UnitCup: 0.00422675, UnitPint: 0.00211338, UnitQuart: 0.00105669, UnitLiter: 0.001},

	UnitGram:     {UnitKilogram: 0.001, UnitOunce: 0.035274, UnitPound: 0.00220462},
	UnitKilogram: {UnitGram: 1000, UnitOunce: 35.274, UnitPound: 2.20462},
	UnitOunce:    {UnitGram: 28.3495, UnitKilogram: 0.0283495, UnitPound: 0.0625},
	UnitPound:    {UnitGram: 453.592, UnitKilogram: 0.453592, UnitOunce: 16},
}

// Convert converts an amount between two units of the same family. Identity
// conversions return the amount unchanged; anything else is rounded to two
// decimals. Cross-family requests are rejected rather than silently scaled;
// volume only becomes weight through a density (see Normalizer).
func Convert(amount float64, from, to Unit) (float64, error) {
	if from == to {
		return amount, nil
	}

	if from.Family() == "" || to.Family() == "" || from.Family() != to.Family() {
		return 0, unconvertible(from, to)
	}

	factor, ok := conversionTable[from][to]
	if !ok {
		return 0, unconvertible(from, to)
	}
	return round2(amount * factor), nil
}

func unconvertible(from, to Unit) error {
	return &OpError{
		Op:   "convert",
		Kind: KindUnconvertible,
		Err:  fmt.Errorf("%w: %s -> %s", ErrUnconvertible, from, to),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func roundWhole(v float64) float64 { return math.Round(v) }

func roundQuarter(v float64) float64 { return math.Round(v*4) / 4 }
