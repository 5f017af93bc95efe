package domain

// Milliliters per US customary volume unit, used when bridging volume to
// weight through a density.
const (
	mlPerCup  = 236.588
	mlPerTbsp = 14.7868
	mlPerTsp  = 4.92892
)

// Normalizer picks the unit a cook would actually measure with and rounds
// the amount for display. The density table is injected once and treated as
// read-only shared data.
type Normalizer struct {
	densities DensityTable
}

type NormalizerOption func(*Normalizer)

// WithDensityTable overrides the built-in density table.
func WithDensityTable(t DensityTable) NormalizerOption {
	return func(n *Normalizer) {
		if t != nil {
			n.densities = t
		}
	}
}

func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{densities: DefaultDensityTable()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize applies the unit policy to a scaled amount, in precedence order:
//
//  1. zero amounts stay as-is, no conversion attempted
//  2. pieces round to the nearest quarter
//  3. exempt ingredients keep their unit, family rounding only
//  4. volume amounts with a density match become grams when at least 1 g
//  5. small cup/tbsp amounts downshift (cup -> tbsp -> tsp)
//  6. remaining amounts round per family (cup 2dp, g/ml whole, else 1dp)
func (n *Normalizer) Normalize(amount float64, unit Unit, ingredientName string) (float64, Unit) {
	if amount == 0 {
		return 0, unit
	}

	if unit == UnitPiece {
		return roundQuarter(amount), unit
	}

	if Exempt(ingredientName) {
		return roundFamily(amount, unit), unit
	}

	if unit.Family() == FamilyVolume {
		if gramsPerCup, ok := n.densities.DensityFor(ingredientName); ok {
			grams := round1(toMilliliters(amount, unit) * gramsPerCup / mlPerCup)
			if grams >= 1 {
				return roundWhole(grams), UnitGram
			}
		}
	}

	if amt, u, ok := downshift(amount, unit); ok {
		return amt, u
	}

	return roundFamily(amount, unit), unit
}

// toMilliliters converts a volume amount to milliliters.
func toMilliliters(amount float64, unit Unit) float64 {
	switch unit {
	case UnitCup:
		return amount * mlPerCup
	case UnitTablespoon:
		return amount * mlPerTbsp
	case UnitTeaspoon:
		return amount * mlPerTsp
	case UnitPint:
		return amount * 473.176
	case UnitQuart:
		return amount * 946.353
	case UnitLiter:
		return amount * 1000
	default:
		return amount
	}
}

// downshift converts awkwardly small cup/tbsp amounts into the next smaller
// spoon unit. ok is false when no conversion applied.
func downshift(amount float64, unit Unit) (float64, Unit, bool) {
	switch {
	case unit == UnitCup && amount < 0.25:
		tbsp := amount * 16
		if tbsp < 1 {
			return round1(tbsp * 3), UnitTeaspoon, true
		}
		return round1(tbsp), UnitTablespoon, true

	case unit == UnitTablespoon && amount < 0.5:
		return round1(amount * 3), UnitTeaspoon, true
	}
	return 0, "", false
}

// roundFamily applies display rounding: cups to two decimals, metric g/ml to
// whole numbers, everything else to one decimal.
func roundFamily(amount float64, unit Unit) float64 {
	switch unit {
	case UnitCup:
		return round2(amount)
	case UnitGram, UnitMilliliter:
		return roundWhole(amount)
	default:
		return round1(amount)
	}
}
