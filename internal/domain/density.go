package domain

import "strings"

// DensityEntry pairs an ingredient keyword with its grams-per-cup density.
type DensityEntry struct {
	Keyword     string
	GramsPerCup float64
}

// DensityTable is an ordered keyword table. Lookup is a substring match
// against the lowercased ingredient name and the first matching entry wins,
// so order is part of the contract: "sugar" precedes "brown sugar" and a
// "brown sugar" ingredient resolves to plain sugar's density. Changing the
// order changes output.
type DensityTable []DensityEntry

// DefaultGramsPerCup is the fallback density used for display conversion
// when no keyword matches (all-purpose flour).
const DefaultGramsPerCup = 125

// DefaultDensityTable returns the built-in grams-per-cup table.
func DefaultDensityTable() DensityTable {
	return DensityTable{
		{"flour", 125},       // all-purpose
		{"sugar", 200},       // granulated
		{"brown sugar", 220}, // packed
		{"butter", 227},      // 1 cup = 2 sticks
		{"chocolate chips", 175},
		{"milk", 240},
		{"oil", 215},
		{"honey", 340},
		{"oats", 90},  // rolled
		{"rice", 200}, // uncooked white
		{"pasta", 100},
		{"cheese", 113}, // grated cheddar
		{"yogurt", 245},
		{"cream", 240},     // heavy
		{"water", 236.588}, // 1 cup = 236.588 ml
	}
}

// DensityFor returns the density of the first keyword contained in the
// ingredient name, or ok=false when nothing matches.
func (t DensityTable) DensityFor(ingredientName string) (gramsPerCup float64, ok bool) {
	name := strings.ToLower(ingredientName)
	for _, e := range t {
		if strings.Contains(name, e.Keyword) {
			return e.GramsPerCup, true
		}
	}
	return 0, false
}

// exemptKeywords marks ingredient categories that never convert to weight:
// seasonings, leavening, extracts, and aromatics are measured in volumes too
// small for a gram figure to be useful.
var exemptKeywords = []string{
	"garlic", "ginger", "onion", "pepper", "salt",
	"baking powder", "baking soda", "yeast",
	"spices", "herbs", "vanilla extract", "extract",
}

// Exempt reports whether an ingredient is excluded from automatic weight
// conversion. Matching is the same substring scan DensityFor uses.
func Exempt(ingredientName string) bool {
	name := strings.ToLower(ingredientName)
	for _, k := range exemptKeywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
