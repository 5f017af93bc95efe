package domain

import (
	"fmt"
	"strings"
)

// Unit is a measurement unit from the fixed set Portions understands.
type Unit string

const (
	UnitPiece Unit = "piece"

	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
	UnitPint       Unit = "pint"
	UnitQuart      Unit = "quart"
	UnitLiter      Unit = "liter"
	UnitMilliliter Unit = "ml"

	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lb"
)

// UnitFamily groups units that convert among each other. Volume and weight
// only meet through an ingredient density.
type UnitFamily string

const (
	FamilyCount  UnitFamily = "count"
	FamilyVolume UnitFamily = "volume"
	FamilyWeight UnitFamily = "weight"
)

// Family returns the family a unit belongs to, or "" for an unknown unit.
// Every valid unit belongs to exactly one family.
func (u Unit) Family() UnitFamily {
	switch u {
	case UnitPiece:
		return FamilyCount
	case UnitTeaspoon, UnitTablespoon, UnitCup, UnitPint, UnitQuart, UnitLiter, UnitMilliliter:
		return FamilyVolume
	case UnitGram, UnitKilogram, UnitOunce, UnitPound:
		return FamilyWeight
	default:
		return ""
	}
}

// ParseUnit parses a unit name case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if u.Family() == "" {
		return "", fmt.Errorf("unsupported unit %q", s)
	}
	return u, nil
}
