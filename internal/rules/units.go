package rules

import (
	"maps"
	"slices"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var numberWithUnitsRules = map[string]ruleBuilder{
	"IsEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNumberWithUnits, "f", numberWithUnitsEqual)
	},
	"IsEquivalentTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNumberWithUnits, "f", numberWithUnitsEquivalent)
	},
}

// numberWithUnitsEqual requires the same representation: kind, magnitude
// and unit list in the same order.
func numberWithUnitsEqual(a, f answer.NumberWithUnits) bool {
	if a.Kind != f.Kind {
		return false
	}
	switch a.Kind {
	case answer.NumberKindFraction:
		if a.Fraction != f.Fraction {
			return false
		}
	default:
		if a.Real != f.Real {
			return false
		}
	}
	return slices.Equal(a.Units, f.Units)
}

// numberWithUnitsEquivalent accepts "1/2 m" for "0.5 m" and units listed in
// any order. A fraction with a zero denominator is never equivalent.
func numberWithUnitsEquivalent(a, f answer.NumberWithUnits) bool {
	if !hasMagnitude(a) || !hasMagnitude(f) {
		return false
	}
	return approximatelyEqual(a.Float64(), f.Float64()) &&
		maps.Equal(a.UnitExponents(), f.UnitExponents())
}

func hasMagnitude(n answer.NumberWithUnits) bool {
	return n.Kind != answer.NumberKindFraction || n.Fraction.Rat() != nil
}
