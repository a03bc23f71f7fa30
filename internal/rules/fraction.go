package rules

import (
	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var fractionRules = map[string]ruleBuilder{
	"IsExactlyEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", func(a, f answer.Fraction) bool {
			return a == f
		})
	},
	"IsEquivalentTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", fractionsEquivalent)
	},
	"IsEquivalentToAndInSimplestForm": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", func(a, f answer.Fraction) bool {
			return fractionsEquivalent(a, f) && a == a.SimplestForm()
		})
	},
	"IsLessThan": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", func(a, f answer.Fraction) bool {
			return compareFractions(a, f) < 0
		})
	},
	"IsGreaterThan": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", func(a, f answer.Fraction) bool {
			return compareFractions(a, f) > 0
		})
	},
	"HasNumeratorEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeSingleInput(answer.TagFraction, answer.TagSignedInt, "x",
			func(a answer.Fraction, x int64) bool { return int64(a.Numerator) == x })
	},
	"HasDenominatorEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeSingleInput(answer.TagFraction, answer.TagNonNegativeInt, "x",
			func(a answer.Fraction, x uint64) bool { return uint64(a.Denominator) == x })
	},
	"HasIntegerPartEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeSingleInput(answer.TagFraction, answer.TagSignedInt, "x",
			func(a answer.Fraction, x int64) bool { return signedWholeNumber(a) == x })
	},
	"HasNoFractionalPart": func() (classifier.RuleClassifier, error) {
		return classifier.NewNoInput(answer.TagFraction, func(a answer.Fraction) bool {
			return a.Numerator == 0
		})
	},
	"HasFractionalPartExactlyEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagFraction, "f", func(a, f answer.Fraction) bool {
			return a.Numerator == f.Numerator && a.Denominator == f.Denominator
		})
	},
}

// fractionsEquivalent compares exact rational values. Fractions with a
// zero denominator are never equivalent to anything.
func fractionsEquivalent(a, b answer.Fraction) bool {
	ra, rb := a.Rat(), b.Rat()
	if ra == nil || rb == nil {
		return false
	}
	return ra.Cmp(rb) == 0
}

// compareFractions orders by value; zero-denominator fractions compare as 0.
func compareFractions(a, b answer.Fraction) int {
	ra, rb := a.Rat(), b.Rat()
	if ra == nil || rb == nil {
		return 0
	}
	return ra.Cmp(rb)
}

func signedWholeNumber(f answer.Fraction) int64 {
	if f.IsNegative {
		return -int64(f.WholeNumber)
	}
	return int64(f.WholeNumber)
}
