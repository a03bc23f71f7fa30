package rules

import (
	"math"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

// equalityEpsilon absorbs float noise from learner input parsing.
const equalityEpsilon = 1e-5

var numericRules = map[string]ruleBuilder{
	"Equals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagReal, "x", approximatelyEqual)
	},
	"IsLessThan": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagReal, "x", func(a, x float64) bool { return a < x })
	},
	"IsGreaterThan": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagReal, "x", func(a, x float64) bool { return a > x })
	},
	"IsLessThanOrEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagReal, "x", func(a, x float64) bool {
			return a < x || approximatelyEqual(a, x)
		})
	},
	"IsGreaterThanOrEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagReal, "x", func(a, x float64) bool {
			return a > x || approximatelyEqual(a, x)
		})
	},
	"IsInclusivelyBetween": func() (classifier.RuleClassifier, error) {
		return classifier.NewDoubleInput(answer.TagReal, "a", "b", isInclusivelyBetween)
	},
	"IsWithinTolerance": func() (classifier.RuleClassifier, error) {
		return classifier.NewDoubleInput(answer.TagReal, "tol", "x", isWithinTolerance)
	},
}

func approximatelyEqual(a, b float64) bool {
	return math.Abs(a-b) < equalityEpsilon
}

// isInclusivelyBetween accepts bounds given in either order.
func isInclusivelyBetween(v, a, b float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return v >= lo && v <= hi
}

func isWithinTolerance(v, tol, x float64) bool {
	return v >= x-tol && v <= x+tol
}
