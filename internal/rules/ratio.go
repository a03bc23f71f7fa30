package rules

import (
	"slices"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var ratioExpressionRules = map[string]ruleBuilder{
	"Equals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagRatioExpression, "x", ratioEquals)
	},
	"IsEquivalent": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagRatioExpression, "x", ratioIsEquivalent)
	},
	"HasNumberOfTermsEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeSingleInput(answer.TagRatioExpression, answer.TagNonNegativeInt, "y",
			ratioHasNumberOfTerms)
	},
	"HasSpecificTermEqualTo": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeDoubleInput(answer.TagRatioExpression,
			classifier.ParameterSpec{Name: "x", Tag: answer.TagNonNegativeInt},
			classifier.ParameterSpec{Name: "y", Tag: answer.TagNonNegativeInt},
			ratioHasSpecificTerm)
	},
}

// ratioEquals requires the same terms in the same order, without reduction.
func ratioEquals(a, x answer.RatioExpression) bool {
	return slices.Equal(a, x)
}

// ratioIsEquivalent compares both ratios in lowest terms, so 2:4:6 matches 1:2:3
// but not 1:2:3:4.
func ratioIsEquivalent(a, x answer.RatioExpression) bool {
	return slices.Equal(a.Reduced(), x.Reduced())
}

func ratioHasNumberOfTerms(a answer.RatioExpression, y uint64) bool {
	return uint64(len(a)) == y
}

// ratioHasSpecificTerm checks the term at zero-based index x. An index past
// the end never matches.
func ratioHasSpecificTerm(a answer.RatioExpression, x, y uint64) bool {
	if x >= uint64(len(a)) {
		return false
	}
	return uint64(a[x]) == y
}
