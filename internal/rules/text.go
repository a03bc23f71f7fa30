package rules

import (
	"strings"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
	"github.com/agext/levenshtein"
)

var textRules = map[string]ruleBuilder{
	"Equals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNormalizedString, "x", func(a, x string) bool {
			return normalizeText(a) == normalizeText(x)
		})
	},
	"StartsWith": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNormalizedString, "x", func(a, x string) bool {
			return strings.HasPrefix(normalizeText(a), normalizeText(x))
		})
	},
	"Contains": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNormalizedString, "x", func(a, x string) bool {
			return strings.Contains(normalizeText(a), normalizeText(x))
		})
	},
	"FuzzyEquals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNormalizedString, "x", fuzzyEquals)
	},
}

// normalizeText lowercases and collapses runs of whitespace, so
// "  Blue  Whale " and "blue whale" compare equal.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// fuzzyEquals tolerates a single-character typo.
func fuzzyEquals(a, x string) bool {
	return levenshtein.Distance(normalizeText(a), normalizeText(x), nil) <= 1
}
