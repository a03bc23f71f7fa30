package rules

import (
	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var multipleChoiceRules = map[string]ruleBuilder{
	"Equals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagNonNegativeInt, "x", func(a, x uint64) bool { return a == x })
	},
}

var itemSelectionRules = map[string]ruleBuilder{
	"Equals": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagSetOfHTMLString, "x", sameItems)
	},
	"ContainsAtLeastOneOf": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagSetOfHTMLString, "x", containsAny)
	},
	"DoesNotContainAtLeastOneOf": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagSetOfHTMLString, "x", func(a, x answer.SetOfHTMLString) bool {
			return !containsAll(a, x)
		})
	},
	"IsProperSubsetOf": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagSetOfHTMLString, "x", func(a, x answer.SetOfHTMLString) bool {
			return containsAll(x, a) && len(itemSet(a)) < len(itemSet(x))
		})
	},
}

func itemSet(s answer.SetOfHTMLString) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, item := range s {
		set[item] = struct{}{}
	}
	return set
}

// containsAll reports whether every item of sub appears in s.
func containsAll(s, sub answer.SetOfHTMLString) bool {
	set := itemSet(s)
	for _, item := range sub {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}

func containsAny(s, candidates answer.SetOfHTMLString) bool {
	set := itemSet(s)
	for _, item := range candidates {
		if _, ok := set[item]; ok {
			return true
		}
	}
	return false
}

// sameItems compares as sets: order and duplicates are ignored.
func sameItems(a, b answer.SetOfHTMLString) bool {
	return containsAll(a, b) && containsAll(b, a)
}
