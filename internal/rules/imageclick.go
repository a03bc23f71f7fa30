package rules

import (
	"slices"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var imageClickRules = map[string]ruleBuilder{
	"IsInRegion": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeSingleInput(answer.TagClickOnImage, answer.TagNormalizedString, "x",
			func(a answer.ClickOnImage, x string) bool {
				return slices.Contains(a.ClickedRegions, x)
			})
	},
}
