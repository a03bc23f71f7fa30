package rules

import (
	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

var dragAndDropRules = map[string]ruleBuilder{
	"IsEqualToOrdering": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagListOfSetsOfHTMLString, "x", sameOrdering)
	},
	"IsEqualToOrderingWithOneItemAtIncorrectPosition": func() (classifier.RuleClassifier, error) {
		return classifier.NewSingleInput(answer.TagListOfSetsOfHTMLString, "x",
			func(a, x answer.ListOfSetsOfHTMLString) bool {
				return misplacedItems(a, x) == 1
			})
	},
	"HasElementXAtPositionY": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeDoubleInput(answer.TagListOfSetsOfHTMLString,
			classifier.ParameterSpec{Name: "x", Tag: answer.TagNormalizedString},
			classifier.ParameterSpec{Name: "y", Tag: answer.TagNonNegativeInt},
			hasElementAtPosition)
	},
	"HasElementXBeforeElementY": func() (classifier.RuleClassifier, error) {
		return classifier.NewMultiTypeDoubleInput(answer.TagListOfSetsOfHTMLString,
			classifier.ParameterSpec{Name: "x", Tag: answer.TagNormalizedString},
			classifier.ParameterSpec{Name: "y", Tag: answer.TagNormalizedString},
			hasElementBefore)
	},
}

func sameOrdering(a, x answer.ListOfSetsOfHTMLString) bool {
	if len(a) != len(x) {
		return false
	}
	for i := range a {
		if !sameItems(a[i], x[i]) {
			return false
		}
	}
	return true
}

// positions maps every item to the index of the set holding it.
func positions(l answer.ListOfSetsOfHTMLString) map[string]int {
	pos := make(map[string]int)
	for i, set := range l {
		for _, item := range set {
			pos[item] = i
		}
	}
	return pos
}

// misplacedItems counts items of x that sit at a different position (or are
// absent) in a.
func misplacedItems(a, x answer.ListOfSetsOfHTMLString) int {
	answerPos := positions(a)
	var n int
	for item, want := range positions(x) {
		if got, ok := answerPos[item]; !ok || got != want {
			n++
		}
	}
	return n
}

// hasElementAtPosition uses one-based positions, as shown to learners.
func hasElementAtPosition(a answer.ListOfSetsOfHTMLString, x string, y uint64) bool {
	if y == 0 || y > uint64(len(a)) {
		return false
	}
	for _, item := range a[y-1] {
		if item == x {
			return true
		}
	}
	return false
}

func hasElementBefore(a answer.ListOfSetsOfHTMLString, x, y string) bool {
	pos := positions(a)
	px, okX := pos[x]
	py, okY := pos[y]
	return okX && okY && px < py
}
