package rules

import (
	"errors"
	"testing"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

type ruleCase struct {
	name   string
	rule   string
	ans    answer.Value
	params answer.Parameters
	want   bool
}

func runRuleCases(t *testing.T, interaction string, cases []ruleCase) {
	t.Helper()
	c := newTestCatalog(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Classify(interaction, tc.rule, tc.ans, tc.params)
			if err != nil {
				t.Fatalf("Classify(%s.%s): %v", interaction, tc.rule, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%s.%s, %v, %v) = %v, want %v",
					interaction, tc.rule, tc.ans, tc.params, got, tc.want)
			}
		})
	}
}

func ratio(terms ...uint32) answer.Value { return answer.NewRatioExpression(terms) }
func nonNeg(n uint64) answer.Value { return answer.NewNonNegativeInt(n) }
func num(f float64) answer.Value { return answer.NewReal(f) }
func str(s string) answer.Value { return answer.NewNormalizedString(s) }
func frac(neg bool, whole, n, d uint32) answer.Value {
	return answer.NewFraction(answer.Fraction{IsNegative: neg, WholeNumber: whole, Numerator: n, Denominator: d})
}
func items(s ...string) answer.Value { return answer.NewSetOfHTMLString(s) }
func ordering(sets ...answer.SetOfHTMLString) answer.Value {
	return answer.NewListOfSetsOfHTMLString(sets)
}

func TestRatioExpressionRules(t *testing.T) {
	runRuleCases(t, InteractionRatioExpression, []ruleCase{
		{"equals exact", "Equals", ratio(1, 2, 3), answer.Parameters{"x": ratio(1, 2, 3)}, true},
		{"equals not reduced", "Equals", ratio(2, 4, 6), answer.Parameters{"x": ratio(1, 2, 3)}, false},
		{"equivalent reduced", "IsEquivalent", ratio(2, 4, 6), answer.Parameters{"x": ratio(1, 2, 3)}, true},
		{"equivalent term count", "IsEquivalent", ratio(2, 4, 6), answer.Parameters{"x": ratio(2, 4, 6, 8)}, false},
		{"three terms", "HasNumberOfTermsEqualTo", ratio(1, 2, 3), answer.Parameters{"y": nonNeg(3)}, true},
		{"not four terms", "HasNumberOfTermsEqualTo", ratio(1, 2, 3), answer.Parameters{"y": nonNeg(4)}, false},
		{"term at index", "HasSpecificTermEqualTo", ratio(3, 2), answer.Parameters{"x": nonNeg(0), "y": nonNeg(3)}, true},
		{"wrong term", "HasSpecificTermEqualTo", ratio(3, 2), answer.Parameters{"x": nonNeg(1), "y": nonNeg(3)}, false},
		{"index out of range", "HasSpecificTermEqualTo", ratio(3, 2), answer.Parameters{"x": nonNeg(2), "y": nonNeg(3)}, false},
	})
}

func TestNumericRules(t *testing.T) {
	runRuleCases(t, InteractionNumeric, []ruleCase{
		{"equals", "Equals", num(0.1 + 0.2), answer.Parameters{"x": num(0.3)}, true},
		{"not equals", "Equals", num(0.31), answer.Parameters{"x": num(0.3)}, false},
		{"less", "IsLessThan", num(1), answer.Parameters{"x": num(2)}, true},
		{"not less", "IsLessThan", num(2), answer.Parameters{"x": num(2)}, false},
		{"greater", "IsGreaterThan", num(3), answer.Parameters{"x": num(2)}, true},
		{"less or equal", "IsLessThanOrEqualTo", num(2), answer.Parameters{"x": num(2)}, true},
		{"greater or equal", "IsGreaterThanOrEqualTo", num(1), answer.Parameters{"x": num(2)}, false},
		{"between", "IsInclusivelyBetween", num(5), answer.Parameters{"a": num(1), "b": num(5)}, true},
		{"between reversed bounds", "IsInclusivelyBetween", num(3), answer.Parameters{"a": num(5), "b": num(1)}, true},
		{"outside", "IsInclusivelyBetween", num(6), answer.Parameters{"a": num(1), "b": num(5)}, false},
		{"within tolerance", "IsWithinTolerance", num(9.5), answer.Parameters{"tol": num(0.5), "x": num(10)}, true},
		{"outside tolerance", "IsWithinTolerance", num(9.4), answer.Parameters{"tol": num(0.5), "x": num(10)}, false},
	})
}

func TestTextRules(t *testing.T) {
	runRuleCases(t, InteractionText, []ruleCase{
		{"equals normalized", "Equals", str("  Blue   Whale "), answer.Parameters{"x": str("blue whale")}, true},
		{"not equals", "Equals", str("blue shark"), answer.Parameters{"x": str("blue whale")}, false},
		{"starts with", "StartsWith", str("Photosynthesis"), answer.Parameters{"x": str("photo")}, true},
		{"contains", "Contains", str("the mitochondria"), answer.Parameters{"x": str("CHONDRIA")}, true},
		{"fuzzy two edits", "FuzzyEquals", str("elefant"), answer.Parameters{"x": str("elephant")}, false},
		{"fuzzy single edit", "FuzzyEquals", str("elephnt"), answer.Parameters{"x": str("elephant")}, true},
		{"fuzzy exact", "FuzzyEquals", str("Elephant"), answer.Parameters{"x": str("elephant")}, true},
	})
}

func TestFractionRules(t *testing.T) {
	half := frac(false, 0, 1, 2)
	twoQuarters := frac(false, 0, 2, 4)
	runRuleCases(t, InteractionFraction, []ruleCase{
		{"exactly equal", "IsExactlyEqualTo", half, answer.Parameters{"f": half}, true},
		{"not exactly equal", "IsExactlyEqualTo", twoQuarters, answer.Parameters{"f": half}, false},
		{"equivalent", "IsEquivalentTo", twoQuarters, answer.Parameters{"f": half}, true},
		{"mixed equivalent to improper", "IsEquivalentTo", frac(false, 1, 1, 2), answer.Parameters{"f": frac(false, 0, 3, 2)}, true},
		{"sign matters", "IsEquivalentTo", frac(true, 0, 1, 2), answer.Parameters{"f": half}, false},
		{"zero denominator", "IsEquivalentTo", frac(false, 0, 1, 0), answer.Parameters{"f": frac(false, 0, 1, 0)}, false},
		{"simplest form", "IsEquivalentToAndInSimplestForm", half, answer.Parameters{"f": twoQuarters}, true},
		{"not simplest form", "IsEquivalentToAndInSimplestForm", twoQuarters, answer.Parameters{"f": half}, false},
		{"less", "IsLessThan", frac(false, 0, 1, 3), answer.Parameters{"f": half}, true},
		{"greater", "IsGreaterThan", frac(false, 0, 2, 3), answer.Parameters{"f": half}, true},
		{"negative less", "IsGreaterThan", frac(true, 0, 2, 3), answer.Parameters{"f": half}, false},
		{"numerator", "HasNumeratorEqualTo", twoQuarters, answer.Parameters{"x": answer.NewSignedInt(2)}, true},
		{"denominator", "HasDenominatorEqualTo", twoQuarters, answer.Parameters{"x": nonNeg(4)}, true},
		{"integer part", "HasIntegerPartEqualTo", frac(true, 2, 1, 3), answer.Parameters{"x": answer.NewSignedInt(-2)}, true},
		{"no fractional part", "HasNoFractionalPart", frac(false, 3, 0, 1), answer.Parameters{}, true},
		{"has fractional part", "HasNoFractionalPart", half, nil, false},
		{"fractional part", "HasFractionalPartExactlyEqualTo", frac(false, 4, 1, 2), answer.Parameters{"f": half}, true},
	})
}

func TestNumberWithUnitsRules(t *testing.T) {
	metres := func(v float64, units ...answer.NumberUnit) answer.Value {
		return answer.NewNumberWithUnits(answer.NumberWithUnits{Kind: answer.NumberKindReal, Real: v, Units: units})
	}
	m := answer.NumberUnit{Unit: "m", Exponent: 1}
	perS := answer.NumberUnit{Unit: "s", Exponent: -1}
	halfMetre := answer.NewNumberWithUnits(answer.NumberWithUnits{
		Kind:     answer.NumberKindFraction,
		Fraction: answer.Fraction{Numerator: 1, Denominator: 2},
		Units:    []answer.NumberUnit{m},
	})
	undefinedMetre := answer.NewNumberWithUnits(answer.NumberWithUnits{
		Kind:     answer.NumberKindFraction,
		Fraction: answer.Fraction{Numerator: 1, Denominator: 0},
		Units:    []answer.NumberUnit{m},
	})

	runRuleCases(t, InteractionNumberWithUnits, []ruleCase{
		{"equal", "IsEqualTo", metres(2, m), answer.Parameters{"f": metres(2, m)}, true},
		{"unit order matters for equal", "IsEqualTo", metres(2, m, perS), answer.Parameters{"f": metres(2, perS, m)}, false},
		{"equivalent unit order", "IsEquivalentTo", metres(2, m, perS), answer.Parameters{"f": metres(2, perS, m)}, true},
		{"fraction equivalent to real", "IsEquivalentTo", halfMetre, answer.Parameters{"f": metres(0.5, m)}, true},
		{"different units", "IsEquivalentTo", metres(2, m), answer.Parameters{"f": metres(2, perS)}, false},
		{"zero denominator answer", "IsEquivalentTo", undefinedMetre, answer.Parameters{"f": metres(0, m)}, false},
		{"zero denominator input", "IsEquivalentTo", metres(0, m), answer.Parameters{"f": undefinedMetre}, false},
	})
}

func TestSelectionRules(t *testing.T) {
	runRuleCases(t, InteractionMultipleChoice, []ruleCase{
		{"choice", "Equals", nonNeg(2), answer.Parameters{"x": nonNeg(2)}, true},
		{"other choice", "Equals", nonNeg(1), answer.Parameters{"x": nonNeg(2)}, false},
	})
	runRuleCases(t, InteractionItemSelection, []ruleCase{
		{"same items any order", "Equals", items("b", "a"), answer.Parameters{"x": items("a", "b")}, true},
		{"missing item", "Equals", items("a"), answer.Parameters{"x": items("a", "b")}, false},
		{"contains one", "ContainsAtLeastOneOf", items("c", "b"), answer.Parameters{"x": items("a", "b")}, true},
		{"contains none", "ContainsAtLeastOneOf", items("c"), answer.Parameters{"x": items("a", "b")}, false},
		{"lacks one", "DoesNotContainAtLeastOneOf", items("a"), answer.Parameters{"x": items("a", "b")}, true},
		{"has all", "DoesNotContainAtLeastOneOf", items("a", "b"), answer.Parameters{"x": items("a", "b")}, false},
		{"proper subset", "IsProperSubsetOf", items("a"), answer.Parameters{"x": items("a", "b")}, true},
		{"equal set is not proper", "IsProperSubsetOf", items("a", "b"), answer.Parameters{"x": items("b", "a")}, false},
	})
}

func TestDragAndDropRules(t *testing.T) {
	abc := ordering(answer.SetOfHTMLString{"a"}, answer.SetOfHTMLString{"b"}, answer.SetOfHTMLString{"c"})
	acb := ordering(answer.SetOfHTMLString{"a"}, answer.SetOfHTMLString{"c"}, answer.SetOfHTMLString{"b"})
	grouped := ordering(answer.SetOfHTMLString{"b", "a"}, answer.SetOfHTMLString{"c"})

	runRuleCases(t, InteractionDragAndDropSort, []ruleCase{
		{"same ordering", "IsEqualToOrdering", abc, answer.Parameters{"x": abc}, true},
		{"grouped ordering", "IsEqualToOrdering", grouped,
			answer.Parameters{"x": ordering(answer.SetOfHTMLString{"a", "b"}, answer.SetOfHTMLString{"c"})}, true},
		{"swapped", "IsEqualToOrdering", acb, answer.Parameters{"x": abc}, false},
		{"one item off", "IsEqualToOrderingWithOneItemAtIncorrectPosition", grouped,
			answer.Parameters{"x": ordering(answer.SetOfHTMLString{"a"}, answer.SetOfHTMLString{"b", "c"})}, true},
		{"two items off", "IsEqualToOrderingWithOneItemAtIncorrectPosition", acb, answer.Parameters{"x": abc}, false},
		{"element at position", "HasElementXAtPositionY", abc, answer.Parameters{"x": str("b"), "y": nonNeg(2)}, true},
		{"position zero", "HasElementXAtPositionY", abc, answer.Parameters{"x": str("a"), "y": nonNeg(0)}, false},
		{"before", "HasElementXBeforeElementY", abc, answer.Parameters{"x": str("a"), "y": str("c")}, true},
		{"not before", "HasElementXBeforeElementY", acb, answer.Parameters{"x": str("b"), "y": str("c")}, false},
		{"same group", "HasElementXBeforeElementY", grouped, answer.Parameters{"x": str("a"), "y": str("b")}, false},
	})
}

func TestImageClickRules(t *testing.T) {
	click := answer.NewClickOnImage(answer.ClickOnImage{
		ClickPosition:  answer.Point2D{X: 0.4, Y: 0.6},
		ClickedRegions: []string{"lake", "forest"},
	})
	runRuleCases(t, InteractionImageClick, []ruleCase{
		{"in region", "IsInRegion", click, answer.Parameters{"x": str("lake")}, true},
		{"not in region", "IsInRegion", click, answer.Parameters{"x": str("desert")}, false},
	})
}

func TestCatalog_EveryClassifierIsConsistent(t *testing.T) {
	c := newTestCatalog(t)
	for _, interaction := range c.Interactions() {
		for _, rule := range c.Rules(interaction) {
			rc, err := c.Lookup(interaction, rule)
			if err != nil {
				t.Fatalf("Lookup(%s, %s): %v", interaction, rule, err)
			}
			def := rc.Definition()
			if len(def.Parameters) != def.Kind.Arity() {
				t.Errorf("%s.%s: %d parameters for %s delegate", interaction, rule, len(def.Parameters), def.Kind)
			}
		}
	}
}

func TestCatalog_UnknownRule(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Lookup("Continue", "Equals")
	var unknown *UnknownRuleError
	if !errors.As(err, &unknown) || unknown.Rule != "" {
		t.Fatalf("expected unknown interaction error, got %v", err)
	}

	_, err = c.Lookup(InteractionRatioExpression, "IsPrime")
	if !errors.As(err, &unknown) || unknown.Rule != "IsPrime" {
		t.Fatalf("expected unknown rule error, got %v", err)
	}
}

func TestCatalog_InvalidInputSurfaces(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Classify(InteractionRatioExpression, "HasSpecificTermEqualTo", ratio(3, 2),
		answer.Parameters{"x": str("0"), "y": nonNeg(3)})
	if !errors.Is(err, classifier.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
