// Package rules wires the answer-matching rules of each interaction type
// into classifiers.
package rules

import (
	"fmt"
	"sort"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/classifier"
)

// Interaction type IDs.
const (
	InteractionRatioExpression = "RatioExpressionInput"
	InteractionNumeric         = "NumericInput"
	InteractionText            = "TextInput"
	InteractionFraction        = "FractionInput"
	InteractionNumberWithUnits = "NumberWithUnits"
	InteractionMultipleChoice  = "MultipleChoiceInput"
	InteractionItemSelection   = "ItemSelectionInput"
	InteractionDragAndDropSort = "DragAndDropSortInput"
	InteractionImageClick      = "ImageClickInput"
)

type ruleBuilder func() (classifier.RuleClassifier, error)

var interactionRules = map[string]map[string]ruleBuilder{
	InteractionRatioExpression: ratioExpressionRules,
	InteractionNumeric:         numericRules,
	InteractionText:            textRules,
	InteractionFraction:        fractionRules,
	InteractionNumberWithUnits: numberWithUnitsRules,
	InteractionMultipleChoice:  multipleChoiceRules,
	InteractionItemSelection:   itemSelectionRules,
	InteractionDragAndDropSort: dragAndDropRules,
	InteractionImageClick:      imageClickRules,
}

// UnknownRuleError means the catalog has no classifier for the requested
// interaction and rule type.
type UnknownRuleError struct {
	Interaction string
	Rule        string
}

func (e *UnknownRuleError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("unknown interaction %q", e.Interaction)
	}
	return fmt.Sprintf("interaction %q has no rule %q", e.Interaction, e.Rule)
}

// Catalog holds one immutable classifier per (interaction, rule type) pair.
// It is safe for concurrent use.
type Catalog struct {
	classifiers map[string]map[string]classifier.RuleClassifier
}

// NewCatalog builds every known classifier. An error here is a wiring bug.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{classifiers: make(map[string]map[string]classifier.RuleClassifier, len(interactionRules))}
	for interaction, builders := range interactionRules {
		built := make(map[string]classifier.RuleClassifier, len(builders))
		for name, build := range builders {
			rc, err := build()
			if err != nil {
				return nil, fmt.Errorf("build %s.%s: %w", interaction, name, err)
			}
			built[name] = rc
		}
		c.classifiers[interaction] = built
	}
	return c, nil
}

// Lookup returns the classifier for a rule type of an interaction.
func (c *Catalog) Lookup(interaction, rule string) (classifier.RuleClassifier, error) {
	byRule, ok := c.classifiers[interaction]
	if !ok {
		return nil, &UnknownRuleError{Interaction: interaction}
	}
	rc, ok := byRule[rule]
	if !ok {
		return nil, &UnknownRuleError{Interaction: interaction, Rule: rule}
	}
	return rc, nil
}

// Classify looks up a rule and evaluates it against ans and params.
func (c *Catalog) Classify(interaction, rule string, ans answer.Value, params answer.Parameters) (bool, error) {
	rc, err := c.Lookup(interaction, rule)
	if err != nil {
		return false, err
	}
	return rc.Matches(ans, params)
}

// Interactions returns the interaction IDs in sorted order.
func (c *Catalog) Interactions() []string {
	ids := make([]string, 0, len(c.classifiers))
	for id := range c.classifiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Rules returns the rule types of an interaction in sorted order, or nil if
// the interaction is unknown.
func (c *Catalog) Rules(interaction string) []string {
	byRule := c.classifiers[interaction]
	if byRule == nil {
		return nil
	}
	names := make([]string, 0, len(byRule))
	for name := range byRule {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
