// Package classifier evaluates one answer-matching rule against a learner
// answer and a set of named rule parameters.
//
// A classifier is built once through the New* factory functions, which
// resolve typed extractors up front, and is then immutable. Matches may be
// called concurrently from any number of goroutines.
package classifier

import (
	"fmt"
	"slices"

	"github.com/abhisek/answerclass/internal/answer"
)

// RuleClassifier decides whether an answer satisfies a rule.
type RuleClassifier interface {
	// Matches reports whether ans satisfies the rule given params.
	// Errors match ErrInvalidInput when ans or params do not fit the
	// classifier's declared types or parameter names.
	Matches(ans answer.Value, params answer.Parameters) (bool, error)

	// Definition describes the answer type and parameters the classifier
	// was built for.
	Definition() Definition
}

// ParameterSpec names one rule parameter and its expected type.
type ParameterSpec struct {
	Name string
	Tag  answer.Tag
}

// Definition is the static shape of a classifier.
type Definition struct {
	AnswerTag  answer.Tag
	Parameters []ParameterSpec
	Kind       DelegateKind
}

type genericClassifier struct {
	answerTag answer.Tag
	params    []ParameterSpec
	delegate  matcherDelegate
}

func newGenericClassifier(answerTag answer.Tag, params []ParameterSpec, delegate matcherDelegate) *genericClassifier {
	if arity := delegate.kind().Arity(); len(params) != arity {
		panic(fmt.Sprintf("classifier: %s delegate needs %d parameters, declared %d",
			delegate.kind(), arity, len(params)))
	}
	return &genericClassifier{
		answerTag: answerTag,
		params:    params,
		delegate:  delegate,
	}
}

func (c *genericClassifier) Matches(ans answer.Value, params answer.Parameters) (bool, error) {
	if ans.Tag() != c.answerTag {
		return false, &AnswerTypeMismatchError{Expected: c.answerTag, Actual: ans.Tag()}
	}

	inputs := make([]answer.Value, 0, len(c.params))
	for _, spec := range c.params {
		v, ok := params[spec.Name]
		if !ok {
			return false, &MissingParameterError{Name: spec.Name, Available: params.Names()}
		}
		if v.Tag() != spec.Tag {
			return false, &ParameterTypeMismatchError{Name: spec.Name, Expected: spec.Tag, Actual: v.Tag()}
		}
		inputs = append(inputs, v)
	}

	return c.delegate.matches(ans, inputs), nil
}

func (c *genericClassifier) Definition() Definition {
	return Definition{
		AnswerTag:  c.answerTag,
		Parameters: slices.Clone(c.params),
		Kind:       c.delegate.kind(),
	}
}
