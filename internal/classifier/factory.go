package classifier

import (
	"fmt"

	"github.com/abhisek/answerclass/internal/answer"
)

var errNilMatcher = fmt.Errorf("%w: nil matcher", ErrMiswired)

// NewNoInput builds a classifier for a rule that takes no parameters.
func NewNoInput[T any](tag answer.Tag, matcher func(answer T) bool) (RuleClassifier, error) {
	if matcher == nil {
		return nil, errNilMatcher
	}
	extract, err := GetExtractor[T](tag)
	if err != nil {
		return nil, err
	}
	delegate := noInputDelegate[T]{extract: extract, matcher: matcher}
	return newGenericClassifier(tag, nil, delegate), nil
}

// NewSingleInput builds a classifier for a rule with one parameter of the
// same type as the answer.
func NewSingleInput[T any](tag answer.Tag, param string, matcher func(answer, input T) bool) (RuleClassifier, error) {
	if matcher == nil {
		return nil, errNilMatcher
	}
	extract, err := GetExtractor[T](tag)
	if err != nil {
		return nil, err
	}
	delegate := singleInputDelegate[T]{extract: extract, matcher: matcher}
	params := []ParameterSpec{{Name: param, Tag: tag}}
	return newGenericClassifier(tag, params, delegate), nil
}

// NewMultiTypeSingleInput builds a classifier for a rule with one parameter
// whose type may differ from the answer's.
func NewMultiTypeSingleInput[AT, IT any](
	answerTag, inputTag answer.Tag,
	param string,
	matcher func(answer AT, input IT) bool,
) (RuleClassifier, error) {
	if matcher == nil {
		return nil, errNilMatcher
	}
	extractAnswer, err := GetExtractor[AT](answerTag)
	if err != nil {
		return nil, err
	}
	extractInput, err := GetExtractor[IT](inputTag)
	if err != nil {
		return nil, err
	}
	delegate := multiTypeSingleInputDelegate[AT, IT]{
		extractAnswer: extractAnswer,
		extractInput:  extractInput,
		matcher:       matcher,
	}
	params := []ParameterSpec{{Name: param, Tag: inputTag}}
	return newGenericClassifier(answerTag, params, delegate), nil
}

// NewDoubleInput builds a classifier for a rule with two parameters, both of
// the answer's type.
func NewDoubleInput[T any](
	tag answer.Tag,
	first, second string,
	matcher func(answer, first, second T) bool,
) (RuleClassifier, error) {
	if matcher == nil {
		return nil, errNilMatcher
	}
	extract, err := GetExtractor[T](tag)
	if err != nil {
		return nil, err
	}
	if first == second {
		return nil, fmt.Errorf("%w: duplicate parameter name %q", ErrMiswired, first)
	}
	delegate := doubleInputDelegate[T]{extract: extract, matcher: matcher}
	params := []ParameterSpec{{Name: first, Tag: tag}, {Name: second, Tag: tag}}
	return newGenericClassifier(tag, params, delegate), nil
}

// NewMultiTypeDoubleInput builds a classifier for a rule with two
// parameters whose types may each differ from the answer's.
func NewMultiTypeDoubleInput[AT, ITF, ITS any](
	answerTag answer.Tag,
	first ParameterSpec,
	second ParameterSpec,
	matcher func(answer AT, first ITF, second ITS) bool,
) (RuleClassifier, error) {
	if matcher == nil {
		return nil, errNilMatcher
	}
	extractAnswer, err := GetExtractor[AT](answerTag)
	if err != nil {
		return nil, err
	}
	extractFirst, err := GetExtractor[ITF](first.Tag)
	if err != nil {
		return nil, err
	}
	extractSecond, err := GetExtractor[ITS](second.Tag)
	if err != nil {
		return nil, err
	}
	if first.Name == second.Name {
		return nil, fmt.Errorf("%w: duplicate parameter name %q", ErrMiswired, first.Name)
	}
	delegate := multiTypeDoubleInputDelegate[AT, ITF, ITS]{
		extractAnswer: extractAnswer,
		extractFirst:  extractFirst,
		extractSecond: extractSecond,
		matcher:       matcher,
	}
	return newGenericClassifier(answerTag, []ParameterSpec{first, second}, delegate), nil
}

// Must panics if err is non-nil. It is meant for composition-time tables
// where a wiring error is a programming bug.
func Must(c RuleClassifier, err error) RuleClassifier {
	if err != nil {
		panic(fmt.Sprintf("classifier: %v", err))
	}
	return c
}
