package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/answerclass/internal/answer"
)

// ErrMiswired is matched by errors that indicate a classifier was assembled
// incorrectly (unregistered tag, wrong extractor type). These should be
// caught by wiring tests, never handled at runtime.
var ErrMiswired = errors.New("classifier miswired")

// ErrInvalidInput is matched by errors caused by an answer or parameter set
// that does not fit the classifier. Callers should treat the originating
// rule specification as invalid for this answer type.
var ErrInvalidInput = errors.New("invalid classifier input")

// UnregisteredTagError means no extractor is registered for Tag.
type UnregisteredTagError struct {
	Tag answer.Tag
}

func (e *UnregisteredTagError) Error() string {
	return fmt.Sprintf("no extractor registered for answer type %s", e.Tag)
}

func (e *UnregisteredTagError) Is(target error) bool { return target == ErrMiswired }

// ExtractorTypeMismatchError means an extractor was requested for a Go type
// the registered extractor cannot produce.
type ExtractorTypeMismatchError struct {
	Tag        answer.Tag
	Requested  string
	Registered string
}

func (e *ExtractorTypeMismatchError) Error() string {
	return fmt.Sprintf("extractor for %s produces %s, which is not assignable to requested type %s",
		e.Tag, e.Registered, e.Requested)
}

func (e *ExtractorTypeMismatchError) Is(target error) bool { return target == ErrMiswired }

// AnswerTypeMismatchError means the answer's tag differs from the one the
// classifier was built for.
type AnswerTypeMismatchError struct {
	Expected answer.Tag
	Actual   answer.Tag
}

func (e *AnswerTypeMismatchError) Error() string {
	return fmt.Sprintf("Expected answer to be of type %s not %s", e.Expected, e.Actual)
}

func (e *AnswerTypeMismatchError) Is(target error) bool { return target == ErrInvalidInput }

// MissingParameterError means a declared parameter was absent from the
// supplied set. Available lists the names that were supplied.
type MissingParameterError struct {
	Name      string
	Available []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Expected classifier inputs to contain parameter with name '%s' but had: [%s]",
		e.Name, strings.Join(e.Available, ", "))
}

func (e *MissingParameterError) Is(target error) bool { return target == ErrInvalidInput }

// ParameterTypeMismatchError means a supplied parameter has the wrong tag.
type ParameterTypeMismatchError struct {
	Name     string
	Expected answer.Tag
	Actual   answer.Tag
}

func (e *ParameterTypeMismatchError) Error() string {
	return fmt.Sprintf("Expected input value for parameter '%s' to be of type %s, not: %s",
		e.Name, e.Expected, e.Actual)
}

func (e *ParameterTypeMismatchError) Is(target error) bool { return target == ErrInvalidInput }
