package classifier

import (
	"fmt"

	"github.com/abhisek/answerclass/internal/answer"
)

// DelegateKind identifies the arity and type shape of a classifier's matcher.
type DelegateKind uint8

const (
	KindNoInput DelegateKind = iota + 1
	KindSingleInput
	KindMultiTypeSingleInput
	KindDoubleInput
	KindMultiTypeDoubleInput
)

// Arity is the number of named parameters a delegate of this kind consumes.
func (k DelegateKind) Arity() int {
	switch k {
	case KindNoInput:
		return 0
	case KindSingleInput, KindMultiTypeSingleInput:
		return 1
	case KindDoubleInput, KindMultiTypeDoubleInput:
		return 2
	default:
		panic(fmt.Sprintf("classifier: unknown delegate kind %d", uint8(k)))
	}
}

func (k DelegateKind) String() string {
	switch k {
	case KindNoInput:
		return "no-input"
	case KindSingleInput:
		return "single-input"
	case KindMultiTypeSingleInput:
		return "multi-type-single-input"
	case KindDoubleInput:
		return "double-input"
	case KindMultiTypeDoubleInput:
		return "multi-type-double-input"
	default:
		return fmt.Sprintf("DelegateKind(%d)", uint8(k))
	}
}

// matcherDelegate binds a rule's matcher to typed extractors. The set of
// implementations is closed: only the five types in this file satisfy it.
type matcherDelegate interface {
	kind() DelegateKind
	// matches receives inputs already validated and ordered as declared.
	matches(ans answer.Value, inputs []answer.Value) bool
}

// mustHaveInputs panics when a delegate receives a parameter count other
// than its arity. That can only happen if a classifier was assembled with
// the wrong delegate.
func mustHaveInputs(k DelegateKind, inputs []answer.Value) {
	if len(inputs) != k.Arity() {
		panic(fmt.Sprintf("classifier: %s delegate expects %d inputs, got %d",
			k, k.Arity(), len(inputs)))
	}
}

type noInputDelegate[T any] struct {
	extract Extractor[T]
	matcher func(answer T) bool
}

func (d noInputDelegate[T]) kind() DelegateKind { return KindNoInput }

func (d noInputDelegate[T]) matches(ans answer.Value, inputs []answer.Value) bool {
	mustHaveInputs(KindNoInput, inputs)
	return d.matcher(d.extract(ans))
}

type singleInputDelegate[T any] struct {
	extract Extractor[T]
	matcher func(answer, input T) bool
}

func (d singleInputDelegate[T]) kind() DelegateKind { return KindSingleInput }

func (d singleInputDelegate[T]) matches(ans answer.Value, inputs []answer.Value) bool {
	mustHaveInputs(KindSingleInput, inputs)
	return d.matcher(d.extract(ans), d.extract(inputs[0]))
}

type multiTypeSingleInputDelegate[AT, IT any] struct {
	extractAnswer Extractor[AT]
	extractInput  Extractor[IT]
	matcher       func(answer AT, input IT) bool
}

func (d multiTypeSingleInputDelegate[AT, IT]) kind() DelegateKind { return KindMultiTypeSingleInput }

func (d multiTypeSingleInputDelegate[AT, IT]) matches(ans answer.Value, inputs []answer.Value) bool {
	mustHaveInputs(KindMultiTypeSingleInput, inputs)
	return d.matcher(d.extractAnswer(ans), d.extractInput(inputs[0]))
}

type doubleInputDelegate[T any] struct {
	extract Extractor[T]
	matcher func(answer, first, second T) bool
}

func (d doubleInputDelegate[T]) kind() DelegateKind { return KindDoubleInput }

func (d doubleInputDelegate[T]) matches(ans answer.Value, inputs []answer.Value) bool {
	mustHaveInputs(KindDoubleInput, inputs)
	return d.matcher(d.extract(ans), d.extract(inputs[0]), d.extract(inputs[1]))
}

type multiTypeDoubleInputDelegate[AT, ITF, ITS any] struct {
	extractAnswer Extractor[AT]
	extractFirst  Extractor[ITF]
	extractSecond Extractor[ITS]
	matcher       func(answer AT, first ITF, second ITS) bool
}

func (d multiTypeDoubleInputDelegate[AT, ITF, ITS]) kind() DelegateKind {
	return KindMultiTypeDoubleInput
}

func (d multiTypeDoubleInputDelegate[AT, ITF, ITS]) matches(ans answer.Value, inputs []answer.Value) bool {
	mustHaveInputs(KindMultiTypeDoubleInput, inputs)
	return d.matcher(d.extractAnswer(ans), d.extractFirst(inputs[0]), d.extractSecond(inputs[1]))
}
