package classifier

import (
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/answerclass/internal/answer"
)

// Extractor converts a Value into the payload of one variant.
type Extractor[T any] func(answer.Value) T

// registryEntry holds an extractor for one tag. zero is a value of the
// declared payload type; asserting it against a requested type answers
// "is the declared type assignable to T" without reflection.
type registryEntry struct {
	zero    any
	typed   any
	extract func(answer.Value) any
}

func entryOf[T any](fn func(answer.Value) T) registryEntry {
	var zero T
	return registryEntry{
		zero:    zero,
		typed:   fn,
		extract: func(v answer.Value) any { return fn(v) },
	}
}

// extractorTable is computed once on first use and never mutated after.
var extractorTable = sync.OnceValue(func() map[answer.Tag]registryEntry {
	return map[answer.Tag]registryEntry{
		answer.TagNormalizedString:       entryOf(answer.Value.NormalizedString),
		answer.TagSignedInt:              entryOf(answer.Value.SignedInt),
		answer.TagNonNegativeInt:         entryOf(answer.Value.NonNegativeInt),
		answer.TagReal:                   entryOf(answer.Value.Real),
		answer.TagBool:                   entryOf(answer.Value.Bool),
		answer.TagNumberWithUnits:        entryOf(answer.Value.NumberWithUnits),
		answer.TagSetOfHTMLString:        entryOf(answer.Value.SetOfHTMLString),
		answer.TagFraction:               entryOf(answer.Value.Fraction),
		answer.TagListOfSetsOfHTMLString: entryOf(answer.Value.ListOfSetsOfHTMLString),
		answer.TagImageWithRegions:       entryOf(answer.Value.ImageWithRegions),
		answer.TagClickOnImage:           entryOf(answer.Value.ClickOnImage),
		answer.TagRatioExpression:        entryOf(answer.Value.RatioExpression),
	}
})

// GetExtractor returns the extractor registered for tag, typed as T.
// It fails with *UnregisteredTagError if tag has no extractor, and with
// *ExtractorTypeMismatchError if the registered payload type is not
// assignable to T.
func GetExtractor[T any](tag answer.Tag) (Extractor[T], error) {
	entry, ok := extractorTable()[tag]
	if !ok {
		return nil, &UnregisteredTagError{Tag: tag}
	}
	if _, ok := entry.zero.(T); !ok {
		return nil, &ExtractorTypeMismatchError{
			Tag:        tag,
			Requested:  typeName[T](),
			Registered: fmt.Sprintf("%T", entry.zero),
		}
	}

	// Exact type match: hand back the accessor itself.
	if fn, ok := entry.typed.(func(answer.Value) T); ok {
		return fn, nil
	}
	extract := entry.extract
	return func(v answer.Value) T {
		return extract(v).(T)
	}, nil
}

// RegisteredTags returns every tag that has an extractor.
func RegisteredTags() []answer.Tag {
	table := extractorTable()
	var tags []answer.Tag
	for _, tag := range answer.AllTags() {
		if _, ok := table[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// typeName formats T without needing a value of it, so interface types
// print their name rather than "<nil>".
func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}
